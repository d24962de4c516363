package web

import "embed"

// StaticFS holds the embedded static assets (page stylesheet).
//
//go:embed static/*
var StaticFS embed.FS
