// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageViewModel holds data shared by every full-page layout render.
type PageViewModel struct {
	Title       string
	Description string
	// Motion links the entrance animation stylesheet when true. Without it the
	// page renders in its final, fully visible state.
	Motion bool
}

// BadgeViewModel holds the status pill text.
type BadgeViewModel struct {
	Lead      string
	Highlight string
}

// ButtonViewModel holds presentation-ready data for a call-to-action button.
type ButtonViewModel struct {
	Label   string
	Variant string
	// Action is the GET form target for navigating buttons; empty renders a
	// plain button.
	Action string
}

// SocialLinkViewModel holds presentation-ready data for an icon link.
type SocialLinkViewModel struct {
	Icon     string
	Label    string
	Href     string
	External bool // opens in a new tab with rel="noopener noreferrer"
}

// HeroViewModel holds everything the hero section renders.
type HeroViewModel struct {
	Badge       BadgeViewModel
	Name        string
	Description string
	// HeadingEntrance and ParagraphEntrance name the entrance animation
	// applied to each element through its data-entrance attribute.
	HeadingEntrance   string
	ParagraphEntrance string
	Buttons           []ButtonViewModel
	Socials           []SocialLinkViewModel
}

// AboutViewModel holds the about page content. BodyHTML is sanitized HTML
// produced from markdown and is rendered unescaped.
type AboutViewModel struct {
	Name     string
	BodyHTML string
}
