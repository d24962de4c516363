package model

import (
	"errors"
	"fmt"
)

// Icon identifies one of the inline SVG icons the page can render.
type Icon string

const (
	IconGitHub  Icon = "github"
	IconTwitter Icon = "twitter"
	IconMail    Icon = "mail"
)

// ButtonVariant selects the visual style of a call-to-action button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

// Badge is the status pill above the heading. Highlight is rendered in the
// accent color after Lead.
type Badge struct {
	Lead      string
	Highlight string
}

// Button is a call-to-action button. Action is an optional same-site path the
// button navigates to; empty means the button is purely presentational.
type Button struct {
	Label   string
	Variant ButtonVariant
	Action  string
}

// SocialLink is an icon link to an external profile or address.
type SocialLink struct {
	Icon  Icon
	Label string
	Href  string
}

// Profile holds the literal content of the landing page.
type Profile struct {
	Badge       Badge
	Name        string
	Description string
	Buttons     []Button
	Socials     []SocialLink
	About       string // markdown
}

const aboutMarkdown = `## About me

I'm **Ronak Fabian**, a developer crafting experiences at Dimension.

I like small, fast web apps that ship with a boring deploy pipeline:

- server-rendered pages
- a single static binary
- CI/CD that runs on every push

Find me on [GitHub](https://github.com/RonakFabian) or say hi at
[hello@ronakfabian.dev](mailto:hello@ronakfabian.dev).
`

// DefaultProfile returns the landing page content. Each call returns fresh
// slices so callers cannot mutate shared state.
func DefaultProfile() Profile {
	return Profile{
		Badge: Badge{
			Lead:      "Crafting Experiences at",
			Highlight: "Dimension",
		},
		Name:        "Ronak Fabian",
		Description: "This is a change to webapp!",
		Buttons: []Button{
			{Label: "Learn How ↓", Variant: ButtonPrimary},
			{Label: "More about me", Variant: ButtonSecondary, Action: "/about"},
		},
		Socials: []SocialLink{
			{Icon: IconGitHub, Label: "GitHub", Href: "https://github.com/RonakFabian"},
			{Icon: IconTwitter, Label: "Twitter", Href: "https://twitter.com/RonakFabian"},
			{Icon: IconMail, Label: "Email", Href: "mailto:hello@ronakfabian.dev"},
		},
		About: aboutMarkdown,
	}
}

// Validate checks the structural invariants of the page content: a name,
// exactly two buttons with labels, and social links with distinct non-empty
// destinations.
func (p Profile) Validate() error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}

	const wantButtons = 2
	if len(p.Buttons) != wantButtons {
		errs = append(errs, fmt.Errorf("expected %d buttons, got %d", wantButtons, len(p.Buttons)))
	}
	for i, b := range p.Buttons {
		if b.Label == "" {
			errs = append(errs, fmt.Errorf("button %d has no label", i))
		}
	}

	seen := make(map[string]bool, len(p.Socials))
	for _, s := range p.Socials {
		switch {
		case s.Href == "":
			errs = append(errs, fmt.Errorf("social link %q has no destination", s.Icon))
		case seen[s.Href]:
			errs = append(errs, fmt.Errorf("social link %q duplicates destination %q", s.Icon, s.Href))
		}
		seen[s.Href] = true
	}

	return errors.Join(errs...)
}
