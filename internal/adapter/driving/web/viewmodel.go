package web

import (
	"strings"

	vm "github.com/RonakFabian/next.js-ci-cd/internal/adapter/driving/web/viewmodel"
	"github.com/RonakFabian/next.js-ci-cd/internal/domain/model"
)

// toHeroViewModel converts the domain Profile to a HeroViewModel. The
// entrance names are always set; they only have an effect when the motion
// stylesheet is linked.
func toHeroViewModel(p model.Profile) vm.HeroViewModel {
	buttons := make([]vm.ButtonViewModel, 0, len(p.Buttons))
	for _, b := range p.Buttons {
		buttons = append(buttons, vm.ButtonViewModel{
			Label:   b.Label,
			Variant: string(b.Variant),
			Action:  b.Action,
		})
	}

	socials := make([]vm.SocialLinkViewModel, 0, len(p.Socials))
	for _, s := range p.Socials {
		socials = append(socials, vm.SocialLinkViewModel{
			Icon:     string(s.Icon),
			Label:    s.Label,
			Href:     s.Href,
			External: isExternalLink(s.Href),
		})
	}

	return vm.HeroViewModel{
		Badge: vm.BadgeViewModel{
			Lead:      p.Badge.Lead,
			Highlight: p.Badge.Highlight,
		},
		Name:              p.Name,
		Description:       p.Description,
		HeadingEntrance:   model.HeadingEntrance().Name,
		ParagraphEntrance: model.ParagraphEntrance().Name,
		Buttons:           buttons,
		Socials:           socials,
	}
}

// toAboutViewModel renders the profile's markdown bio to sanitized HTML.
func toAboutViewModel(p model.Profile) vm.AboutViewModel {
	return vm.AboutViewModel{
		Name:     p.Name,
		BodyHTML: RenderMarkdown(p.About),
	}
}

// isExternalLink reports whether href leaves the site through a browser tab.
// mailto: links hand off to the mail client and stay in the current tab.
func isExternalLink(href string) bool {
	return strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "http://")
}
