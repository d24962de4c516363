package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/RonakFabian/next.js-ci-cd/internal/domain/model"
)

// MotionStylesheet renders CSS keyframes for the given entrances. Each
// entrance applies to elements whose data-entrance attribute carries its name
// and plays once with fill-mode both, so the hidden start state exists only
// while the animation is active.
// Everything is wrapped in a prefers-reduced-motion query; without this
// stylesheet the elements simply render in their final state.
func MotionStylesheet(entrances ...model.Entrance) string {
	var b strings.Builder

	b.WriteString("@media (prefers-reduced-motion: no-preference) {\n")
	for _, e := range entrances {
		writeEntrance(&b, e)
	}
	b.WriteString("}\n")

	return b.String()
}

func writeEntrance(b *strings.Builder, e model.Entrance) {
	b.WriteString("  [data-entrance=\"" + e.Name + "\"] {\n")
	b.WriteString("    animation: " + e.Name + " " + cssMillis(e.Duration) + " " +
		cssEasing(e.Easing) + " " + cssMillis(e.Delay) + " 1 normal both;\n")
	b.WriteString("  }\n")

	b.WriteString("  @keyframes " + e.Name + " {\n")
	b.WriteString("    from { " + cssFrame(e.From) + " }\n")
	b.WriteString("    to { " + cssFrame(e.To) + " }\n")
	b.WriteString("  }\n")
}

func cssFrame(f model.Frame) string {
	return "opacity: " + cssNumber(f.Opacity) + "; transform: translateY(" + cssNumber(f.OffsetY) + "px);"
}

func cssEasing(c model.Easing) string {
	return "cubic-bezier(" + cssNumber(c.X1) + ", " + cssNumber(c.Y1) + ", " +
		cssNumber(c.X2) + ", " + cssNumber(c.Y2) + ")"
}

func cssMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func cssNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
