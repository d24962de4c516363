package model

import (
	"math"
	"time"
)

// Frame is the visual state of an animated element at one instant.
// OffsetY is the vertical translation in CSS pixels.
type Frame struct {
	Opacity float64
	OffsetY float64
}

// Easing is a CSS cubic-bezier timing function with control points
// (X1, Y1) and (X2, Y2). The end points are fixed at (0,0) and (1,1).
type Easing struct {
	X1, Y1, X2, Y2 float64
}

// EaseDefault is the CSS "ease" curve, the browser default timing function.
var EaseDefault = Easing{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}

// DefaultDuration is used for transitions that do not set their own duration.
const DefaultDuration = 300 * time.Millisecond

// Entrance is a one-shot transition from From to To that runs once when the
// element first renders. Nothing about it is interactive or cancellable.
type Entrance struct {
	Name     string
	From     Frame
	To       Frame
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
}

// HeadingEntrance fades the heading in while sliding it up 20px.
func HeadingEntrance() Entrance {
	return Entrance{
		Name:     "enter-heading",
		From:     Frame{Opacity: 0, OffsetY: 20},
		To:       Frame{Opacity: 1, OffsetY: 0},
		Duration: 800 * time.Millisecond,
		Easing:   EaseDefault,
	}
}

// ParagraphEntrance fades the description in after a short delay.
func ParagraphEntrance() Entrance {
	return Entrance{
		Name:     "enter-paragraph",
		From:     Frame{Opacity: 0},
		To:       Frame{Opacity: 1},
		Duration: DefaultDuration,
		Delay:    300 * time.Millisecond,
		Easing:   EaseDefault,
	}
}

// Entrances returns every entrance animation used on the landing page.
func Entrances() []Entrance {
	return []Entrance{HeadingEntrance(), ParagraphEntrance()}
}

// At returns the frame elapsed time after mount. Before Delay the element
// holds From, after Delay+Duration it holds To.
func (e Entrance) At(elapsed time.Duration) Frame {
	t := elapsed - e.Delay
	if t <= 0 {
		return e.From
	}
	if e.Duration <= 0 || t >= e.Duration {
		return e.To
	}

	p := e.Easing.Progress(float64(t) / float64(e.Duration))
	return Frame{
		Opacity: lerp(e.From.Opacity, e.To.Opacity, p),
		OffsetY: lerp(e.From.OffsetY, e.To.OffsetY, p),
	}
}

// Total is the time from mount until the element reaches its final frame.
func (e Entrance) Total() time.Duration {
	return e.Delay + e.Duration
}

// Progress maps linear time t in [0,1] to eased progress by solving the
// bezier for x(s) = t and returning y(s).
func (c Easing) Progress(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	s := c.solveX(t)
	return bezier(s, c.Y1, c.Y2)
}

func (c Easing) solveX(x float64) float64 {
	const (
		epsilon    = 1e-7
		iterations = 8
	)

	// Newton-Raphson first, bisection if the slope is too flat.
	s := x
	for range iterations {
		dx := bezier(s, c.X1, c.X2) - x
		if math.Abs(dx) < epsilon {
			return s
		}
		d := bezierSlope(s, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := bezier(s, c.X1, c.X2)
		if math.Abs(v-x) < epsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}

// bezier evaluates one axis of a cubic bezier with end points 0 and 1.
func bezier(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
