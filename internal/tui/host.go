package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/juanibiapina/sideswipe/internal/carousel"
)

const (
	frameRate = 60

	springFrequency = 7.0
	springDamping   = 0.9

	// Distance and speed below which a spring counts as at rest
	restEpsilon = 0.01
)

// strip is the horizontal list that displays the carousel pages. It takes
// scroll commands from the carousel and animates them with a spring when the
// native driver is enabled.
type strip struct {
	layout func(index int) carousel.Layout
	spring harmonica.Spring
	native bool

	position float64
	velocity float64
	target   float64

	animating bool

	// ticking is set while a frame tick is in flight
	ticking bool

	// settled is set when an animated scroll came to rest, or was cut short,
	// and is cleared by consumeSettled.
	settled bool
}

func newStrip(native bool) *strip {
	return &strip{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
		native: native,
	}
}

// ScrollToOffset moves the strip to offset.
func (s *strip) ScrollToOffset(offset float64, animated bool) {
	if animated && s.native {
		s.target = offset
		s.animating = true
		return
	}

	// An instant scroll ends any spring in flight, which counts as settling
	if animated || s.animating {
		s.settled = true
	}
	s.position = offset
	s.target = offset
	s.velocity = 0
	s.animating = false
}

// ScrollToIndex scrolls so item index starts viewOffset cells into the viewport.
func (s *strip) ScrollToIndex(index int, animated bool, viewOffset float64) {
	if s.layout == nil {
		return
	}
	s.ScrollToOffset(s.layout(index).Offset-viewOffset, animated)
}

// step advances the animation by one frame. It reports whether the strip is
// still moving.
func (s *strip) step() bool {
	if !s.animating {
		return false
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	if math.Abs(s.target-s.position) < restEpsilon && math.Abs(s.velocity) < restEpsilon {
		s.position = s.target
		s.velocity = 0
		s.animating = false
		s.settled = true
	}
	return s.animating
}

func (s *strip) consumeSettled() bool {
	settled := s.settled
	s.settled = false
	return settled
}

// Position returns the scroll position in cells.
func (s *strip) Position() float64 {
	return s.position
}

// Column returns the position rounded to a whole terminal column.
func (s *strip) Column() int {
	return int(math.Round(s.position))
}
