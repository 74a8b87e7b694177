package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate     = 60
	scrollFreq    = 6.0
	scrollDamping = 1.0
	settleEpsilon = 0.01
)

// frameMsg is one animation frame for the scroller mounted as ID.
type frameMsg struct {
	ID uint64
}

func frameCmd(id uint64) tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{ID: id}
	})
}

// scroller eases a line offset toward its target with a critically damped
// spring. Its frame loop runs only while it is moving and only for its own
// mount id, so frames from an unmounted view are dropped.
type scroller struct {
	id      uint64
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	running bool
}

func newScroller(id uint64) scroller {
	return scroller{
		id:     id,
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), scrollFreq, scrollDamping),
	}
}

// scrollTo clamps target into [0, max] and returns the command that starts
// the frame loop, or nil if it is already running or nothing moves.
func (s *scroller) scrollTo(target, max float64) tea.Cmd {
	if max < 0 {
		max = 0
	}
	target = math.Max(0, math.Min(target, max))
	s.target = target
	if s.running || s.settled() {
		return nil
	}
	s.running = true
	return frameCmd(s.id)
}

func (s *scroller) scrollBy(delta, max float64) tea.Cmd {
	return s.scrollTo(s.target+delta, max)
}

// advance runs one frame and schedules the next until the spring settles.
func (s *scroller) advance() tea.Cmd {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.settled() {
		s.pos = s.target
		s.vel = 0
		s.running = false
		return nil
	}
	return frameCmd(s.id)
}

func (s scroller) settled() bool {
	return math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon
}

func (s scroller) offset() int {
	return int(math.Round(s.pos))
}
