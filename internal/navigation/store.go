package navigation

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/logger"
)

// Phase is the transition state of the navigation store.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadingOut:
		return "fading_out"
	case PhaseFadingIn:
		return "fading_in"
	default:
		return "idle"
	}
}

// Timings holds the fixed delays of the navigation choreography.
type Timings struct {
	FadeOut    time.Duration
	FadeIn     time.Duration
	ModalClear time.Duration
}

// DefaultTimings returns the stock delays: 300ms fade-out, 600ms fade-in,
// 500ms before a closed modal releases its project.
func DefaultTimings() Timings {
	return Timings{
		FadeOut:    300 * time.Millisecond,
		FadeIn:     600 * time.Millisecond,
		ModalClear: 500 * time.Millisecond,
	}
}

// Scheduler turns a delayed message into a command.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler delivers msg through tea.Tick after d.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// State is a snapshot of the store.
type State struct {
	ActiveTab       Tab
	PreviousTab     Tab
	IsMenuOpen      bool
	IsTransitioning bool
	IsModalOpen     bool
	SelectedProject *content.Project
	Phase           Phase
	// PendingTab is the request queued behind the running transition, if any.
	PendingTab Tab
}

// Options configures a Store.
type Options struct {
	Timings   Timings
	Scheduler Scheduler
	History   *History
	Logger    *logger.Logger
}

// Store owns the view/navigation state. All mutations go through its
// methods; timers come back as messages routed through Update.
type Store struct {
	state State

	// target is the tab the running transition commits to.
	target  Tab
	pending Tab

	seq      uint64
	modalSeq uint64

	initialized bool

	timings  Timings
	schedule Scheduler
	history  *History
	log      *logger.Logger
}

// NewStore creates a store on the landing tab.
func NewStore(opts Options) *Store {
	timings := opts.Timings
	if timings == (Timings{}) {
		timings = DefaultTimings()
	}
	schedule := opts.Scheduler
	if schedule == nil {
		schedule = TickScheduler
	}
	history := opts.History
	if history == nil {
		history = NewHistory()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Store{
		state:    State{ActiveTab: TabLanding},
		timings:  timings,
		schedule: schedule,
		history:  history,
		log:      log.Component("navigation"),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	st := s.state
	st.PendingTab = s.pending
	return st
}

// History exposes the session history.
func (s *Store) History() *History {
	return s.history
}

// Init selects the initial tab from the location's view parameter and
// replaces the current history entry. Only the first call has any effect.
func (s *Store) Init(location string) {
	if s.initialized {
		return
	}
	s.initialized = true

	if tab, ok := TabFromLocation(location); ok {
		s.SetActiveTabDirect(tab)
		s.history.Replace(EntryFor(tab))
		s.log.WithFields(map[string]any{"tab": string(tab)}).Debug("initial view from location")
		return
	}
	s.history.Replace(EntryFor(TabLanding))
}

// SetActiveTab starts the fade-out/commit/fade-in transition to tab.
// Requesting the active tab only closes the menu. A request made while a
// transition is running is queued (latest wins) and starts once the
// running transition's fade-in completes.
func (s *Store) SetActiveTab(tab Tab) tea.Cmd {
	if !tab.Valid() {
		tab = TabLanding
	}
	s.state.IsMenuOpen = false

	if s.state.Phase != PhaseIdle {
		if tab == s.target {
			s.pending = ""
		} else {
			s.pending = tab
		}
		s.log.WithFields(map[string]any{"tab": string(tab), "phase": s.state.Phase.String()}).Debug("tab change queued behind transition")
		return nil
	}

	if tab == s.state.ActiveTab {
		return nil
	}

	s.seq++
	s.target = tab
	s.state.PreviousTab = s.state.ActiveTab
	s.state.IsTransitioning = true
	s.state.Phase = PhaseFadingOut
	s.log.WithFields(map[string]any{"from": string(s.state.ActiveTab), "to": string(tab)}).Debug("tab transition started")

	return s.schedule(s.timings.FadeOut, FadeOutElapsedMsg{Seq: s.seq})
}

// SetActiveTabDirect commits tab immediately without timers or history
// changes. Any running transition is abandoned.
func (s *Store) SetActiveTabDirect(tab Tab) {
	if !tab.Valid() {
		tab = TabLanding
	}
	s.seq++
	s.target = ""
	s.pending = ""
	s.state.Phase = PhaseIdle
	s.state.IsTransitioning = false
	s.state.ActiveTab = tab
	s.state.IsMenuOpen = false
}

// Back restores the previous history entry, as a browser back does.
func (s *Store) Back() bool {
	entry, ok := s.history.Back()
	if !ok {
		return false
	}
	s.restore(entry)
	return true
}

// Forward restores the next history entry.
func (s *Store) Forward() bool {
	entry, ok := s.history.Forward()
	if !ok {
		return false
	}
	s.restore(entry)
	return true
}

func (s *Store) restore(entry Entry) {
	tab := entry.Tab
	if !tab.Valid() {
		tab = TabLanding
	}
	s.log.WithFields(map[string]any{"tab": string(tab), "url": entry.URL}).Debug("restoring history entry")
	s.SetActiveTabDirect(tab)
}

// ToggleMenu flips the menu overlay.
func (s *Store) ToggleMenu() {
	s.state.IsMenuOpen = !s.state.IsMenuOpen
}

// SetMenuOpen opens or closes the menu overlay.
func (s *Store) SetMenuOpen(open bool) {
	s.state.IsMenuOpen = open
}

// SetTransitioning overrides the transitioning flag.
func (s *Store) SetTransitioning(transitioning bool) {
	s.state.IsTransitioning = transitioning
}

// OpenModal shows project in the detail overlay.
func (s *Store) OpenModal(project content.Project) {
	s.modalSeq++
	p := project
	s.state.IsModalOpen = true
	s.state.SelectedProject = &p
}

// CloseModal hides the overlay now and releases the project after the
// modal-clear delay so the fading overlay can still render it.
func (s *Store) CloseModal() tea.Cmd {
	s.state.IsModalOpen = false
	s.modalSeq++
	return s.schedule(s.timings.ModalClear, ModalClearMsg{Seq: s.modalSeq})
}

// Update advances timers. It reports whether msg belonged to the store.
func (s *Store) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case FadeOutElapsedMsg:
		return s.commit(msg.Seq), true
	case FadeInElapsedMsg:
		return s.finish(msg.Seq), true
	case ModalClearMsg:
		if msg.Seq == s.modalSeq && !s.state.IsModalOpen {
			s.state.SelectedProject = nil
		}
		return nil, true
	}
	return nil, false
}

func (s *Store) commit(seq uint64) tea.Cmd {
	if seq != s.seq || s.state.Phase != PhaseFadingOut {
		return nil
	}
	s.state.ActiveTab = s.target
	s.history.Push(EntryFor(s.target))
	s.state.Phase = PhaseFadingIn
	return s.schedule(s.timings.FadeIn, FadeInElapsedMsg{Seq: seq})
}

func (s *Store) finish(seq uint64) tea.Cmd {
	if seq != s.seq || s.state.Phase != PhaseFadingIn {
		return nil
	}
	s.state.Phase = PhaseIdle
	s.state.IsTransitioning = false
	s.target = ""

	next := s.pending
	s.pending = ""
	if next != "" && next != s.state.ActiveTab {
		return s.SetActiveTab(next)
	}
	return nil
}
