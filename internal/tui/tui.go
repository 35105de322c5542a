package tui

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/juanibiapina/sideswipe/internal/config"
	"github.com/juanibiapina/sideswipe/internal/deck"
	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/juanibiapina/sideswipe/internal/telemetry"
	"github.com/juanibiapina/sideswipe/internal/watch"
)

// Modal mode
type modalMode int

const (
	modalNone modalMode = iota
	modalGoto
	modalHelp
)

const (
	// Rows outside the strip: header, pager and status bar
	chromeRows = 3

	minItemWidth   = 10
	widthStep      = 4
	fallbackWidth  = 80
	messageTimeout = 3 * time.Second
)

// frameMsg advances the strip animation by one frame
type frameMsg struct{}

// viewabilityMsg fires when a viewable set has been held for the dwell time
type viewabilityMsg struct {
	gen uint64
}

// positionSavedMsg is sent after a resume position was written
type positionSavedMsg struct {
	index int
	err   error
}

// deckChangedMsg is sent when the watched deck file changed on disk
type deckChangedMsg struct{}

// actionResultMsg is sent after an action completes
type actionResultMsg struct {
	message string
	isError bool
}

// frame is the card size shared with the render callback
type frame struct {
	itemWidth int
	height    int
}

// indexChanges collects index-change callbacks until the next update drains them
type indexChanges struct {
	pending   []int
	lastSaved int
	saved     bool
}

func (c *indexChanges) record(index int) {
	c.pending = append(c.pending, index)
}

func (c *indexChanges) drain() []int {
	out := c.pending
	c.pending = nil
	return out
}

// Options configures a TUI session
type Options struct {
	Deck   *deck.Deck
	Config *config.Config

	// Store persists resume positions. Nil disables resume.
	Store *storage.Store

	// Index is the item to open at. Negative restores the stored position.
	Index int

	// Watcher reloads the deck whenever its file changes. Optional.
	Watcher *watch.Watcher
}

// Model is the main TUI model
type Model struct {
	deck    *deck.Deck
	cfg     *config.Config
	store   *storage.Store
	watcher *watch.Watcher

	carousel *carousel.Carousel[deck.Item]
	host     *strip
	deferred *deferredQueue
	views    *viewabilityTracker
	drag     *dragTracker
	changes  *indexChanges
	frame    *frame
	now      func() time.Time

	// State
	width       int
	height      int
	ready       bool
	fixedWidth  bool
	modal       modalMode
	message     string
	messageTime time.Time
	isError     bool

	// Components
	help      help.Model
	textInput textinput.Model
}

// New creates a new TUI model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "item number"
	ti.CharLimit = 8
	ti.Width = 20

	h := help.New()
	h.ShowAll = true

	m := Model{
		deck:      opts.Deck,
		cfg:       cfg,
		store:     opts.Store,
		watcher:   opts.Watcher,
		host:      newStrip(cfg.NativeDriver),
		deferred:  newDeferredQueue(),
		views:     &viewabilityTracker{},
		drag:      &dragTracker{scale: cfg.VelocityScale},
		changes:   &indexChanges{},
		frame:     &frame{},
		now:       time.Now,
		help:      h,
		textInput: ti,
	}

	index := opts.Index
	if index < 0 {
		index = m.storedIndex()
	}

	contentOffset := float64(cfg.ContentOffset)
	m.carousel = carousel.New(carousel.Config[deck.Item]{
		Items:            opts.Deck.Items,
		Index:            index,
		ItemWidth:        float64(cfg.ItemWidth),
		ContentOffset:    contentOffset,
		CaptureThreshold: cfg.CaptureThreshold,
		DragThreshold:    cfg.DragThreshold,
		UseNativeDriver:  cfg.NativeDriver,
		SettleGrace:      cfg.SettleGrace.Duration,
		RenderItem:       m.frame.renderCard,
		ShouldRelease:    yieldToVertical,
		OnIndexChange:    m.changes.record,
	}, m.host, m.deferred, m.autoWidth(fallbackWidth))

	m.host.layout = m.carousel.ItemLayout
	m.host.ScrollToOffset(m.carousel.Offset(), false)
	m.frame.itemWidth = int(m.carousel.Geometry().ItemWidth)
	m.changes.lastSaved = m.carousel.Index()
	m.changes.saved = true

	return m
}

// yieldToVertical hands a gesture to the surrounding screen once it has
// become mostly vertical
func yieldToVertical(s carousel.GestureState) bool {
	return math.Abs(s.DY) > math.Abs(s.DX)
}

func (m Model) resumable() bool {
	return m.store != nil && m.cfg.Resume && m.deck.Source != ""
}

func (m Model) storedIndex() int {
	if !m.resumable() {
		return 0
	}
	index, ok, err := m.store.Position(m.deck.Source)
	if err != nil {
		slog.Warn("tui: failed to read resume position", "deck", m.deck.Source, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	return index
}

// autoWidth is the page width that fills a terminal of the given width
func (m Model) autoWidth(terminalWidth int) float64 {
	return float64(max(terminalWidth-2*m.cfg.ContentOffset, minItemWidth))
}

func (m Model) stripHeight() int {
	return max(m.height-chromeRows, 3)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks until the watcher reports a change to the deck file
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return deckChangedMsg{}
	}
}

// reloadDeck re-reads the deck file and hands the new items to the carousel
func (m *Model) reloadDeck() {
	d, err := deck.Read(m.deck.Source)
	if err != nil {
		slog.Warn("tui: deck reload failed", "deck", m.deck.Source, "error", err)
		m.setMessage(fmt.Sprintf("Reload failed: %v", err), true)
		return
	}

	m.deck.Title = d.Title
	m.deck.Items = d.Items
	m.carousel.SetItems(d.Items)
	slog.Info("tui: deck reloaded", "deck", m.deck.Source, "items", len(d.Items), "index", m.carousel.Index())
	m.setMessage(fmt.Sprintf("Reloaded %d items", len(d.Items)), false)
}

// Update handles a message, then flushes whatever the carousel asked for
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.frame.height = m.stripHeight()

		if m.cfg.ItemWidth == 0 && !m.fixedWidth {
			m.carousel.SetItemWidth(m.autoWidth(msg.Width))
		}
		m.frame.itemWidth = int(m.carousel.Geometry().ItemWidth)

	case tea.MouseMsg:
		if m.modal == modalNone {
			m.handleMouse(msg)
		}

	case tea.KeyMsg:
		if m.modal != modalNone {
			m, cmd = m.updateModal(msg)
		} else {
			m, cmd = m.updateMain(msg)
		}

	case frameMsg:
		m.host.ticking = false
		m.host.step()

	case deferredMsg:
		m.deferred.run(msg.id)

	case viewabilityMsg:
		if ev, ok := m.views.fire(msg.gen, m.carousel.Key); ok {
			slog.Debug("tui: viewable items changed", "viewable", len(ev.ViewableItems), "changed", len(ev.Changed))
			m.carousel.ViewableItemsChanged(ev)
		}

	case deckChangedMsg:
		m.reloadDeck()
		cmd = m.waitForChange()

	case positionSavedMsg:
		if msg.err != nil {
			m.setMessage(fmt.Sprintf("Failed to save position: %v", msg.err), true)
		}

	case actionResultMsg:
		m.setMessage(msg.message, msg.isError)
	}

	return m, m.flush(cmd)
}

// flush turns pending carousel side effects into commands
func (m Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	cmds = append(cmds, m.deferred.commands()...)

	if m.host.consumeSettled() {
		m.carousel.AnimationComplete()
	}

	if m.host.animating && !m.host.ticking {
		m.host.ticking = true
		cmds = append(cmds, tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}

	if m.ready {
		viewable := viewableIndices(m.carousel.Geometry(), m.carousel.Len(), m.host.Position(), float64(m.width), m.cfg.CoveragePercent)
		if gen, schedule := m.views.observe(viewable); schedule {
			cmds = append(cmds, tea.Tick(m.cfg.MinimumViewTime.Duration, func(time.Time) tea.Msg {
				return viewabilityMsg{gen: gen}
			}))
		}
	}

	for _, index := range m.changes.drain() {
		if m.changes.saved && index == m.changes.lastSaved {
			continue
		}
		m.changes.lastSaved = index
		m.changes.saved = true
		if m.resumable() {
			cmds = append(cmds, m.savePosition(index))
		}
	}

	return tea.Batch(cmds...)
}

func (m Model) savePosition(index int) tea.Cmd {
	store := m.store
	source := m.deck.Source
	return func() tea.Msg {
		return positionSavedMsg{index: index, err: store.SavePosition(source, index)}
	}
}

func (m *Model) setMessage(message string, isError bool) {
	m.message = message
	m.isError = isError
	m.messageTime = m.now()
}

func (m Model) inStrip(y int) bool {
	return y >= 1 && y < 1+m.stripHeight()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	now := m.now()

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.step(-1)

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.step(1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inStrip(msg.Y) {
			m.drag.press(msg.X, msg.Y, now)
		}

	case msg.Action == tea.MouseActionMotion:
		if !m.drag.active {
			return
		}
		s := m.drag.move(msg.X, msg.Y, now)
		if !m.drag.captured {
			if !m.carousel.HandleCapture(s) {
				return
			}
			m.drag.captured = true
		}
		if !m.inStrip(msg.Y) && m.carousel.HandleTerminationRequest(s) {
			m.drag.cancel()
			return
		}
		m.carousel.HandleMove(s)

	case msg.Action == tea.MouseActionRelease:
		if !m.drag.active {
			return
		}
		captured := m.drag.captured
		s := m.drag.end(msg.X, msg.Y, now)
		if captured {
			from := m.carousel.Index()
			to := m.carousel.HandleRelease(s)
			telemetry.TUIRelease(from, to)
		}
	}
}

// step moves delta items through the external index path
func (m *Model) step(delta int) {
	m.carousel.SetIndex(m.carousel.Index() + delta)
}

func (m *Model) setItemWidth(width int) {
	ceiling := max(m.width, minItemWidth)
	width = min(max(width, minItemWidth), ceiling)
	m.fixedWidth = true
	m.carousel.SetItemWidth(float64(width))
	m.frame.itemWidth = int(m.carousel.Geometry().ItemWidth)
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.modal {
	case modalGoto:
		switch {
		case key.Matches(msg, keys.Escape):
			m.modal = modalNone
			return m, nil
		case key.Matches(msg, keys.Enter):
			m.modal = modalNone
			return m, m.gotoItem(m.textInput.Value())
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case modalHelp:
		switch {
		case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Help), msg.String() == "q":
			m.modal = modalNone
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// gotoItem jumps to a 1-based item number typed into the prompt
func (m *Model) gotoItem(value string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return func() tea.Msg {
			return actionResultMsg{message: fmt.Sprintf("Not an item number: %q", value), isError: true}
		}
	}
	telemetry.TUIActionExecute("goto")
	m.carousel.SetIndex(n - 1)
	return nil
}

func (m Model) updateMain(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Prev):
		m.step(-1)

	case key.Matches(msg, keys.Next):
		m.step(1)

	case key.Matches(msg, keys.First):
		m.carousel.SetIndex(0)

	case key.Matches(msg, keys.Last):
		m.carousel.SetIndex(m.carousel.Len() - 1)

	case key.Matches(msg, keys.Goto):
		m.modal = modalGoto
		m.textInput.Reset()
		return m, m.textInput.Focus()

	case key.Matches(msg, keys.Wider):
		m.setItemWidth(m.frame.itemWidth + widthStep)

	case key.Matches(msg, keys.Narrower):
		m.setItemWidth(m.frame.itemWidth - widthStep)

	case key.Matches(msg, keys.Copy):
		telemetry.TUIActionExecute("copy")
		text := m.carousel.Item(m.carousel.Index()).Text()
		if err := clipboard.WriteAll(text); err != nil {
			m.setMessage(fmt.Sprintf("Failed to copy: %v", err), true)
		} else {
			m.setMessage("Item copied to clipboard", false)
		}

	case key.Matches(msg, keys.Help):
		m.modal = modalHelp
	}

	return m, nil
}

// Start runs the TUI until the user quits
func Start(opts Options) error {
	telemetry.TUISessionStart(len(opts.Deck.Items))
	defer telemetry.TUISessionEnd()

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
