package ui

import (
	"reflect"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/theme"
	"github.com/atomicstack/tabdeck/internal/ui/command"
	uistate "github.com/atomicstack/tabdeck/internal/ui/state"
	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Interactive is implemented by tab content that consumes input while its
// tab is selected.
type Interactive interface {
	Update(tea.Msg) tea.Cmd
}

// Resizable is implemented by tab content that wants the size of the content
// area.
type Resizable interface {
	SetSize(width, height int)
}

// Options configures a Model. Zero values select sensible defaults.
// AltScreen and Mouse are carried on every rendered view.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	AltScreen  bool
	Mouse      bool
	Keys       KeyMap
	Clipboard  func(string) error
}

// Model implements the Bubble Tea model for the tab strip, the content area
// and the popup menus.
type Model struct {
	store    *tabs.Store
	registry *tabs.Registry
	bus      *command.Bus
	keys     KeyMap

	overlays     uistate.Overlays
	filterCursor cursor.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	stripOffset int

	showFooter bool
	verbose    bool
	altScreen  bool
	mouse      bool
	errMsg     string
	infoMsg    string
	quitting   bool

	clipboard func(string) error
	handlers  map[reflect.Type]msgHandler
}

type clipboardResultMsg struct {
	text string
	err  error
}

// NewModel builds the UI over an existing store and registry.
func NewModel(store *tabs.Store, registry *tabs.Registry, opts Options) *Model {
	m := &Model{
		store:      store,
		registry:   registry,
		bus:        command.New(store, registry),
		keys:       opts.Keys.resolved(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		altScreen:  opts.AltScreen,
		mouse:      opts.Mouse,
		clipboard:  opts.Clipboard,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.Style = *styles.FilterCursor
	c.TextStyle = *styles.Filter
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	m.resizeAll()
	m.ensureSelectedVisible()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if cmd := m.forwardToContent(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):    m.handleKeyMsg,
		reflect.TypeOf(tea.MouseClickMsg{}):  m.handleMouseClickMsg,
		reflect.TypeOf(tea.MouseWheelMsg{}):  m.handleMouseWheelMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(clipboardResultMsg{}): m.handleClipboardResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.ensureSelectedVisible()
	if l := m.overlays.NewTab.List; m.overlays.NewTab.Visible && l != nil {
		l.EnsureCursorVisible(m.newTabVisibleRows())
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	m.resizeAll()
	return nil
}

func (m *Model) handleClipboardResultMsg(msg tea.Msg) tea.Cmd {
	res := msg.(clipboardResultMsg)
	if res.err != nil {
		events.Action.Error(res.err)
		m.setError("copy failed: " + res.err.Error())
		return nil
	}
	m.setInfo("copied " + res.text)
	return nil
}

// execute runs a command and reflects its outcome in the status row.
func (m *Model) execute(req command.Request) command.Result {
	res := m.bus.Execute(req)
	switch {
	case res.Missing:
		m.setError(res.Info)
	case res.Changed:
		if res.Kind == command.Add || res.Kind == command.Reopen {
			m.resize(res.Target)
		}
		if res.Info != "" {
			m.setInfo(res.Info)
		}
	}
	return res
}

func (m *Model) forwardToContent(msg tea.Msg) tea.Cmd {
	id, ok := m.store.Selected()
	if !ok {
		return nil
	}
	content, ok := m.store.Content(id)
	if !ok {
		return nil
	}
	if in, ok := content.(Interactive); ok {
		return in.Update(msg)
	}
	return nil
}

func (m *Model) resizeAll() {
	for _, info := range m.store.Tabs() {
		m.resize(info.ID)
	}
}

func (m *Model) resize(id tabs.TabID) {
	content, ok := m.store.Content(id)
	if !ok {
		return
	}
	if r, ok := content.(Resizable); ok {
		w, _ := m.size()
		r.SetSize(w, m.contentHeight())
	}
}

func (m *Model) setError(msg string) {
	m.errMsg = msg
	m.infoMsg = ""
}

// setInfo records a success message. Info is only shown in verbose mode.
func (m *Model) setInfo(msg string) {
	events.Action.Success(msg)
	if m.verbose {
		m.infoMsg = msg
	}
}

func (m *Model) clearStatus() {
	m.errMsg = ""
	m.infoMsg = ""
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// Open adds a tab of the named registered type, as if picked from the
// new-tab menu. Unknown names leave the store untouched and show a
// suggestion in the status row.
func (m *Model) Open(typeName string) bool {
	res := m.execute(command.Request{Kind: command.Add, TypeName: typeName})
	m.ensureSelectedVisible()
	return !res.Missing
}

// Store exposes the tab store backing the model.
func (m *Model) Store() *tabs.Store { return m.store }

// Overlays exposes the popup state.
func (m *Model) Overlays() *uistate.Overlays { return &m.overlays }

// Status returns the current error and info messages.
func (m *Model) Status() (errMsg, infoMsg string) { return m.errMsg, m.infoMsg }

// Quitting reports whether a quit was requested.
func (m *Model) Quitting() bool { return m.quitting }
