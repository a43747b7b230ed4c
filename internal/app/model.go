package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"notepad/internal/actionlog"
	"notepad/internal/logging"
	"notepad/internal/notes"
	"notepad/internal/types"
)

const (
	defaultMaxWidth    = 60
	minContentWidth    = 20
	activityPaneLines  = 5
	defaultPlaceholder = "Enter note..."
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusList
)

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	ActionLog       actionlog.Logger
	Keybindings     *Keybindings
	Diag            logging.Logger
	Placeholder     string
	MaxWidth        int
	MarkdownPreview bool
	IDGenerator     func() string
}

type Model struct {
	store       *notes.Store
	activity    *activityFeed
	input       *NoteInput
	focus       focusTarget
	selected    int
	keybindings *Keybindings
	hotkeys     *HotkeyRenderer
	diag        logging.Logger

	previewEnabled bool
	showPreview    bool
	showActivity   bool

	width    int
	height   int
	maxWidth int

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
	now        func() time.Time

	quitting bool
}

func NewModel(opts Options) Model {
	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	maxWidth = max(maxWidth, minContentWidth)
	placeholder := strings.TrimSpace(opts.Placeholder)
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	diag := opts.Diag
	if diag == nil {
		diag = logging.Nop()
	}
	activity := &activityFeed{}
	var storeOpts []notes.Option
	if opts.IDGenerator != nil {
		storeOpts = append(storeOpts, notes.WithIDGenerator(opts.IDGenerator))
	}
	m := Model{
		store:          notes.New(actionlog.Multi(opts.ActionLog, activity), storeOpts...),
		activity:       activity,
		input:          NewNoteInput(maxWidth, placeholder),
		focus:          focusInput,
		diag:           diag.With(logging.F("component", "ui")),
		previewEnabled: opts.MarkdownPreview,
		maxWidth:       maxWidth,
		now:            time.Now,
	}
	m.applyKeybindings(opts.Keybindings)
	m.resize(0, 0)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyPressMsg:
		return m, m.reduceKey(msg)
	}
	return m, m.input.Update(msg)
}

// Snapshot exposes the store state for callers embedding the model.
func (m *Model) Snapshot() types.Snapshot {
	return m.store.Snapshot()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Resize(m.contentWidth() - inputFrameStyle.GetHorizontalFrameSize() - submitButtonWidth(m.store.SubmitLabel()))
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return m.maxWidth
	}
	return max(minContentWidth, min(m.width, m.maxWidth))
}

// applyEffect performs the view side of a store transition.
func (m *Model) applyEffect(effect types.Effect) tea.Cmd {
	if effect.IsZero() {
		return nil
	}
	cmd := m.input.Apply(effect)
	if effect.FocusInput {
		m.focus = focusInput
	}
	return cmd
}

func (m *Model) focusInputField() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) focusListPane() {
	m.focus = focusList
	m.input.Blur()
	m.clampSelection()
}

func (m *Model) clampSelection() {
	count := m.store.Len()
	if count == 0 {
		m.selected = 0
		return
	}
	m.selected = max(0, min(m.selected, count-1))
}

// reportAction surfaces the most recent logged action as a toast and keeps
// the list selection on the note it touched.
func (m *Model) reportAction() {
	action, ok := m.activity.takeLast()
	if !ok {
		return
	}
	if action.Kind != types.ActionDisabled {
		m.selected = action.Index
	}
	m.showInfoToast(action.Message())
	m.diag.Debug("note action",
		logging.F("kind", string(action.Kind)),
		logging.F("index", action.Index),
		logging.F("note_id", action.NoteID),
	)
}

func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(&model)
	_, err := p.Run()
	return err
}
