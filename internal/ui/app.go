// Package ui provides the Bubble Tea display for tempview.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rlund/tempview/internal/monitor"
	"github.com/rlund/tempview/internal/prefs"
	"github.com/rlund/tempview/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewMain View = iota
	ViewPicker
	ViewHelp
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string
	UITick    time.Duration // display refresh cadence, not the log poll interval
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	prefsPath string
	uiTick    time.Duration
	keys      keyMap

	// Presentation state
	fontSize int
	bgName   string
	styles   Styles

	// UI state
	currentView View
	width       int
	height      int
	ready       bool

	// File picker state
	picker filepicker.Model

	// Data state
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	uiTick := opts.UITick
	if uiTick == 0 {
		uiTick = time.Second
	}

	p := opts.Prefs
	if p == (prefs.Prefs{}) {
		p = prefs.Default()
	}
	p.FontSize = prefs.ClampFontSize(p.FontSize)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	picker := filepicker.New()
	picker.AllowedTypes = []string{".txt", ".log", ".csv"}
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		prefsPath:   prefsPath,
		uiTick:      uiTick,
		keys:        defaultKeyMap(),
		fontSize:    p.FontSize,
		bgName:      GetBackground(p.Background).Name,
		styles:      NewStyles(GetBackground(p.Background)),
		currentView: ViewMain,
		picker:      picker,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.uiTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.Height = max(msg.Height-4, 5)
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.uiTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	if m.currentView == ViewPicker {
		return m.updatePicker(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help.
	if m.currentView == ViewHelp {
		m.currentView = ViewMain
		return m, nil
	}

	if m.currentView == ViewPicker {
		if key.Matches(msg, m.keys.Escape) {
			m.currentView = ViewMain
			return m, nil
		}
		return m.updatePicker(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.currentView = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.SelectFile):
		m.currentView = ViewPicker
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.RefreshNow):
		if m.store != nil {
			return m, refreshNowCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.FontBigger):
		m.setFontSize(m.fontSize + 1)
		return m, nil

	case key.Matches(msg, m.keys.FontSmaller):
		m.setFontSize(m.fontSize - 1)
		return m, nil

	case key.Matches(msg, m.keys.NextBg):
		m.setBackground(NextBackground(m.bgName))
		return m, nil

	case key.Matches(msg, m.keys.PrevBg):
		m.setBackground(PrevBackground(m.bgName))
		return m, nil
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.store.SetFilePath(path)
		m.currentView = ViewMain
		// Immediate refresh on selection; the running schedule is untouched.
		return m, refreshNowCmd(m.store)
	}
	return m, cmd
}

func (m *Model) setFontSize(size int) {
	m.fontSize = prefs.ClampFontSize(size)
	m.savePrefs()
}

func (m *Model) setBackground(name string) {
	m.bgName = name
	m.styles = NewStyles(GetBackground(name))
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{FontSize: m.fontSize, Background: m.bgName})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.currentView {
	case ViewHelp:
		return m.renderHelp()
	case ViewPicker:
		return m.renderPicker()
	default:
		return m.renderMain()
	}
}

func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	body := m.styles.Screen.
		Width(m.width).
		Height(bodyHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.renderBody())

	return header + "\n" + body + "\n" + footer
}

func (m Model) renderHeader() string {
	logo := m.styles.Logo.Render(" tempview ")
	path := "no file selected"
	if p := m.snapshot.FilePath; p != "" {
		path = p
	}
	line := logo + m.styles.Muted.Render(" · "+path)
	return m.styles.Screen.Width(m.width).Render(line)
}

func (m Model) renderBody() string {
	snap := m.snapshot

	if snap.FilePath == "" {
		return m.styles.Caption.Render("No file selected") + "\n" +
			m.styles.Muted.Render("press o to choose a temperature log")
	}

	if snap.LastError != nil {
		msg := m.styles.Danger.Render(snap.LastError.Error())
		if snap.Stale() {
			msg += "\n" + m.styles.Muted.Render(
				fmt.Sprintf("%d refreshes failed in a row", snap.ConsecutiveFailures))
		}
		return msg
	}

	if !snap.HasReading {
		return m.styles.Muted.Render("Waiting for first reading...")
	}

	caption := m.styles.Caption.Render(snap.Reading.Display())
	if m.fontSize <= prefs.MinFontSize {
		return caption
	}

	banner := RenderBanner(fmt.Sprintf("%.1f°C", snap.Reading.Temperature), m.fontSize-1)
	return m.styles.Banner.Render(banner) + "\n\n" + caption
}

func (m Model) renderFooter() string {
	hints := []string{"o file", "r refresh", "+/- font", "b background", "h help", "q quit"}
	line := m.styles.Muted.Render(" " + strings.Join(hints, " · "))
	if !m.snapshot.LastUpdated.IsZero() {
		line += m.styles.Muted.Render(
			"  updated " + m.snapshot.LastUpdated.Format("15:04:05"))
	}
	return m.styles.Screen.Width(m.width).Render(line)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("tempview keys"))
	b.WriteString("\n\n")
	for _, binding := range m.keys.helpEntries() {
		h := binding.Help()
		b.WriteString(fmt.Sprintf("  %-6s %s\n",
			m.styles.Caption.Render(h.Key), m.styles.Muted.Render(h.Desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))

	return m.styles.Screen.
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (m Model) renderPicker() string {
	title := m.styles.Logo.Render(" select a temperature log ")
	hint := m.styles.Muted.Render(" enter to select · esc to cancel")
	return title + "\n\n" + m.picker.View() + "\n" + hint
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// refreshNowCmd runs the same refresh path as the scheduled tick, then hands
// the fresh snapshot to the view.
func refreshNowCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		monitor.Refresh(store)
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
