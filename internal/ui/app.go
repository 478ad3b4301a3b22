package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/utils"
)

type focusPane int

const (
	focusInput focusPane = iota
	focusList
)

// Model is the capture screen: one input line, the four category columns of the
// current mode, the streak and the last seven days.
type Model struct {
	ctx     context.Context
	session *engine.Session
	theme   Theme

	input  textinput.Model
	mode   engine.Mode
	manual engine.Category // "" means automatic
	focus  focusPane
	cursor int // index into m.items when focus == focusList

	items  []engine.Item
	status string
	err    error

	width, height int
	now           func() time.Time
	copy          func(string) error
	toast         func(string) error // nil disables the new-day toast
}

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces time.Now for the weekly chart and the copied report.
func WithClock(now func() time.Time) Option { return func(m *Model) { m.now = now } }

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option { return func(m *Model) { m.copy = write } }

// WithStreakToast sends a desktop toast the first time each day's discharge extends the streak.
func WithStreakToast(send func(string) error) Option { return func(m *Model) { m.toast = send } }

// New builds the model for session, starting in mode.
func New(ctx context.Context, session *engine.Session, mode engine.Mode, opts ...Option) Model {
	in := textinput.New()
	in.Placeholder = "Qu'avez-vous en tête ?"
	in.CharLimit = 500
	in.Width = 60
	in.Prompt = "› "
	in.Focus()

	m := Model{
		ctx:     ctx,
		session: session,
		theme:   DefaultTheme,
		input:   in,
		mode:    mode,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		width:   100,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, session *engine.Session, mode engine.Mode, opts ...Option) error {
	applyColorProfile()
	_, err := tea.NewProgram(New(ctx, session, mode, opts...), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ---------- messages & commands ----------

type dischargedMsg struct {
	item   engine.Item
	newDay bool // the discharge moved the streak to a new day
	err    error
}

type changedMsg struct {
	status string
	err    error
}

func (m Model) dischargeCmd(text string) tea.Cmd {
	session, ctx, mode, manual := m.session, m.ctx, m.mode, m.manual
	return func() tea.Msg {
		before := session.Streak()
		it, err := session.Discharge(ctx, text, mode, manual)
		newDay := err == nil && session.Streak().LastDay != before.LastDay
		return dischargedMsg{item: it, newDay: newDay, err: err}
	}
}

func (m Model) removeCmd(it engine.Item) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		ok, err := session.Remove(ctx, it.ID)
		if err != nil || !ok {
			return changedMsg{err: err}
		}
		return changedMsg{status: "🗑️ supprimé: " + utils.Truncate(it.Text, 40)}
	}
}

func (m Model) moveCmd(it engine.Item, c engine.Category) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		ok, err := session.Recategorize(ctx, it.ID, c)
		if err != nil || !ok {
			return changedMsg{err: err}
		}
		return changedMsg{status: fmt.Sprintf("%s déplacé vers %s", c.Icon(), c.Label())}
	}
}

func (m Model) toastCmd(streak engine.Streak) tea.Cmd {
	send := m.toast
	text := fmt.Sprintf("Tête vidée pour aujourd'hui. 🔥 Streak: %s.", days(streak.Count))
	return func() tea.Msg {
		if err := send(text); err != nil {
			return changedMsg{err: fmt.Errorf("notification: %w", err)}
		}
		return nil
	}
}

func (m Model) copyCmd() tea.Cmd {
	report := m.session.Report(m.mode, m.now())
	write := m.copy
	return func() tea.Msg {
		if err := write(report); err != nil {
			return changedMsg{err: fmt.Errorf("copie impossible: %w", err)}
		}
		return changedMsg{status: "📋 rapport copié"}
	}
}

// ---------- update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-8, 20)
		return m, nil

	case dischargedMsg:
		if msg.err != nil {
			m.err = msg.err
			if errors.Is(msg.err, engine.ErrEmptyText) {
				m.err = errors.New("rien à décharger")
			}
			m.refresh()
			return m, nil
		}
		m.err = nil
		m.manual = ""
		m.status = fmt.Sprintf("%s %s", msg.item.Category.Icon(), msg.item.Category.Label())
		m.refresh()
		if msg.newDay && m.toast != nil {
			return m, m.toastCmd(m.session.Streak())
		}
		return m, nil

	case changedMsg:
		m.err = msg.err
		if msg.status != "" {
			m.status = msg.status
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.toggleMode()
			return m, nil
		case "ctrl+n":
			m.cycleManual()
			return m, nil
		case "ctrl+y":
			return m, m.copyCmd()
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		text := m.input.Value()
		m.input.Reset()
		return m, m.dischargeCmd(text)
	case "down":
		if len(m.items) > 0 {
			m.focus = focusList
			m.cursor = 0
			m.input.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k := msg.String(); k {
	case "q":
		return m, tea.Quit
	case "esc", "i":
		m.focus = focusInput
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "d", "x", "delete":
		if it, ok := m.selected(); ok {
			return m, m.removeCmd(it)
		}
	case "1", "2", "3", "4":
		if it, ok := m.selected(); ok {
			c := engine.Categories[int(k[0]-'1')]
			return m, m.moveCmd(it, c)
		}
	}
	return m, nil
}

func (m *Model) toggleMode() {
	if m.mode == engine.ModeDump {
		m.mode = engine.ModeConfide
	} else {
		m.mode = engine.ModeDump
	}
	m.status = m.mode.Icon() + " " + m.mode.Label()
	m.refresh()
}

func (m *Model) cycleManual() {
	if m.manual == "" {
		m.manual = engine.Categories[0]
		return
	}
	for i, c := range engine.Categories {
		if c == m.manual {
			if i == len(engine.Categories)-1 {
				m.manual = ""
			} else {
				m.manual = engine.Categories[i+1]
			}
			return
		}
	}
}

// refresh reloads the current mode's items in column order.
func (m *Model) refresh() {
	var items []engine.Item
	for _, c := range engine.Categories {
		items = append(items, m.session.Query(engine.Query{Mode: m.mode, Category: c})...)
	}
	m.items = items
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
	if len(m.items) == 0 && m.focus == focusList {
		m.focus = focusInput
		m.input.Focus()
	}
}

func (m Model) selected() (engine.Item, bool) {
	if m.focus != focusList || m.cursor >= len(m.items) {
		return engine.Item{}, false
	}
	return m.items[m.cursor], true
}

// ---------- view ----------

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTopBar())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render("catégorie: " + m.manualLabel()))
	b.WriteString("\n\n")
	b.WriteString(m.renderColumns())
	b.WriteString("\n")
	b.WriteString(m.renderWeek())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) manualLabel() string {
	if m.manual == "" {
		return "auto"
	}
	return m.manual.Icon() + " " + m.manual.Label()
}

func (m Model) renderTopBar() string {
	streak := "🔥 " + days(m.session.Streak().Count)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("MindClean"),
		"  ",
		m.theme.Value.Render(m.mode.Icon()+" "+m.mode.Label()),
		"  ",
		m.theme.Label.Render(streak),
	)
}

func (m Model) renderColumns() string {
	colW := max(m.width/len(engine.Categories)-4, 16)
	cols := make([]string, 0, len(engine.Categories))
	idx := 0
	for _, c := range engine.Categories {
		var lines []string
		lines = append(lines, m.theme.Title.Foreground(utils.ColorForCategory(c)).Render(c.Icon()+" "+c.Label()))
		n := 0
		for ; idx < len(m.items) && m.items[idx].Category == c; idx++ {
			line := "• " + utils.Truncate(m.items[idx].Text, colW-4)
			if m.focus == focusList && idx == m.cursor {
				line = m.theme.Selected.Render(line)
			}
			lines = append(lines, line)
			n++
		}
		if n == 0 {
			lines = append(lines, m.theme.Hint.Render("(vide)"))
		}
		cols = append(cols, m.theme.column(c, colW).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderWeek() string {
	h := m.session.Weekly(m.mode, m.now())
	const height = 4
	cells := make([]string, 0, len(h.Days))
	for _, dc := range h.Days {
		filled := dc.Count * height / h.MaxCount
		if dc.Count > 0 && filled == 0 {
			filled = 1
		}
		col := strings.Repeat("  \n", height-filled) + strings.Repeat(m.theme.Bar.Render("██")+"\n", filled)
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, col+fmt.Sprintf("%d", dc.Count), dc.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, intersperse(cells, "  ")...)
}

func (m Model) statusBar() string {
	if m.err != nil {
		return m.theme.Error.Render(m.err.Error())
	}
	help := "enter: décharger · tab: mode · ctrl+n: catégorie · ↓: liste · ctrl+y: copier · esc: quitter"
	if m.focus == focusList {
		help = "↑/↓: choisir · 1-4: déplacer · d: supprimer · esc: saisie · q: quitter"
	}
	if m.status != "" {
		return m.theme.Success.Render(m.status) + "  " + m.theme.Hint.Render(help)
	}
	return m.theme.Hint.Render(help)
}

func days(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d jours", n)
	}
	return fmt.Sprintf("%d jour", n)
}

func intersperse(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
