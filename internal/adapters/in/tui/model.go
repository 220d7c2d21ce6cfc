package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/pickup"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Outcome is how the pickup screen ended.
type Outcome int

const (
	InProgress Outcome = iota
	Collected
	Cancelled
	Aborted
)

// String returns a lower-case label for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Collected:
		return "collected"
	case Cancelled:
		return "cancelled"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

type field int

const (
	nameField field = iota
	cpfField
)

// collectedMsg reports the end of a submission.
type collectedMsg struct {
	err error
}

// Model is the bubbletea model of one pickup confirmation.
type Model struct {
	ctx       context.Context
	wizard    *pickup.Wizard
	collector pickup.Collector
	title     string

	name   textinput.Model
	cpf    textinput.Model
	focus  field
	cursor pickup.Point

	keys KeyMap
	help help.Model

	busy    bool
	err     error
	notice  string
	outcome Outcome
}

// NewModel builds the screen around wizard. title names the package, e.g. its code and
// store.
func NewModel(ctx context.Context, wizard *pickup.Wizard, collector pickup.Collector, title string) Model {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 255
	name.Focus()

	cpf := textinput.New()
	cpf.Placeholder = "000.000.000-00"
	cpf.CharLimit = 14

	return Model{
		ctx:       ctx,
		wizard:    wizard,
		collector: collector,
		title:     title,
		name:      name,
		cpf:       cpf,
		focus:     nameField,
		keys:      DefaultKeyMap,
		help:      help.New(),
	}
}

// Outcome reports how the screen ended. It is InProgress until the program quits.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds one message to the wizard and moves the screen along.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case collectedMsg:
		return m.handleCollected(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.outcome = Aborted
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		if key.Matches(msg, m.keys.Cancel) {
			m.wizard.Reset()
			m.outcome = Cancelled
			return m, tea.Quit
		}

		m.notice = ""
		switch m.wizard.Step() {
		case pickup.StepIdentity:
			return m.updateIdentity(msg)
		case pickup.StepPhoto:
			return m.updatePhoto(msg)
		case pickup.StepSignature:
			return m.updateSignature(msg)
		}
	}

	return m, nil
}

func (m Model) updateIdentity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.err = m.wizard.Next()
		return m, nil

	case key.Matches(msg, m.keys.SwitchField):
		return m.switchField()
	}

	var cmd tea.Cmd
	switch m.focus {
	case nameField:
		m.name, cmd = m.name.Update(msg)
		_ = m.wizard.SetName(m.name.Value())
	case cpfField:
		m.cpf, cmd = m.cpf.Update(msg)
		normalized, _ := m.wizard.SetCPF(m.cpf.Value())
		if normalized != m.cpf.Value() {
			m.cpf.SetValue(normalized)
		}
	}
	return m, cmd
}

func (m Model) switchField() (tea.Model, tea.Cmd) {
	if m.focus == nameField {
		m.focus = cpfField
		m.name.Blur()
	} else {
		m.focus = nameField
		m.cpf.Blur()
	}
	cmd := m.refocus()
	return m, cmd
}

func (m Model) updatePhoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Capture):
		m.err = m.wizard.CapturePhoto(m.ctx)
		if m.err == nil {
			m.notice = "Photo captured"
		}
	case key.Matches(msg, m.keys.Retake):
		m.err = m.wizard.DiscardPhoto()
	case key.Matches(msg, m.keys.Next):
		m.err = m.wizard.Next()
	case key.Matches(msg, m.keys.Back):
		m.err = nil
		m.wizard.Back()
		cmd := m.refocus()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSignature(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pad := m.wizard.Pad()

	move := func(dx, dy int) {
		m.cursor.X = min(max(m.cursor.X+dx, 0), pad.Width()-1)
		m.cursor.Y = min(max(m.cursor.Y+dy, 0), pad.Height()-1)
		pad.MoveTo(m.cursor)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		move(0, -1)
	case key.Matches(msg, m.keys.Down):
		move(0, 1)
	case key.Matches(msg, m.keys.Left):
		move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		move(1, 0)
	case key.Matches(msg, m.keys.Pen):
		if pad.IsPenDown() {
			pad.PenUp()
		} else {
			pad.PenDown(m.cursor)
		}
	case key.Matches(msg, m.keys.Clear):
		m.err = m.wizard.ClearSignature()
	case key.Matches(msg, m.keys.Back):
		pad.PenUp()
		m.err = nil
		m.wizard.Back()
	case key.Matches(msg, m.keys.Next):
		return m.submit()
	}
	return m, nil
}

// submit builds the bundle. The returned command only sends it; the wizard is read and
// reset in Update alone.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.wizard.Pad().PenUp()
	bundle, err := m.wizard.Bundle()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.busy = true
	m.err = nil
	ctx, collector, id := m.ctx, m.collector, m.wizard.PackageID()
	return m, func() tea.Msg {
		return collectedMsg{err: collector.Collect(ctx, id, bundle)}
	}
}

func (m Model) handleCollected(msg collectedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.wizard.Reset()
	m.outcome = Collected
	m.notice = "Package collected"
	return m, tea.Quit
}

func (m *Model) refocus() tea.Cmd {
	if m.focus == cpfField {
		return m.cpf.Focus()
	}
	return m.name.Focus()
}

// View renders the current step with its help line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pickup · " + m.title))
	b.WriteString("\n")

	if m.outcome == Collected {
		b.WriteString(okStyle.Render(m.notice))
		b.WriteString("\n")
		return b.String()
	}

	step := m.wizard.Step()
	b.WriteString(stepStyle.Render(fmt.Sprintf("Step %d of 3 · %s", int(step), stepTitle(step))))
	b.WriteString("\n")

	switch step {
	case pickup.StepIdentity:
		b.WriteString(m.viewIdentity())
	case pickup.StepPhoto:
		b.WriteString(m.viewPhoto())
	case pickup.StepSignature:
		b.WriteString(m.viewSignature())
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString("Submitting…\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(describe(m.err)))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(okStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.bindings(step)))
	return b.String()
}

func (m Model) viewIdentity() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Name"), m.name.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("CPF"), m.cpf.View()),
	)
}

func (m Model) viewPhoto() string {
	photo, ok := m.wizard.Photo()
	if !ok {
		return "No photo yet. Ask the collector to face the camera and press c."
	}
	return fmt.Sprintf("Photo ready: %s, %d KB. Press enter to continue or r to retake.",
		photo.ContentType, (len(photo.Data)+1023)/1024)
}

func (m Model) viewSignature() string {
	pad := m.wizard.Pad()
	var rows []string
	for y := 0; y < pad.Height(); y++ {
		var row strings.Builder
		for x := 0; x < pad.Width(); x++ {
			pt := pickup.Point{X: x, Y: y}
			switch {
			case pt == m.cursor && pad.IsPenDown():
				row.WriteString(cursorStyle.Render("●"))
			case pt == m.cursor:
				row.WriteString(cursorStyle.Render("+"))
			case pad.Inked(pt):
				row.WriteString("█")
			default:
				row.WriteString(" ")
			}
		}
		rows = append(rows, row.String())
	}
	return padStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) bindings(step pickup.Step) []key.Binding {
	switch step {
	case pickup.StepPhoto:
		return []key.Binding{m.keys.Capture, m.keys.Retake, m.keys.Next, m.keys.Back, m.keys.Cancel}
	case pickup.StepSignature:
		return []key.Binding{m.keys.Pen, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right,
			m.keys.Clear, m.keys.Next, m.keys.Back, m.keys.Cancel}
	default:
		return []key.Binding{m.keys.SwitchField, m.keys.Next, m.keys.Cancel, m.keys.Quit}
	}
}

func stepTitle(step pickup.Step) string {
	switch step {
	case pickup.StepIdentity:
		return "Collector identity"
	case pickup.StepPhoto:
		return "Collector photo"
	case pickup.StepSignature:
		return "Signature"
	default:
		return step.String()
	}
}

// describe puts each joined error on its own line.
func describe(err error) string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		lines := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			lines = append(lines, e.Error())
		}
		return strings.Join(lines, "\n")
	}
	return err.Error()
}

// Run shows the screen until the pickup is collected, cancelled or aborted.
func Run(ctx context.Context, packageID kernel.UUID, camera pickup.Camera, collector pickup.Collector,
	title string, opts ...tea.ProgramOption) (Outcome, error) {
	wizard, err := pickup.NewWizard(packageID, camera, PadWidth, PadHeight)
	if err != nil {
		return Aborted, err
	}

	final, err := tea.NewProgram(NewModel(ctx, wizard, collector, title), opts...).Run()
	if err != nil {
		return Aborted, err
	}
	return final.(Model).Outcome(), nil
}

// Signature pad size in terminal cells.
const (
	PadWidth  = 48
	PadHeight = 12
)
