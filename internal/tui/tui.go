// Package tui is the graphical front-end: a full-screen program that renders
// scenes and options as selectable widgets inside a retro CRT monitor skin.
// Like every front-end it only relays input to the engine.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kingdomsperil/internal/game"
)

type uiState int

const (
	stateName uiState = iota
	stateMenu
	statePlaying
	stateOutcomes
	stateEnded
)

var menuItems = []string{
	"Start New Adventure",
	"View Past Outcomes",
	"Quit",
}

// Phosphor-green-on-black palette and beige bezel, after the old CRT look.
var (
	phosphor = lipgloss.Color("#00ff66")
	dimGreen = lipgloss.Color("#0c7f27")
	bezel    = lipgloss.Color("#c1b37a")

	screenStyle = lipgloss.NewStyle().
			Foreground(phosphor).
			Padding(1, 2)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bezel).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(phosphor).
			Bold(true).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(phosphor).
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(dimGreen)

	captionStyle = lipgloss.NewStyle().
			Foreground(bezel).
			Bold(true)
)

type model struct {
	engine *game.Engine
	state  uiState

	nameInput   textinput.Model
	answerInput textinput.Model
	viewport    viewport.Model

	sess    *game.Session
	name    string
	cursor  int
	message string
	warning string
	fatal   bool
	err     error
	width   int
	height  int
}

func newModel(eng *game.Engine) model {
	ni := textinput.New()
	ni.Placeholder = "Enter your knightly name..."
	ni.Focus()
	ni.CharLimit = 64
	ni.Width = 40

	ai := textinput.New()
	ai.Placeholder = "Speak your answer..."
	ai.CharLimit = 64
	ai.Width = 40

	return model{
		engine:      eng,
		state:       stateName,
		nameInput:   ni,
		answerInput: ai,
		viewport:    viewport.New(72, 16),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = min(msg.Width-10, 72)
		m.viewport.Height = msg.Height - 10
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.state == stateOutcomes || m.state == stateEnded {
				m.state = stateMenu
				m.cursor = 0
				return m, nil
			}
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateWidgets(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateName:
		if msg.Type == tea.KeyEnter {
			m.name = strings.TrimSpace(m.nameInput.Value())
			m.state = stateMenu
			m.cursor = 0
			return m, nil
		}

	case stateMenu:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m.selectMenu()
		case "1", "2", "3":
			m.cursor = int(msg.String()[0] - '1')
			return m.selectMenu()
		}
		return m, nil

	case statePlaying:
		return m.handlePlayingKey(msg)

	case stateOutcomes:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case stateEnded:
		if msg.Type == tea.KeyEnter {
			m.state = stateMenu
			m.cursor = 0
		}
		return m, nil
	}

	return m.updateWidgets(msg)
}

func (m model) selectMenu() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case 0:
		m.sess = m.engine.NewSession(m.name)
		m.state = statePlaying
		m.cursor = 0
		m.message = ""
		m.warning = ""
		m.answerInput.Reset()
		m.answerInput.Focus()
		return m, textinput.Blink
	case 1:
		report, err := m.engine.ReadOutcomes()
		if err != nil {
			report = fmt.Sprintf("Could not read outcomes: %v", err)
		}
		m.viewport.SetContent(report)
		m.viewport.GotoTop()
		m.state = stateOutcomes
		return m, nil
	default:
		return m, tea.Quit
	}
}

func (m model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sc, err := m.engine.CurrentScene(m.sess)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	if sc.Kind == game.KindInput {
		if msg.Type == tea.KeyEnter {
			return m.step(func() (game.StepResult, error) {
				return m.engine.ApplyInput(m.sess, m.answerInput.Value())
			})
		}
		var cmd tea.Cmd
		m.answerInput, cmd = m.answerInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sc.Options)-1 {
			m.cursor++
		}
	case "enter":
		key := sc.Options[m.cursor].Key
		return m.step(func() (game.StepResult, error) {
			return m.engine.ApplyChoice(m.sess, key)
		})
	}
	return m, nil
}

// step applies one transition and routes the result to the next state.
func (m model) step(apply func() (game.StepResult, error)) (tea.Model, tea.Cmd) {
	res, err := apply()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.warning = ""
	if res.LogErr != nil {
		m.warning = fmt.Sprintf("Warning: outcome could not be saved: %v", res.LogErr)
	}
	m.message = res.Message
	m.cursor = 0
	m.answerInput.Reset()
	if res.Terminal {
		m.fatal = res.Fatal
		m.state = stateEnded
	}
	return m, nil
}

func (m model) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case statePlaying:
		m.answerInput, cmd = m.answerInput.Update(msg)
	case stateOutcomes:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var screen string

	switch m.state {
	case stateName:
		screen = titleStyle.Render("KINGDOM'S PERIL") + "\n\n" +
			"A quest to rescue Princess Elara awaits.\n\n" +
			m.nameInput.View() + "\n\n" +
			faintStyle.Render("enter to continue - esc to quit")

	case stateMenu:
		var b strings.Builder
		b.WriteString(titleStyle.Render("KINGDOM'S PERIL") + "\n\n")
		fmt.Fprintf(&b, "Welcome, %s.\n\n", m.displayName())
		for i, item := range menuItems {
			line := fmt.Sprintf("  %d. %s  ", i+1, item)
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + faintStyle.Render("up/down and enter, or press a number"))
		screen = b.String()

	case statePlaying:
		screen = m.viewPlaying()

	case stateOutcomes:
		screen = titleStyle.Render("PAST OUTCOMES") + "\n\n" +
			m.viewport.View() + "\n\n" +
			faintStyle.Render("esc to return")

	case stateEnded:
		var b strings.Builder
		if m.message != "" {
			b.WriteString(m.message + "\n\n")
		}
		if m.fatal {
			b.WriteString("Alas, your quest has ended in tragedy!\n")
		} else {
			fmt.Fprintf(&b, "Your quest ends in glory. Well done, %s!\n", m.sess.PlayerName)
		}
		fmt.Fprintf(&b, "You finished carrying: %s\n", m.sess.DescribeInventory())
		if m.warning != "" {
			b.WriteString("\n" + faintStyle.Render(m.warning) + "\n")
		}
		b.WriteString("\n" + faintStyle.Render("enter for the menu - esc to quit"))
		screen = b.String()
	}

	return m.crt(screen)
}

func (m model) viewPlaying() string {
	text, err := m.engine.RenderText(m.sess)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	sc, err := m.engine.CurrentScene(m.sess)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var b strings.Builder
	if m.message != "" {
		b.WriteString(faintStyle.Render(m.message) + "\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Width(68).Render(text) + "\n\n")

	if sc.Kind == game.KindInput {
		b.WriteString(m.answerInput.View() + "\n")
	} else {
		for i, opt := range sc.Options {
			line := fmt.Sprintf("  [%s] %s  ", opt.Key, opt.Label)
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n", faintStyle.Render("Carrying: "+m.sess.DescribeInventory()))
	if m.warning != "" {
		b.WriteString(faintStyle.Render(m.warning) + "\n")
	}
	return b.String()
}

// crt wraps screen content in the monitor bezel: rounded frame, caption and
// power light, phosphor-green text.
func (m model) crt(content string) string {
	inner := screenStyle.Render(content)
	framed := frameStyle.Render(inner)
	caption := captionStyle.Render("KINGDOM'S PERIL")
	light := lipgloss.NewStyle().Foreground(phosphor).Render("(o)")
	w := lipgloss.Width(framed)
	gap := w - lipgloss.Width(caption) - lipgloss.Width(light)
	if gap < 1 {
		gap = 1
	}
	footer := caption + strings.Repeat(" ", gap) + light
	return "\n" + framed + "\n" + footer + "\n"
}

func (m model) displayName() string {
	if m.name == "" {
		return game.DefaultPlayerName
	}
	return m.name
}

// Run starts the full-screen program.
func Run(eng *game.Engine) error {
	p := tea.NewProgram(newModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
