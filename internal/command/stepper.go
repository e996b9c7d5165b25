// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/mitom/ai-pathfinder/internal/pathfind"
)

type stepKeys struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

func (k stepKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

func (k stepKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.First, k.Last, k.Quit}}
}

var defaultStepKeys = stepKeys{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n", " "),
		key.WithHelp("→/n", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/p", "previous"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	stepTitleStyle = lipgloss.NewStyle().Bold(true)
	stepLabelStyle = lipgloss.NewStyle().Width(8)
)

// stepper is a bubbletea model paging through the recorded search steps.
type stepper struct {
	res  *pathfind.Result
	pos  int
	keys stepKeys
	help help.Model
}

func newStepper(res *pathfind.Result) stepper {
	return stepper{res: res, keys: defaultStepKeys, help: help.New()}
}

func (m stepper) Init() tea.Cmd {
	return nil
}

func (m stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := max(len(m.res.Steps)-1, 0)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.pos = min(m.pos+1, last)
		case key.Matches(msg, m.keys.Prev):
			m.pos = max(m.pos-1, 0)
		case key.Matches(msg, m.keys.First):
			m.pos = 0
		case key.Matches(msg, m.keys.Last):
			m.pos = last
		}
	}

	return m, nil
}

func (m stepper) View() string {
	var b strings.Builder

	if len(m.res.Steps) == 0 {
		b.WriteString(stepTitleStyle.Render("no steps recorded") + "\n")
	} else {
		s := m.res.Steps[m.pos]
		title := fmt.Sprintf("step %d/%d  current %d (%.2f)",
			m.pos+1, len(m.res.Steps), s.Current.Cavern+1, s.Current.Cost)
		b.WriteString(stepTitleStyle.Render(title) + "\n")
		b.WriteString(stepLabelStyle.Render("path") + pathfind.FormatPath(s.Path) + "\n")
		b.WriteString(stepLabelStyle.Render("open") + formatNodes(s.Open) + "\n")
		b.WriteString(stepLabelStyle.Render("closed") + formatNodes(s.Closed) + "\n")
	}

	if m.pos == max(len(m.res.Steps)-1, 0) {
		b.WriteString("\n")
		writeResult(&b, m.res)
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// runStepper shows the interactive stepper on w until the user quits.
func runStepper(ctx context.Context, w io.Writer, res *pathfind.Result) error {
	p := tea.NewProgram(newStepper(res), tea.WithContext(ctx), tea.WithOutput(w))
	_, err := p.Run()
	return err
}
