package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/visit/generate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	ctx      context.Context
	cfg      *generate.Config
	err      error
	status   string
	entries  []sumEntry
	preview  viewport.Model
	file     generate.File
	selected int
	width    int
	height   int
	loaded   bool
	state    modelState
}

// sumEntry is one selectable sum, or a whole arities job.
type sumEntry struct {
	plan *generate.Plan
	name string
	desc string
}

type modelState int

const (
	stateSelectSum modelState = iota
	statePreview
)

func newInteractiveModel(ctx context.Context, cfg *generate.Config) *interactiveModel {
	return &interactiveModel{
		ctx:     ctx,
		cfg:     cfg,
		preview: viewport.New(80, 20),
		state:   stateSelectSum,
	}
}

type resolvedMsg struct {
	err     error
	entries []sumEntry
}

type renderedMsg struct {
	err  error
	file generate.File
}

type writtenMsg struct {
	err  error
	path string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.resolve
}

func (m *interactiveModel) resolve() tea.Msg {
	var entries []sumEntry
	for _, job := range m.cfg.Jobs {
		plan, err := generate.Resolve(m.ctx, m.cfg.Dir, job)
		if err != nil {
			return resolvedMsg{err: fmt.Errorf("%s %s: %w", job.Source, job.Path, err)}
		}
		if job.Source == generate.SourceArities {
			entries = append(entries, sumEntry{plan: plan, name: "Of*", desc: "arities " + job.Arities})
			continue
		}
		for _, s := range plan.Sums {
			entries = append(entries, sumEntry{plan: plan, name: s.Name, desc: describe(s)})
		}
	}
	return resolvedMsg{entries: entries}
}

func (m *interactiveModel) render() tea.Msg {
	e := m.entries[m.selected]
	plan := e.plan
	if e.plan.Job.Source != generate.SourceArities {
		var err error
		if plan, err = e.plan.Only(e.name); err != nil {
			return renderedMsg{err: err}
		}
	}
	f, err := plan.Render()
	return renderedMsg{file: f, err: err}
}

func (m *interactiveModel) write() tea.Msg {
	return writtenMsg{path: m.file.Path, err: generate.Write(m.file)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height-6, 5)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectSum && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectSum && m.selected < len(m.entries)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectSum && len(m.entries) > 0 {
				m.status = ""
				return m, m.render
			}

		case "w":
			if m.state == statePreview && len(m.file.Content) > 0 {
				return m, m.write
			}

		case "esc":
			if m.state == statePreview {
				m.state = stateSelectSum
				m.status = ""
				m.err = nil
				return m, nil
			}
		}

	case resolvedMsg:
		m.loaded = true
		m.err = msg.err
		m.entries = msg.entries
		return m, nil

	case renderedMsg:
		m.err = msg.err
		m.file = msg.file
		m.preview.SetContent(string(msg.file.Content))
		m.preview.GotoTop()
		m.state = statePreview
		return m, nil

	case writtenMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "wrote " + msg.path
		}
		return m, nil
	}

	if m.state == statePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != statePreview {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Scanning sources..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("visitgen"))
	b.WriteString(" ")
	b.WriteString(m.cfg.Dir)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSum:
		if len(m.entries) == 0 {
			b.WriteString("No sums found.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			return b.String()
		}
		b.WriteString("Select a sum to preview:\n\n")
		for i, e := range m.entries {
			line := sumStyle.Render(e.name) + " " + typeStyle.Render(e.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e.name + " " + e.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter preview • q quit"))

	case statePreview:
		b.WriteString(fmt.Sprintf("Preview of %s\n\n", typeStyle.Render(m.file.Path)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		} else {
			b.WriteString(m.preview.View())
			b.WriteString("\n")
		}
		if m.status != "" {
			b.WriteString(sumStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ scroll • w write • esc back • q quit"))
	}

	return b.String()
}

func describe(s generate.Sum) string {
	names := make([]string, len(s.Alternatives))
	for i, alt := range s.Alternatives {
		names[i] = alt.Name
	}
	return fmt.Sprintf("%s (%s)", s.Form, strings.Join(names, " | "))
}

func runInteractive(ctx context.Context, cfg *generate.Config) error {
	p := tea.NewProgram(newInteractiveModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
