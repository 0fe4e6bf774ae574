package progress

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type stepMsg string

type stopMsg struct{}

// spinnerModel renders "<spinner> <message>" until it receives stopMsg,
// after which it renders nothing so the line is cleared on exit.
type spinnerModel struct {
	spinner      spinner.Model
	messageStyle lipgloss.Style
	message      string
	stopped      bool
}

func newSpinnerModel(renderer *lipgloss.Renderer) spinnerModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(renderer.NewStyle().Foreground(lipgloss.Color("205"))),
	)
	return spinnerModel{
		spinner:      sp,
		messageStyle: renderer.NewStyle().Bold(true),
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.message = string(msg)
		return m, nil
	case stopMsg:
		m.stopped = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.stopped {
		return ""
	}
	return m.spinner.View() + " " + m.messageStyle.Render(m.message)
}

// Spinner animates the current step on a terminal. The render loop runs on
// its own goroutine; steps are delivered to it as messages.
type Spinner struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func NewSpinner(w io.Writer) *Spinner {
	program := tea.NewProgram(
		newSpinnerModel(lipgloss.NewRenderer(w)),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	s := &Spinner{
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_, _ = program.Run()
	}()
	return s
}

func (s *Spinner) Step(message string) {
	s.program.Send(stepMsg(message))
}

// Stop clears the spinner line and waits for the render loop to exit.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.program.Send(stopMsg{})
		<-s.done
	})
}
