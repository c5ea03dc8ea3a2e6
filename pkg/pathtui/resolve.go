package pathtui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/pathlib/pkg/pathcmd"
)

// ResolveModel displays the progress of resolving one or more paths,
// including per-path spinners, a progress bar, and a final summary.
// Create instances with [NewResolveModel].
type ResolveModel struct {
	progress       *progress.Model
	startedPaths   []string
	completedPaths []string
	resolvedPaths  map[string]string
	failedPaths    map[string]bool
	baseModel
	totalPaths int
}

// NewResolveModel creates a new [ResolveModel] that displays the progress of
// resolving paths.
func NewResolveModel() *ResolveModel {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &ResolveModel{
		baseModel:      newBaseModel(),
		startedPaths:   []string{},
		completedPaths: []string{},
		resolvedPaths:  map[string]string{},
		failedPaths:    map[string]bool{},
		progress:       &p,
	}
}

func (m *ResolveModel) Init() tea.Cmd {
	return m.spinner.Tick
}

//nolint:ireturn // Third-party.
func (m *ResolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pathcmd.EventSetTotal:
		m.totalPaths = int(msg)

	case pathcmd.EventResolving:
		path := string(msg)
		m.state = stateWorking
		m.startedPaths = append(m.startedPaths, path)

	case pathcmd.EventResolved:
		m.completedPaths = append(m.completedPaths, msg.Path)
		if msg.Err != nil {
			m.failedPaths[msg.Path] = true
		} else {
			m.resolvedPaths[msg.Path] = msg.Resolved
		}

		completedCount := len(m.completedPaths)

		progressCmd := m.progress.SetPercent(float64(completedCount) / float64(m.totalPaths))

		return m, progressCmd

	case progress.FrameMsg:
		if m.state == stateWorking {
			pm, cmd := m.progress.Update(msg)
			if p, ok := pm.(progress.Model); ok {
				m.progress = &p
			}

			return m, cmd
		}

	default:
		if cmd, handled := m.handleCommon(msg); handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *ResolveModel) View() string {
	switch m.state {
	case stateError:
		var out strings.Builder

		m.writePathStatuses(&out)
		out.WriteString(getErrorMessage(m.err, m.width, m.totalPaths))

		return out.String()

	case stateDone:
		var out strings.Builder

		m.writePathStatuses(&out)

		completedCount := len(m.completedPaths)
		out.WriteString(defaultStyles.done.Render(fmt.Sprintf("Done! Resolved %d paths.\n", completedCount)))

		return out.String()

	case stateWorking:
		var out strings.Builder

		m.writePathStatuses(&out)

		completedCount := len(m.completedPaths)
		w := lipgloss.Width(strconv.Itoa(m.totalPaths))
		pathCount := fmt.Sprintf(" %*d/%*d", w, completedCount, w, m.totalPaths)

		prog := m.progress.View()
		progRendered := defaultStyles.progress.Render(prog + pathCount)
		progCellsRemaining := max(0, m.width-lipgloss.Width(progRendered))
		gap := strings.Repeat(" ", progCellsRemaining)
		progOut := progRendered + gap + "\n"

		inProgressPaths := differenceStringSlices(m.startedPaths, m.completedPaths)

		for _, path := range inProgressPaths {
			spin := m.spinner.View() + " "
			cellsAvail := max(0, m.width-lipgloss.Width(spin))

			pathName := defaultStyles.itemName.Render(path)
			info := lipgloss.NewStyle().MaxWidth(cellsAvail).Render("Resolving " + pathName)

			cellsRemaining := max(0, m.width-lipgloss.Width(spin+info))
			gap := strings.Repeat(" ", cellsRemaining) + "\n"

			out.WriteString(spin + info + gap)
		}

		out.WriteString(progOut)

		return out.String()

	case stateIdle:
		return ""
	}

	return ""
}

// writePathStatuses renders completed path status lines (check or cross
// marks) into the given builder.
func (m *ResolveModel) writePathStatuses(out *strings.Builder) {
	for _, path := range m.completedPaths {
		if m.failedPaths[path] {
			fmt.Fprintf(out, "%s %s\n", defaultStyles.cross, path)

			continue
		}

		fmt.Fprintf(out, "%s %s -> %s\n", defaultStyles.check, path, m.resolvedPaths[path])
	}
}

func differenceStringSlices(a, b []string) []string {
	difference := []string{}

	for _, x := range a {
		if !slices.Contains(b, x) {
			difference = append(difference, x)
		}
	}

	return difference
}
