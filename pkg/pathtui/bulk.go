package pathtui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/pathlib/pkg/log"
	"github.com/macropower/pathlib/pkg/pathcmd"
	"github.com/macropower/pathlib/pkg/purepath"
)

// BulkTUI wraps a [BulkResolver] and renders its progress events in a
// Bubble Tea program. It satisfies the same interface as the wrapped
// resolver, so callers can swap it in when stdout is a terminal.
type BulkTUI struct {
	cmd BulkResolver
	p   *tea.Program
	w   io.Writer
}

type BulkResolver interface {
	Resolve(paths ...string) (map[string]purepath.Path, error)
	Subscribe(f func(any))
}

func NewBulkTUI(w io.Writer, lvl slog.Level, cmd BulkResolver) *BulkTUI {
	c := &BulkTUI{
		cmd: cmd,
		w:   w,
	}

	c.cmd.Subscribe(c.broadcastEvent)

	// Route log records through the TUI so they render above the spinner.
	slog.SetDefault(
		slog.New(log.CreateHandler(c, lvl.String(), log.TextFormat)),
	)

	return c
}

func (c *BulkTUI) broadcastEvent(evt any) {
	if c.p != nil {
		c.p.Send(evt)
	}
}

func (c *BulkTUI) Write(p []byte) (int, error) {
	c.broadcastEvent(teaMsgWriteLog(string(p)))

	return len(p), nil
}

func (c *BulkTUI) Subscribe(f func(any)) {
	c.cmd.Subscribe(f)
}

// Resolve runs the wrapped resolver while displaying progress. Per-path
// failures are rendered by the TUI rather than returned; the returned map
// holds the paths that resolved successfully.
func (c *BulkTUI) Resolve(paths ...string) (map[string]purepath.Path, error) {
	c.p = tea.NewProgram(NewResolveModel(), tea.WithOutput(c.w))

	var resolved map[string]purepath.Path

	go func() {
		var err error

		resolved, err = c.cmd.Resolve(paths...)
		c.broadcastEvent(pathcmd.EventDone{Err: err})
	}()

	_, err := c.p.Run()
	if err != nil {
		return nil, fmt.Errorf("launch tui: %w", err)
	}

	return resolved, nil
}
