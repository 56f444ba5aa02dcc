package ui

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/blackwood/internal/mansion"
	"github.com/oakwood-commons/blackwood/internal/navigator"
	"github.com/oakwood-commons/blackwood/pkg/logger"
)

// Run plays the game full screen until the player reaches a leaf or quits,
// then waits for one more key before returning. Extra ProgramOptions (e.g.
// custom IO) are passed to tea.NewProgram.
func Run(ctx context.Context, root *mansion.Room, opts []Option, progOpts ...tea.ProgramOption) (navigator.Result, error) {
	lgr := logger.FromContext(ctx)
	opts = append([]Option{WithLogger(*lgr)}, opts...)
	m := NewModel(root, opts...)

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
	}

	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	prog := tea.NewProgram(m, progOpts...)
	final, err := prog.Run()
	if fm, ok := final.(*Model); ok && fm != nil {
		m = fm
	}
	res := m.Result()
	if err != nil {
		return res, fmt.Errorf("run explore screen: %w", err)
	}
	lgr.V(1).Info("exploration finished", "outcome", string(res.Outcome), "inputs", res.Inputs, "depth", len(res.Path))
	return res, nil
}
