package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/blackwood/internal/config"
	"github.com/oakwood-commons/blackwood/internal/console"
	"github.com/oakwood-commons/blackwood/internal/mansion"
	"github.com/oakwood-commons/blackwood/internal/navigator"
	"github.com/oakwood-commons/blackwood/internal/ui"
	"github.com/oakwood-commons/blackwood/pkg/logger"
	"github.com/oakwood-commons/blackwood/pkg/settings"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	debug      bool
	noColor    bool
	input      string
	tui        bool
	locale     string

	// set by PersistentPreRunE
	cfg      config.Config
	run      *settings.Run
	messages navigator.Messages
}

// newRootCmd builds the command tree. Each call returns an independent tree
// so tests can execute commands without sharing flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           settings.CliBinaryName,
		Short:         "Explore Blackwood Manor and find the culprit",
		Long:          longHelp(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return play(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addRootFlags(rootCmd.PersistentFlags(), opts)

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMapCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// prepare loads the config, applies flag overrides and attaches the logger
// and run settings to the command context.
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(resolveConfigPath(o.configFile))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	run, err := runSettings(cfg, cmd.Flags(), o)
	if err != nil {
		return err
	}
	if run.Locale, err = cfg.ResolveLocale(run.Locale); err != nil {
		return err
	}
	msgs, err := cfg.Messages(run.Locale)
	if err != nil {
		return err
	}
	o.cfg, o.run, o.messages = cfg, run, msgs

	lgr := logger.Get(logger.Options{Level: run.MinLogLevel, Output: cmd.ErrOrStderr()})
	lgr = logger.WithValues(lgr,
		logger.RootCommandKey, settings.CliBinaryName,
		logger.SubCommandKey, cmd.Name(),
		logger.LocaleKey, run.Locale,
		logger.InputModeKey, string(run.Input),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

// play builds the mansion, runs one exploration and releases the rooms.
func play(ctx context.Context, o *rootOptions, in io.Reader, out io.Writer) error {
	lgr := logger.WithValues(logger.FromContext(ctx), logger.SessionIDKey, uuid.NewString())
	ctx = logger.WithLogger(ctx, lgr)
	run := settings.FromContextOrDefault(ctx)

	root := mansion.Blackwood()
	if err := mansion.Validate(root); err != nil {
		return fmt.Errorf("build mansion: %w", err)
	}
	defer func() {
		released := mansion.Release(root, nil)
		lgr.V(1).Info("mansion released", "rooms", released)
	}()

	noColor := run.NoColor || !isTerminal(out) || os.Getenv("NO_COLOR") != ""

	var (
		res navigator.Result
		err error
	)
	if run.TUI {
		uiOpts := []ui.Option{ui.WithMessages(o.messages), ui.WithNoColor(noColor)}
		res, err = ui.Run(ctx, root, uiOpts)
	} else {
		printer := console.NewPrinter(out, noColor)
		printer.Title(o.messages.Title, o.messages.Intro)
		reader := newChoiceReader(ctx, run.Input, in)
		res, err = navigator.New(reader, printer, navigator.WithMessages(o.messages)).Run(ctx, root)
	}
	if err != nil {
		return err
	}
	lgr.V(1).Info("exploration ended", "outcome", string(res.Outcome), "inputs", res.Inputs, "rooms_visited", len(res.Path))
	return nil
}

// newChoiceReader picks the reader for mode. Key mode needs a real file
// descriptor; anything else falls back to line input.
func newChoiceReader(ctx context.Context, mode settings.InputMode, in io.Reader) navigator.ChoiceReader {
	if mode == settings.InputKey {
		if f, ok := in.(*os.File); ok {
			return console.NewKeyReader(f)
		}
		logger.FromContext(ctx).V(1).Info("key input needs a terminal, using line input")
	}
	return console.NewLineReader(in)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
