package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/snippets/internal/app"
	"github.com/agbru/snippets/internal/config"
	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/agbru/snippets/internal/logging"
	"github.com/agbru/snippets/internal/pattern"
	"github.com/agbru/snippets/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the command tree with args and returns the process exit
// code. Step failures are reported by the application and never surface
// here. Configuration errors exit with ExitErrorConfig and usage errors
// with ExitErrorGeneric.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		if apperrors.IsConfigError(err) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runner holds what every command needs once flags are parsed.
type runner struct {
	out    io.Writer
	errOut io.Writer
	cfg    config.AppConfig
}

// NewRootCommand builds the snippets command tree. Running it without a
// subcommand executes every step in order.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	r := &runner{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "snippets",
		Short: "Runs small demonstrations of Go error handling and parsing idioms",
		Long: `snippets computes a harmonic series two ways, runs two computations that
fail with different error representations and reports both through one
path, then parses a line into a typed record.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}
			a.Run(cmd.Context())
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		r.seriesCommand(),
		r.errorsCommand(),
		r.parseCommand(),
		r.configCommand(),
		versionCommand(out),
	)
	return root
}

func (r *runner) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}
	r.cfg = cfg
	ui.InitTheme(r.out, cfg.NoColor, cfg.Theme)
	return nil
}

func (r *runner) application() (*app.Application, error) {
	logger, err := logging.NewLevelLogger(r.errOut, "snippets", r.cfg.LogLevel)
	if err != nil {
		return nil, apperrors.ValidationError{Field: config.KeyLogLevel, Message: err.Error()}
	}
	presenter := Presenter{Out: r.out, ErrOut: r.errOut}
	return app.New(r.cfg, presenter, r.out, r.errOut, app.WithLogger(logger)), nil
}

func (r *runner) seriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Compute the harmonic series iteratively and functionally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}
			a.RunSeries(cmd.Context())
			a.Finish()
			return nil
		},
	}
}

func (r *runner) errorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "errors",
		Short: "Run the local-error and library-error computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}
			a.RunErrors(cmd.Context())
			a.Finish()
			return nil
		},
	}
}

func (r *runner) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [input]",
		Short: `Parse "<digits> <true|false> <token>" into a record`,
		Long: "Parse a line into a record with the fields " +
			strings.Join(pattern.RecordFields(), ", ") +
			". Without an argument the configured input is parsed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.application()
			if err != nil {
				return err
			}
			input := r.cfg.Input
			if len(args) == 1 {
				input = args[0]
			}
			a.RunParse(cmd.Context(), input)
			a.Finish()
			return nil
		},
	}
}

func (r *runner) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := r.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = r.out.Write(data)
			return err
		},
	}
}

// versionCommand does not load configuration, so it works even when the
// environment holds invalid settings.
func versionCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(out, "snippets %s\n", app.Version)
			return nil
		},
	}
}
