// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dnadotplot/internal/appcore"
	"dnadotplot/internal/cli"
	"dnadotplot/internal/config"
	"dnadotplot/internal/logging"
	"dnadotplot/internal/version"
)

// exitError carries a specific exit code out of a cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// state is shared between the root command and its subcommands for one
// invocation.
type state struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	st := &state{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "dotplot -1 FILE [-2 FILE] -o OUT",
		Short: "Draw a DNA dot plot of two sequences",
		Long: `dotplot compares two DNA sequences (or one with itself) with a sliding
window and draws every exact match as a dot. Forward matches are black,
reverse complement matches (-r) are grey in PNG and green in SVG.`,
		Example: `  dotplot -1 genome.fa -o self.png
  dotplot -1 a.fa -2 b.fa.gz -r --svg -o ab.svg
  dotplot -1 pair.fa -f chr1 -s chr2 -w 800 -o chr.png`,
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(cli.KeyConfig)
			if err := config.ReadFile(st.v, path); err != nil {
				return &exitError{code: appcore.ExitUsage, err: err}
			}
			st.log = logging.New(stderr, st.v.GetBool(config.KeyVerbose), st.v.GetBool(config.KeyQuiet))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = st.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(st.v)
			if err != nil {
				return &exitError{code: appcore.ExitUsage, err: err}
			}
			if err := cli.Validate(c); err != nil {
				return &exitError{code: appcore.ExitUsage, err: err}
			}
			code := appcore.Run(cmd.Context(), cmd.OutOrStdout(), st.log, appcore.Options{
				FirstFile:  c.FirstFile,
				FirstName:  c.FirstName,
				SecondFile: c.SecondFile,
				SecondName: c.SecondName,
				Width:      c.Width,
				Window:     c.Window,
				RevCompl:   c.RevCompl,
				Threads:    c.Threads,
				Output:     c.Output,
				Format:     c.Format,
				SVG:        c.SVG,
				Summary:    c.Summary,
			})
			if code != appcore.ExitOK {
				// already logged
				return &exitError{code: code}
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("dotplot version {{.Version}}\n")

	cli.RegisterPersistent(root.PersistentFlags())
	cli.Register(root.Flags())
	_ = cli.Bind(st.v, root.PersistentFlags())
	_ = cli.Bind(st.v, root.Flags())

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newCoordsCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "dotplot version %s\n", version.Version)
			return err
		},
	}
}

// RunContext executes the command line argv and returns the exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return appcore.ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", ee.err)
		}
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return appcore.ExitInterrupted
	}
	// flag parsing and argument errors from cobra
	_, _ = fmt.Fprintf(stderr, "error: %v\nRun 'dotplot --help' for usage.\n", err)
	return appcore.ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
