package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/amp-labs/propersort/build"
	"github.com/amp-labs/propersort/envutil"
	perrors "github.com/amp-labs/propersort/errors"
	"github.com/amp-labs/propersort/logger"
	"github.com/amp-labs/propersort/natural"
	"github.com/amp-labs/propersort/simultaneously"
	"github.com/amp-labs/propersort/textio"
	"github.com/spf13/cobra"
)

const appName = "propersort"

var errInvalidJobs = errors.New("jobs must be at least 1")

// app holds the process streams and the logging setup so tests can run the
// command without touching global state.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configure func(logger.Options) *slog.Logger
}

type flags struct {
	reverse bool
	unique  bool
	fold    bool
	tokens  bool
	jobs    int
	envFile string
}

// settings are the effective options after environment and flags merge.
type settings struct {
	reverse bool
	unique  bool
	fold    bool
	tokens  bool
	jobs    int
}

func newRootCommand(a *app) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName + " [flags] [FILE...]",
		Short: "Sort lines in natural order",
		Long: "Sort lines of text in natural order: embedded numbers compare by value and " +
			"apparel sizes by rank.\n\nFiles ending in .gz, .zst, .br, .lz4 or .sz are decompressed. " +
			"Reads standard input when no file (or \"-\") is given.\n\nNumeric mode: " +
			natural.NumericMode() + ".",
		Version:       build.Current().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, f, args)
		},
	}

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fs := cmd.Flags()
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "Reverse the result (env PROPERSORT_REVERSE)")
	fs.BoolVarP(&f.unique, "unique", "u", false, "Drop duplicate lines")
	fs.BoolVarP(&f.fold, "fold", "f", false, "Compare whole lines ignoring ASCII case, without tokenizing")
	fs.IntVarP(&f.jobs, "jobs", "j", 1, "Number of parallel sort workers (env PROPERSORT_JOBS)")
	fs.BoolVar(&f.tokens, "tokens", false, "Print the tokens of each line instead of sorting")
	fs.StringVar(&f.envFile, "env-file", "", "Load settings from a .env, .json or .yaml file")

	return cmd
}

func (a *app) run(cmd *cobra.Command, f flags, args []string) error {
	ctx := cmd.Context()

	if f.envFile != "" {
		vars, err := envutil.LoadEnvFile(f.envFile)
		if err != nil {
			return err
		}

		ctx = envutil.WithEnvOverrides(ctx, vars)
	}

	logOpts, err := logger.ReadOptions(ctx, appName)
	if err != nil {
		return err
	}

	logger.WithFallbackOutput(a.stderr)(&logOpts)
	ctx = logger.WithLogger(ctx, a.configure(logOpts))

	cfg, err := resolveSettings(ctx, cmd, f)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{textio.Stdin}
	}

	lines, readErr := a.readAll(ctx, args)

	log := logger.Get(ctx)
	log.Debug("input read", "files", len(args), "lines", len(lines), "jobs", cfg.jobs)

	out := bufio.NewWriter(a.stdout)

	if cfg.tokens {
		if _, err := io.WriteString(out, renderTokens(lines, shouldColorize(a.stdout))); err != nil {
			return err
		}
	} else {
		if cfg.unique {
			lines = uniqueLines(lines)
		}

		if err := sortLines(ctx, cfg, lines); err != nil {
			return err
		}

		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}

	if err := out.Flush(); err != nil {
		return err
	}

	return readErr
}

// readAll concatenates the lines of every input. Unreadable inputs are logged
// and skipped; their errors are returned together once all inputs were tried.
func (a *app) readAll(ctx context.Context, paths []string) ([]string, error) {
	var (
		errs perrors.Collection
		all  []string
	)

	for _, path := range paths {
		var (
			lines []string
			cs    string
			err   error
		)

		if path == textio.Stdin {
			lines, cs, err = textio.ReadLines(a.stdin)
		} else {
			lines, cs, err = textio.ReadFile(path)
		}

		if err != nil {
			err = logger.AnnotateError(err, "path", path)
			logger.Get(ctx).Error("skipping input", "error", err)
			errs.Add(err)

			continue
		}

		if cs != "utf-8" {
			logger.Get(ctx).Debug("transcoded input", "path", path, "charset", cs)
		}

		all = append(all, lines...)
	}

	if errs.HasError() {
		return all, fmt.Errorf("%d of %d inputs failed: %w", errs.Len(), len(paths), errs.GetError())
	}

	return all, nil
}

// resolveSettings merges flags over the environment. A flag given on the
// command line always wins.
func resolveSettings(ctx context.Context, cmd *cobra.Command, f flags) (settings, error) {
	cfg := settings{
		reverse: f.reverse,
		unique:  f.unique,
		fold:    f.fold,
		tokens:  f.tokens,
		jobs:    f.jobs,
	}

	if !cmd.Flags().Changed("reverse") {
		reverse, err := envutil.Bool(ctx, "PROPERSORT_REVERSE", envutil.Default(f.reverse)).Value()
		if err != nil {
			return settings{}, err
		}

		cfg.reverse = reverse
	}

	if !cmd.Flags().Changed("jobs") {
		jobs, err := envutil.Int(ctx, "PROPERSORT_JOBS", envutil.Default(f.jobs)).Value()
		if err != nil {
			return settings{}, err
		}

		cfg.jobs = jobs
	}

	if cfg.jobs < 1 {
		return settings{}, fmt.Errorf("%w: %d", errInvalidJobs, cfg.jobs)
	}

	return cfg, nil
}

func sortLines(ctx context.Context, cfg settings, lines []string) error {
	cmp := natural.Compare
	if cfg.fold {
		cmp = natural.CompareFold
	}

	if cfg.reverse {
		forward := cmp
		cmp = func(a, b string) int { return forward(b, a) }
	}

	if cfg.jobs > 1 {
		return simultaneously.SortFunc(ctx, cfg.jobs, lines, cmp)
	}

	slices.SortStableFunc(lines, cmp)

	return nil
}
