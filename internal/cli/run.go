package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"ninequiz/internal/config"
	"ninequiz/internal/runner"
	"ninequiz/internal/ui/live"
)

// runInput allows tests to override stdin for quiz answers.
var runInput io.Reader = os.Stdin

var (
	newRunID = runner.NewRunID
	now      = time.Now
)

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", "", "Path to config file (default: search for .ninequiz/config.yml)")
		questionsPath := fs.String("questions", "", "Questions file override")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default: ui.mode from config)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		verbose := fs.Bool("verbose", false, "Log run events to stderr")
		resultsPath := fs.String("results", "", "Write a JSON results file")
		onInvalid := fs.String("on-invalid", "", "Invalid input policy: reprompt|abort")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		policy := runner.InvalidInputPolicy(strings.ToLower(strings.TrimSpace(*onInvalid)))
		switch policy {
		case "", runner.InvalidReprompt, runner.InvalidAbort:
		default:
			fmt.Fprintf(stderr, "invalid --on-invalid %q (expected reprompt|abort)\n", *onInvalid)
			return ExitUsage
		}

		setup, err := loadQuizSetup(*specPath, *questionsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		cfg := setup.cfg

		mode := *uiMode
		if strings.TrimSpace(mode) == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		disableColor := *noColor || cfg.UI.NoColor

		data := config.SessionData(cfg)
		opts := config.RunnerOptions(cfg)
		if policy != "" {
			opts.OnInvalid = policy
			if policy == runner.InvalidAbort {
				opts.MaxAttempts = 0
			}
		}
		if *verbose {
			opts.Observer = runner.NewVerboseObserver(stderr, disableColor)
		}

		runID, err := newRunID()
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		startedAt := now()
		var result runner.Result
		var runErr error
		if decision.useLive {
			result, runErr = live.Run(ctx, setup.questions, data, runInput, stdout, live.Options{
				NoColor:  disableColor,
				Observer: opts.Observer,
			})
		} else {
			result, runErr = runner.New(setup.questions, data, runInput, stdout, opts).Start(ctx)
		}
		finishedAt := now()

		output, err := resolveResultsPath(*resultsPath, setup, runID)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if output != "" {
			report := runner.BuildReport(runID, setup.questions, result, runErr, startedAt, finishedAt)
			if err := runner.WriteReport(output, report); err != nil {
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Results: %s\n", output)
		}

		if runErr != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", runErr)
			return ExitError
		}
		return ExitOK
	}
}

// resolveResultsPath picks the results file from --results, results_file, or
// a per-run file under results_dir. Empty means no results file.
func resolveResultsPath(flagValue string, setup quizSetup, runID string) (string, error) {
	if path := strings.TrimSpace(flagValue); path != "" {
		return path, nil
	}
	if setup.cfg.ResultsFile != "" {
		return config.ResolvePath(setup.root, setup.cfg.ResultsFile), nil
	}
	if setup.cfg.ResultsDir == "" {
		return "", nil
	}
	paths, err := runner.NewOutputPaths(config.ResolvePath(setup.root, setup.cfg.ResultsDir), runID)
	if err != nil {
		return "", err
	}
	return paths.ResultsPath(), nil
}
