// Command modelcheck is a thin CLI wrapper around the modelchecker
// library: it loads a built-in Kripke structure and checks an LTL
// formula against it, printing a counterexample lasso on violation.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	modelchecker "github.com/justusdieckmann/model-checker"
	"github.com/justusdieckmann/model-checker/kripke"
)

// Exit codes per §6.
const (
	exitOK        = 0
	exitViolation = 1
	exitInvalid   = 2
)

var builtinExamples = map[string]func() *kripke.Builder{
	"alternating": modelchecker.NewAlternatingExample,
	"self-loop":   modelchecker.NewSelfLoopExample,
	"dead-end":    modelchecker.NewDeadEndExample,
	"no-start":    modelchecker.NewNoStartExample,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var exampleName string
	var verbose bool

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "modelcheck <formula>",
		Short: "Check an LTL formula against a built-in Kripke structure",
		Args:  cobra.ExactArgs(1),
	}
	root.Flags().StringVar(&exampleName, "example", "alternating",
		fmt.Sprintf("built-in model to check against (%s)", exampleNames()))
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug-level diagnostics")

	exitCode := exitOK
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger = logger.Level(zerolog.DebugLevel)
		} else {
			logger = logger.Level(zerolog.InfoLevel)
		}

		newModel, ok := builtinExamples[exampleName]
		if !ok {
			logger.Error().Str("example", exampleName).Msg("unknown built-in example")
			exitCode = exitInvalid
			return nil
		}

		formula := args[0]
		logger.Debug().Str("formula", formula).Str("example", exampleName).Msg("checking property")

		lasso, err := modelchecker.Check(newModel(), formula)
		if err != nil {
			logger.Error().Err(err).Msg("check failed")
			exitCode = exitInvalid
			return nil
		}

		if lasso == nil {
			logger.Info().Msg("property holds on every execution")
			exitCode = exitOK
			return nil
		}

		logger.Debug().Str("lasso", lasso.String()).Msg("counterexample lasso")
		logger.Error().
			Int("prefix_len", len(lasso.Prefix)).
			Int("cycle_len", len(lasso.Cycle)).
			Msg("property violated")
		fmt.Println(lasso)
		exitCode = exitViolation
		return nil
	}

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("invalid invocation")
		return exitInvalid
	}
	return exitCode
}

func exampleNames() string {
	names := make([]string, 0, len(builtinExamples))
	for name := range builtinExamples {
		names = append(names, name)
	}
	return fmt.Sprint(names)
}
