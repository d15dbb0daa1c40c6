// Command sievelang is a thin demo driver over the filter language:
// it loads named filters and sieves from a YAML config, evaluates
// them against a YAML record, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsantos/sievelang/config"
	"github.com/tsantos/sievelang/eval"
)

var verbose bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sievelang",
		Short: "Compile and evaluate filter-language expressions against a record",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each evaluation step")
	root.AddCommand(newCheckCommand())
	root.AddCommand(newMatchCommand())
	return root
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config.yaml>",
		Short: "Compile every filter and sieve in a config file, reporting the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d filter(s), %d sieve(s)\n", len(doc.Filters), len(doc.Sieves))
			return nil
		},
	}
}

func newMatchCommand() *cobra.Command {
	var sieveName, filterName string

	cmd := &cobra.Command{
		Use:   "match <config.yaml> <record.yaml>",
		Short: "Evaluate a named filter or sieve against a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (sieveName == "") == (filterName == "") {
				return fmt.Errorf("exactly one of --sieve or --filter is required")
			}

			doc, err := config.Load(args[0])
			if err != nil {
				return err
			}
			rec, err := config.LoadRecord(args[1])
			if err != nil {
				return err
			}

			e := eval.NewEvaluator(evaluatorOptions()...)

			if filterName != "" {
				f, ok := doc.Filters[filterName]
				if !ok {
					return fmt.Errorf("no such filter: %q", filterName)
				}
				matched, err := e.Eval(f, rec)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), matched)
				return nil
			}

			s, ok := doc.Sieves[sieveName]
			if !ok {
				return fmt.Errorf("no such sieve: %q", sieveName)
			}
			matched, i, err := s.MatchTrace(e, rec)
			if err != nil {
				return err
			}
			if matched {
				fmt.Fprintf(cmd.OutOrStdout(), "true (predicate %d)\n", i)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "false")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sieveName, "sieve", "", "named sieve to evaluate")
	cmd.Flags().StringVar(&filterName, "filter", "", "named filter to evaluate")
	return cmd
}

func evaluatorOptions() []eval.Option {
	if !verbose {
		return nil
	}
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return []eval.Option{eval.WithLogger(logger.WithField("component", "eval"))}
}
