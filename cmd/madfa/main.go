// Command madfa builds, verifies, and enumerates minimal acyclic DFA
// lexicon files.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/ciuradfa/madfa"
)

func main() {
	if code, handled := runLegacyPositional(os.Args[1:]); handled {
		os.Exit(code)
	}

	root := &cobra.Command{
		Use:   "madfa",
		Short: "Minimal acyclic DFA lexicon compiler",
	}

	var layoutFlag string
	var noStats bool

	buildCmd := &cobra.Command{
		Use:   "build <automaton_file> <lexicon_file>",
		Short: "Build an automaton from a sorted lexicon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parseLayout(layoutFlag)
			if err != nil {
				return err
			}
			cfg := madfa.DefaultConfig()
			cfg.Layout = layout
			cfg.PrintStatistics = !noStats
			return runBuild(args[0], args[1], cfg)
		},
	}
	buildCmd.Flags().StringVar(&layoutFlag, "layout", "list", "transition layout: list or tree")
	buildCmd.Flags().BoolVar(&noStats, "no-stats", false, "suppress construction statistics")

	var testLayoutFlag string
	testCmd := &cobra.Command{
		Use:   "test <automaton_file> <lexicon_file>",
		Short: "Verify every lexicon line is recognized by the automaton",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parseLayout(testLayoutFlag)
			if err != nil {
				return err
			}
			return runTest(args[0], args[1], layout)
		},
	}
	testCmd.Flags().StringVar(&testLayoutFlag, "layout", "list", "transition layout: list or tree")

	var listLayoutFlag string
	listCmd := &cobra.Command{
		Use:   "list <automaton_file> <lexicon_file>",
		Short: "Enumerate the automaton's contents into a lexicon file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := parseLayout(listLayoutFlag)
			if err != nil {
				return err
			}
			return runList(args[0], args[1], layout)
		},
	}
	listCmd.Flags().StringVar(&listLayoutFlag, "layout", "list", "transition layout: list or tree")

	root.AddCommand(buildCmd, testCmd, listCmd)
	if err := root.Execute(); err != nil {
		gologger.Error().Msgf("%v", err)
		os.Exit(exitCodeFor(err))
	}
}

// runLegacyPositional implements spec.md §6's literal `madfa -m out words`
// / `-t` / `-l` entry point, for fidelity alongside the cobra subcommand
// surface above. The original C implementation's inverted-branch variant
// of this dispatch has indeterminate behavior and is intentionally not
// reproduced — only the `== 0` (matching-flag) semantics are implemented.
func runLegacyPositional(args []string) (code int, handled bool) {
	if len(args) != 3 {
		return 0, false
	}
	mode, automatonPath, lexiconPath := args[0], args[1], args[2]
	if mode != "-m" && mode != "-t" && mode != "-l" {
		return 0, false
	}

	var err error
	switch mode {
	case "-m":
		cfg := madfa.DefaultConfig()
		cfg.PrintStatistics = true
		err = runBuild(automatonPath, lexiconPath, cfg)
	case "-t":
		err = runTest(automatonPath, lexiconPath, madfa.List)
	case "-l":
		err = runList(automatonPath, lexiconPath, madfa.List)
	}
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return exitCodeFor(err), true
	}
	return 0, true
}

func parseLayout(s string) (madfa.Layout, error) {
	switch s {
	case "list", "":
		return madfa.List, nil
	case "tree":
		return madfa.Tree, nil
	default:
		return 0, fmt.Errorf("unknown layout %q: want list or tree", s)
	}
}

func runBuild(automatonPath, lexiconPath string, cfg madfa.Config) error {
	start := time.Now()
	lines, charCount, err := countLines(lexiconPath)
	if err != nil {
		return err
	}

	a, err := madfa.BuildFromFile(lexiconPath, cfg)
	if err != nil {
		return err
	}
	if err := a.SaveFile(automatonPath); err != nil {
		return err
	}

	if cfg.PrintStatistics {
		gologger.Info().Msgf(
			"%d strings / %d characters / %d states / %d transitions / %d terminal transitions / %d bytes / %s",
			lines, charCount, a.NumWords(), a.NumWords()-1, a.NumTerminalTransitions(), a.NumWords()*4, time.Since(start),
		)
	}
	return nil
}

func runTest(automatonPath, lexiconPath string, layout madfa.Layout) error {
	a, err := madfa.LoadFile(automatonPath, layout)
	if err != nil {
		return err
	}

	f, err := os.Open(lexiconPath)
	if err != nil {
		return fmt.Errorf("%w: %w", madfa.ErrIO, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	var failures int
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Bytes()
		if !a.Contains(line) {
			gologger.Warning().Msgf("line %d: %q not recognized", lineNo, line)
			failures++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", madfa.ErrIO, err)
	}
	if failures > 0 {
		return fmt.Errorf("%d lines not recognized", failures)
	}
	return nil
}

func runList(automatonPath, outputPath string, layout madfa.Layout) error {
	a, err := madfa.LoadFile(automatonPath, layout)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", madfa.ErrIO, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 64*1024)
	for s := range a.Strings() {
		if _, err := w.Write(s); err != nil {
			return fmt.Errorf("%w: %w", madfa.ErrIO, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", madfa.ErrIO, err)
		}
	}
	return w.Flush()
}

func countLines(path string) (lines, chars int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", madfa.ErrIO, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines++
		chars += len(sc.Bytes())
	}
	return lines, chars, sc.Err()
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, madfa.ErrUnsorted):
		return 2
	case errors.Is(err, madfa.ErrTooLong):
		return 3
	case errors.Is(err, madfa.ErrTooLarge):
		return 4
	case errors.Is(err, madfa.ErrCorrupt):
		return 5
	case errors.Is(err, madfa.ErrIO):
		return 6
	default:
		return 1
	}
}
