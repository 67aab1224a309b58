package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/calvincheng/golox/lox"
)

var printAst bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(64)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golox [script]",
		Short: "golox is a tree-walking interpreter for Lox",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			return runPrompt()
		},
	}
	cmd.Flags().BoolVar(&printAst, "ast", false, "print the parsed AST of each statement before executing it")
	return cmd
}

// runFile scans, parses, resolves, and executes the named script, then
// exits the process with a status reflecting how it went: 0 on success,
// 65 on a scan/parse/resolve error, 70 on a runtime error.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	l := lox.New(os.Stdout)
	run(l, string(src))

	if l.HadError() {
		os.Exit(65)
	}
	if l.HadRuntimeError() {
		os.Exit(70)
	}
	return nil
}

// runPrompt starts a liner-backed REPL. History lives only in memory for
// the duration of the process; the interpreter has no persisted state, so
// there is nothing to write to disk between sessions.
func runPrompt() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	l := lox.New(os.Stdout)
	for {
		text, err := line.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if text == "" {
			continue
		}
		line.AppendHistory(text)
		run(l, text)
		l.ResetError()
	}
}

func run(l *lox.Lox, source string) {
	if printAst {
		l.RunWithAst(source)
		return
	}
	l.Run(source)
}
