package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"go.creack.net/astcalc/ast"
	"go.creack.net/astcalc/repl"
)

const historyFile = ".astcalc_history"

// linerReader adapts a liner terminal to repl.LineReader and records history.
type linerReader struct {
	*liner.State
}

func (l *linerReader) Prompt(prompt string) (string, error) {
	line, err := l.State.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", repl.ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		l.AppendHistory(line)
	}
	return line, nil
}

func defaultHistoryPath() string {
	if p, ok := os.LookupEnv("ASTCALC_HISTORY"); ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// evalOnce prints the tree and the result of a single expression.
func evalOnce(input string, debug bool, stdout io.Writer) int {
	res, err := repl.Evaluate(input)
	if res.Tree != nil {
		fmt.Fprintln(stdout, ast.Render(res.Tree))
		if debug {
			pretty.Fprintf(stdout, "%# v\n", res.Tree)
		}
	}
	if err != nil {
		log.Printf("Eval %q: %s.", input, err)
		return 1
	}
	fmt.Fprintln(stdout, repl.FormatValue(res.Value))
	return 0
}

func runInteractive(r *repl.REPL, histPath string) error {
	ln := liner.NewLiner()
	defer func() { _ = ln.Close() }() // Best effort terminal restore.
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	err := r.Run(&linerReader{ln})

	if histPath != "" {
		f, ferr := os.Create(histPath)
		if ferr != nil {
			log.Printf("Save history %q: %s.", histPath, ferr)
			return err
		}
		if _, werr := ln.WriteHistory(f); werr != nil {
			log.Printf("Write history %q: %s.", histPath, werr)
		}
		_ = f.Close()
	}
	return err
}

func main() {
	var (
		evalStr  string
		debug    bool
		plain    bool
		histPath string
	)
	flag.StringVar(&evalStr, "e", "", "Evaluate the given expression and exit")
	flag.BoolVar(&debug, "debug", false, "Dump the tree structure")
	flag.BoolVar(&plain, "plain", false, "Read plain lines from stdin, without line editing")
	flag.StringVar(&histPath, "history", defaultHistoryPath(), "History file, empty to disable (env ASTCALC_HISTORY)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("astcalc: ")

	if evalStr != "" {
		os.Exit(evalOnce(evalStr, debug, os.Stdout))
	}

	r := repl.New(repl.Config{Debug: debug}, os.Stdout)
	r.Banner()

	var err error
	if plain {
		err = r.Run(repl.NewScanner(os.Stdin, os.Stdout))
	} else {
		err = runInteractive(r, histPath)
	}
	if err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
