// Package repl runs the read-eval-print loop on top of the calculator pipeline.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"go.creack.net/astcalc/ast"
	"go.creack.net/astcalc/evaluator"
	"go.creack.net/astcalc/parser"
)

// Prompt is displayed before each input line.
const Prompt = ">>> "

// ErrAborted is returned by a LineReader when the user cancels the current line.
var ErrAborted = errors.New("prompt aborted")

// LineReader reads one line of input after displaying the prompt.
// It returns io.EOF once the input is exhausted.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

type scanner struct {
	r *bufio.Reader
	w io.Writer
}

// NewScanner returns a LineReader reading lines from r and writing prompts to w.
// Lines have no length limit.
func NewScanner(r io.Reader, w io.Writer) LineReader {
	return &scanner{r: bufio.NewReader(r), w: w}
}

func (s *scanner) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(s.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	// A last line without newline is returned as is, the next call gets io.EOF.
	return strings.TrimRight(line, "\r\n"), nil
}

// Config tunes the REPL output.
type Config struct {
	Debug bool // Also dump the tree structure.
}

// REPL evaluates lines read from a LineReader and prints to stdout.
type REPL struct {
	cfg    Config
	stdout io.Writer
}

// New returns a REPL printing to stdout.
func New(cfg Config, stdout io.Writer) *REPL {
	return &REPL{cfg: cfg, stdout: stdout}
}

// Banner prints the greeting shown before the first prompt.
func (r *REPL) Banner() {
	fmt.Fprintln(r.stdout, "🧮 AST Calculator REPL")
	fmt.Fprintln(r.stdout, "Enter mathematical expressions to see the AST and result.")
	fmt.Fprintln(r.stdout, "Examples: '3 + 4 * 2', '(5 - 3) * 2.5', '-10 + 5'")
	fmt.Fprintln(r.stdout, "Type 'quit' or 'exit' to close.")
	fmt.Fprintln(r.stdout)
}

// Run reads and evaluates lines until EOF or a quit command.
// Errors in a line are printed and don't stop the loop.
func (r *REPL) Run(lr LineReader) error {
	for {
		line, err := lr.Prompt(Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.stdout)
			return nil
		}
		if errors.Is(err, ErrAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if IsQuit(line) {
			fmt.Fprintln(r.stdout, "👋")
			return nil
		}
		r.Eval(line)
	}
}

// IsQuit reports whether the line is one of the exit commands.
func IsQuit(line string) bool {
	return strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit")
}

// Result is the outcome of a successfully parsed line.
type Result struct {
	Tree  ast.Expr
	Value float64
}

// Evaluate runs the whole pipeline on one line. When the line parses but
// fails to evaluate, the returned Result still holds the tree.
func Evaluate(line string) (Result, error) {
	tree, err := parser.ParseString(line)
	if err != nil {
		return Result{}, err
	}
	value, err := evaluator.Evaluate(tree)
	if err != nil {
		return Result{Tree: tree}, err
	}
	return Result{Tree: tree, Value: value}, nil
}

// Eval evaluates one line and prints the tree and the result or error.
func (r *REPL) Eval(line string) {
	defer fmt.Fprintln(r.stdout)

	res, err := Evaluate(line)
	if res.Tree == nil {
		fmt.Fprintf(r.stdout, "🚫 parsing: %s\n", err)
		return
	}

	fmt.Fprintf(r.stdout, "🌳 AST: %s\n", ast.Render(res.Tree))
	if r.cfg.Debug {
		fmt.Fprintf(r.stdout, "🔍 tree: %# v\n", pretty.Formatter(res.Tree))
	}
	if err != nil {
		fmt.Fprintf(r.stdout, "❌ evaluating: %s\n", err)
		return
	}
	fmt.Fprintf(r.stdout, "✅ result: %s\n", FormatValue(res.Value))
}

// FormatValue formats a result with the shortest exact decimal form, e.g. "11" or "0.6".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
