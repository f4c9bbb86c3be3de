// Package repl implements the interactive read-eval-print loop around the
// rpn evaluator.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const (
	DefaultPrompt = "> "
	DefaultQuit   = "quit"
	DefaultBanner = "Reverse Polish Notation.\nType quit to exit"
)

type EvaluateFunc func(expression string) (float64, error)

type Options struct {
	Prompt string
	Banner string
	Quit   string
}

type REPL struct {
	in       LineReader
	out      io.Writer
	evaluate EvaluateFunc
	log      logr.Logger
	opts     Options
}

func New(in LineReader, out io.Writer, evaluate EvaluateFunc, log logr.Logger, opts Options) *REPL {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Quit == "" {
		opts.Quit = DefaultQuit
	}
	return &REPL{
		in:       in,
		out:      out,
		evaluate: evaluate,
		log:      log,
		opts:     opts,
	}
}

// FormatResult renders a value with the fewest digits that round trip.
func FormatResult(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// Run loops until the quit command or the end of input. Evaluation errors
// are printed and the loop continues; only I/O errors are returned.
func (r *REPL) Run() error {
	if r.opts.Banner != "" {
		if _, err := fmt.Fprintln(r.out, r.opts.Banner); err != nil {
			return errors.Wrap(err, "failed to write banner")
		}
	}

	for {
		if _, err := fmt.Fprint(r.out, r.opts.Prompt); err != nil {
			return errors.Wrap(err, "failed to write prompt")
		}

		line, err := r.in.ReadLine()
		if err == io.EOF {
			r.log.V(1).Info("end of input")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read line")
		}

		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == r.opts.Quit {
			r.log.V(1).Info("quit requested")
			return nil
		}

		result, err := r.evaluate(line)
		if err != nil {
			r.log.V(1).Info("evaluation failed", "expression", line, "error", err.Error())
			_, err = fmt.Fprintf(r.out, "Error: %v\n", err)
		} else {
			r.log.V(1).Info("evaluated", "expression", line, "result", result)
			_, err = fmt.Fprintln(r.out, FormatResult(result))
		}
		if err != nil {
			return errors.Wrap(err, "failed to write result")
		}
	}
}
