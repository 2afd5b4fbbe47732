package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/mattn/conslisp"
)

const usage = `conslisp

Usage:
  conslisp [options] [FILE]
  conslisp -h

Options:
  -c, --config=FILE  Read settings from a YAML file.
  -e, --eval=EXPR    Evaluate EXPR, print the result and exit.
  --no-prelude       Do not load the embedded prelude.
  --max-depth=N      Abort forms nested deeper than N (0 disables the limit).
  --debug            Log evaluator trace to stderr.
  -h, --help         Display this help.

With no FILE, commands are read from stdin; if stdin is a terminal an
interactive session is started.
`

func configure(opts docopt.Opts) (*conslisp.Config, error) {
	cfg := conslisp.DefaultConfig()
	if path, _ := opts.String("--config"); path != "" {
		var err error
		cfg, err = conslisp.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if noPrelude, _ := opts.Bool("--no-prelude"); noPrelude {
		cfg.Prelude = false
	}
	if _, ok := opts["--max-depth"].(string); ok {
		n, err := opts.Int("--max-depth")
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid --max-depth: %v", opts["--max-depth"])
		}
		cfg.MaxDepth = n
	}
	if debug, _ := opts.Bool("--debug"); debug {
		cfg.LogLevel = "debug"
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, nil
}

// report prints the result of one form along with anything it printed.
func report(it *conslisp.Interpreter, cfg *conslisp.Config, ret *conslisp.Node, err error) {
	fmt.Print(it.Ctx.Output())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	} else {
		fmt.Println(ret)
	}
	if cfg.ShowCounter {
		fmt.Printf("eval calls: %d\n", it.Ctx.EvalCalls)
	}
	it.Ctx.Reset()
}

func repl(it *conslisp.Interpreter, cfg *conslisp.Config) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := cfg.HistoryPath()
	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	var pending strings.Builder
	for {
		prompt := cfg.Prompt
		if pending.Len() > 0 {
			prompt = strings.Repeat(".", len(strings.TrimSpace(prompt))) + " "
		}
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			pending.Reset()
			continue
		}
		if err != nil {
			if err != io.EOF {
				cfg.Logger.Error("read", "err", err)
			}
			break
		}
		pending.WriteString(input)
		pending.WriteString("\n")

		src := pending.String()
		node, err := conslisp.Parse(src)
		if errors.Is(err, conslisp.ErrIncomplete) {
			continue
		}
		pending.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(strings.TrimSpace(src))
		if err != nil {
			report(it, cfg, nil, err)
			continue
		}
		ret, err := conslisp.Eval(node, it.Env, it.Ctx)
		report(it, cfg, ret, err)
	}
	fmt.Println()

	if history != "" {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		} else {
			cfg.Logger.Warn("history not saved", "path", history, "err", err)
		}
	}
}

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := configure(opts)
	if err != nil {
		log.Fatal(err)
	}
	it, err := conslisp.NewInterpreterWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if expr, _ := opts.String("--eval"); expr != "" {
		ret, err := it.EvalString(expr)
		report(it, cfg, ret, err)
		if err != nil {
			os.Exit(1)
		}
		return
	}

	var f *os.File
	if path, _ := opts.String("FILE"); path != "" {
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl(it, cfg)
			return
		}
		f = os.Stdin
	}

	_, err = it.EvalReader(f)
	fmt.Print(it.Ctx.Output())
	if err != nil {
		log.Fatal(err)
	}
}
