package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/gosally/internal/logio"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var stackLimit int
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stackLimit, "stack-limit", 0, "enable parameter stack limit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] [FILE...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var diag logio.Logger
	diag.SetOutput(os.Stderr)

	var opts = []VMOption{
		WithOutput(os.Stdout),
		WithDiagf(diag.Leveledf("")),
	}
	if args := flag.Args(); len(args) > 0 {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				diag.ErrorIf(err)
				return diag.ExitCode()
			}
			defer f.Close()
			opts = append(opts, WithInput(f))
		}
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, WithLineReader(newPrompt()))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	if stackLimit != 0 {
		opts = append(opts, WithStackLimit(stackLimit))
	}
	vm := New(opts...)
	defer vm.Close()

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := vm.Run(ctx); err != nil {
		return 1
	}
	return diag.ExitCode()
}
