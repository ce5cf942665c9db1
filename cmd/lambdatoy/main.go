package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/samber/lo"

	"github.com/emanaev/lambdatoy/pkg/lambda"
)

const (
	appName     = "lambdatoy"
	historyFile = ".lambdatoy_history"
	prompt      = "> "
)

func main() {
	env := lambda.NewEnv()
	if err := lambda.LoadPrelude(env); err != nil {
		fmt.Fprintf(os.Stderr, "%s: prelude: %v\n", appName, err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1], env))
	}
	os.Exit(repl(env))
}

// runFile evaluates a whole file as one batch: a single syntax error
// suppresses every statement in the file.
func runFile(path string, env *lambda.Env) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	events, err := lambda.Eval(string(src), env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printEvents(events)
	return 0
}

func printEvents(events []lambda.Event) {
	for _, ev := range events {
		if ev.Kind == lambda.Reduced {
			fmt.Println(ev.Text)
		}
	}
}

func repl(env *lambda.Env) int {
	fmt.Println("Welcome to LambdaToy REPL")
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return lo.Filter(env.Names(), func(name string, _ int) bool {
			return strings.HasPrefix(name, line)
		})
	})

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		events, err := lambda.Eval(line, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		printEvents(events)
		ln.AppendHistory(line)
	}
}
