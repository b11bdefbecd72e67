package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cespare/bee/bee"
	"github.com/chzyer/readline"
)

const searchCommand = "maximum"

// interactive reads puzzles from the terminal and prints their solutions
// until EOF. Entering "maximum" runs a full search; an interrupt during the
// search returns to the prompt.
func interactive(dict *bee.Dictionary, rep *reporter, search func(context.Context) error) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile(),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		fmt.Fprintln(l.Stdout(), "\nEnter 7 unique letters with the center letter first.")
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, searchCommand) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err := search(ctx)
			stop()
			if err != nil {
				log.Println("Search stopped:", err)
			}
			continue
		}
		a, err := bee.ParseAlphabet(line)
		if err != nil {
			log.Println(err)
			continue
		}
		rep.solution(dict.Solve(a))
	}
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bee_history")
}
