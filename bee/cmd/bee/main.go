// Command bee solves Spelling Bee puzzles.
//
// Usage:
//
//	bee [flags] LETTERS   # solve one puzzle; the center letter comes first
//	bee [flags] run       # search every puzzle for the highest counts
//	bee [flags]           # read puzzles interactively
//
// In interactive mode, entering "maximum" starts a search.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cespare/bee/bee"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "Config file (default $HOME/.config/bee/bee.ini)")
		fgprofAddr = flag.String("fgprof", "", "If set, serve /debug/fgprof on this address")
		verbose    = flag.Bool("v", false, "Print the final maxima of a search in detail")
	)
	flag.String("dict", "", "Comma-separated list of word files (default words.txt)")
	flag.String("exclude", "", "Drop words containing any of these letters")
	flag.Int("workers", 0, "Number of concurrent search workers (default GOMAXPROCS)")
	flag.String("centers", "", "Only search puzzles with these center letters")
	flag.String("color", "", "Color output: auto, always, or never")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [LETTERS | run]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := defaultConfig()
	if name := *configFile; name != "" {
		if err := cfg.loadFile(name); err != nil {
			log.Fatal(err)
		}
	} else if name := defaultConfigPath(); name != "" {
		if err := cfg.loadFile(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
	}
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config", "fgprof", "v":
			return
		}
		if err := cfg.set(f.Name, f.Value.String()); err != nil && flagErr == nil {
			flagErr = fmt.Errorf("-%s", err)
		}
	})
	if flagErr != nil {
		log.Fatal(flagErr)
	}

	if *fgprofAddr != "" {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			log.Fatal(http.ListenAndServe(*fgprofAddr, nil))
		}()
	}

	var puzzle *bee.Alphabet
	search := false
	switch {
	case flag.NArg() == 0:
	case flag.NArg() == 1 && flag.Arg(0) == "run":
		search = true
	default:
		a, err := bee.ParseAlphabet(strings.Join(flag.Args(), ""))
		if err != nil {
			log.Fatal(err)
		}
		puzzle = &a
	}

	words, total, err := loadDictionary(cfg.dicts, cfg.exclude)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded dictionary from %s: %s words, filtered down to %s.",
		strings.Join(cfg.dicts, ", "),
		humanize.Comma(int64(total)), humanize.Comma(int64(len(words))),
	)
	if len(words) == 0 {
		log.Fatal("Dictionary is empty")
	}
	dict := bee.NewDictionary(words)

	width, isTerm := terminalWidth(os.Stdout)
	useColor := cfg.color == "always" || cfg.color == "auto" && isTerm
	rep := newReporter(os.Stdout, width, useColor)

	runSearch := func(ctx context.Context) error {
		start := time.Now()
		m, err := bee.Search(ctx, dict, bee.Options{
			Workers:    cfg.workers,
			Centers:    cfg.centers,
			OnRecord:   rep.record,
			OnProgress: rep.progress,
		})
		rep.done(m, time.Since(start))
		if *verbose {
			pretty.Println(m)
		}
		return err
	}

	switch {
	case puzzle != nil:
		rep.solution(dict.Solve(*puzzle))
	case search:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runSearch(ctx); err != nil {
			log.Fatal(err)
		}
	default:
		if err := interactive(dict, rep, runSearch); err != nil {
			log.Fatal(err)
		}
	}
}
