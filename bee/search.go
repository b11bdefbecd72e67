package bee

import (
	"context"
	"fmt"
	"runtime"
	"runtime/pprof"
	"slices"

	"github.com/cespare/wait"
)

// Options configure Search.
type Options struct {
	// Workers is the number of partitions searched concurrently.
	// If zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Centers restricts the search to puzzles with these center letters.
	// If empty, all 26 letters are used.
	Centers string

	// OnRecord, if non-nil, is called for each new maximum in the order a
	// single-threaded search would find them. OnRecord and OnProgress are
	// called from the goroutine that called Search.
	OnRecord func(Record)

	// OnProgress, if non-nil, is called after each partition of the search
	// space is merged into the result.
	OnProgress func(Progress)
}

// Progress describes how far a Search has come.
type Progress struct {
	Center byte
	First  byte // first letter after the center in the last partition
	Done   int  // puzzles evaluated so far
	Total  int
}

type partitionResult struct {
	max     Maxima
	records []Record
	n       int
}

func (p partition) search(d *Dictionary) partitionResult {
	var res partitionResult
	for a := range p.alphabets() {
		res.n++
		res.records = append(res.records, res.max.Consider(a, d.Stats(a))...)
	}
	return res
}

func searchPartitions(centers string) ([]partition, error) {
	if centers == "" {
		centers = "abcdefghijklmnopqrstuvwxyz"
	}
	cs := []byte(centers)
	for _, c := range cs {
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("bad center letter %q: %w", c, ErrLetter)
		}
	}
	slices.Sort(cs)
	cs = slices.Compact(cs)
	var parts []partition
	for _, c := range cs {
		parts = append(parts, centerPartitions(c)...)
	}
	return parts, nil
}

// Search evaluates every canonical puzzle against d and returns the best
// value found for each Field.
//
// The search space is split into partitions, one per center letter and first
// following letter, which are searched concurrently with local maxima. Results
// are merged in enumeration order, so the sequence of Records passed to
// opts.OnRecord does not depend on opts.Workers.
//
// If ctx is canceled, Search stops handing out partitions and returns the
// maxima merged so far along with ctx.Err().
func Search(ctx context.Context, d *Dictionary, opts Options) (Maxima, error) {
	parts, err := searchPartitions(opts.Centers)
	if err != nil {
		return Maxima{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var total int
	for _, p := range parts {
		total += p.size()
	}

	results := make([]chan partitionResult, len(parts))
	for i := range results {
		results[i] = make(chan partitionResult, 1)
	}
	work := make(chan int)

	var wg wait.Group
	wg.Go(func(quit <-chan struct{}) error {
		defer close(work)
		for i := range parts {
			select {
			case work <- i:
			case <-quit:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range workers {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case <-quit:
					return nil
				case i, ok := <-work:
					if !ok {
						return nil
					}
					p := parts[i]
					labels := pprof.Labels(
						"center", string(p.center),
						"first", string(p.firstLetter()),
					)
					pprof.Do(ctx, labels, func(context.Context) {
						results[i] <- p.search(d)
					})
				}
			}
		})
	}

	var m Maxima
	var done int
merge:
	for i, p := range parts {
		var res partitionResult
		select {
		case res = <-results[i]:
		case <-ctx.Done():
			break merge
		}
		for _, r := range res.records {
			r, ok := m.observe(r.Field, r.Alphabet, r.Stats)
			if ok && opts.OnRecord != nil {
				opts.OnRecord(r)
			}
		}
		m.Merge(res.max)
		done += res.n
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				Center: p.center,
				First:  p.firstLetter(),
				Done:   done,
				Total:  total,
			})
		}
	}
	err = wg.Wait()
	if err == nil && done < total {
		err = ctx.Err()
	}
	return m, err
}
