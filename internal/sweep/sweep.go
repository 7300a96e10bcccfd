// Package sweep evaluates many ant rules in parallel. Every job runs on its
// own engine, so workers share nothing but the job and result channels.
package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"mad-ant/pkg/core"
	"mad-ant/pkg/sims/ant"
)

// Options controls how each rule is evaluated.
type Options struct {
	Steps     int
	Window    int
	MaxPeriod int
	Workers   int
}

// DefaultOptions returns settings that catch the classic highway.
func DefaultOptions() Options {
	return Options{Steps: 11_000, Window: 1000, MaxPeriod: 200, Workers: runtime.NumCPU()}
}

// Result captures telemetry from one rule run.
type Result struct {
	Behavior string
	// Ticks is the total number of moves, including highway sampling.
	Ticks      uint64
	Cells      int
	Width      int64
	Height     int64
	Highway    ant.Highway
	HasHighway bool
	Err        error
}

// Evaluate runs behavior for opts.Steps ticks, then samples for a highway.
func Evaluate(behavior string, opts Options) Result {
	res := Result{Behavior: behavior}
	e, err := ant.New(behavior)
	if err != nil {
		res.Err = err
		return res
	}
	res.Behavior = e.Behavior().String()
	if err := e.Start(); err != nil {
		res.Err = err
		return res
	}
	if err := e.Step(opts.Steps); err != nil {
		res.Err = err
		return res
	}
	if opts.Window > 0 && opts.MaxPeriod > 0 {
		res.Highway, res.HasHighway, res.Err = ant.DetectHighway(e, opts.Window, opts.MaxPeriod)
	}
	res.Ticks = e.State().Ticks
	res.Cells = e.Grid().Len()
	if min, max, ok := e.Grid().Bounds(); ok {
		res.Width = max.X - min.X + 1
		res.Height = max.Y - min.Y + 1
	}
	return res
}

// Run evaluates behaviors on a pool of opts.Workers goroutines. Results keep
// the input order. Jobs not yet started when ctx is done report ctx.Err().
func Run(ctx context.Context, behaviors []string, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(behaviors))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Behavior: behaviors[idx], Err: err}
					continue
				}
				results[idx] = Evaluate(behaviors[idx], opts)
			}
		}()
	}

	for idx := range behaviors {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
	return results
}

// RandomBehaviors returns count distinct rules with lengths in
// [minLen, maxLen], drawn deterministically from seed. Rules made of a single
// repeated turn are skipped since they only circle a 2x2 block.
func RandomBehaviors(seed int64, count, minLen, maxLen int) []string {
	if minLen < 2 {
		minLen = 2
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	rng := core.NewRNG(seed)
	seen := make(map[string]bool, count)
	out := make([]string, 0, count)
	for attempts := 0; len(out) < count && attempts < count*64; attempts++ {
		rule := rng.Rule(rng.IntRange(minLen, maxLen))
		if seen[rule] || uniform(rule) {
			continue
		}
		seen[rule] = true
		out = append(out, rule)
	}
	return out
}

func uniform(rule string) bool {
	for i := 1; i < len(rule); i++ {
		if rule[i] != rule[0] {
			return false
		}
	}
	return true
}

// Rank orders results: highways first, then by visited cells, then by rule.
// Failed runs sink to the end.
func Rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.HasHighway != b.HasHighway {
			return a.HasHighway
		}
		if a.Cells != b.Cells {
			return a.Cells > b.Cells
		}
		return a.Behavior < b.Behavior
	})
}
