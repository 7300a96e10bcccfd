package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"mad-ant/internal/presets"
	"mad-ant/internal/sweep"
)

func main() {
	opts := sweep.DefaultOptions()
	count := 64
	seed := int64(1337)
	minLen, maxLen := 2, 8
	top := 10
	noColor := false
	var rules []string
	var export string

	p := flaggy.NewParser("ant-sweep")
	p.Description = "Evaluate many ant rules in parallel and rank them."
	p.Int(&count, "n", "count", "random rules to generate")
	p.Int64(&seed, "", "seed", "seed for rule generation")
	p.Int(&minLen, "", "min-len", "shortest random rule")
	p.Int(&maxLen, "", "max-len", "longest random rule")
	p.StringSlice(&rules, "r", "rule", "explicit rule to include (repeatable)")
	p.Int(&opts.Steps, "s", "steps", "moves per rule before sampling")
	p.Int(&opts.Window, "", "window", "highway sampling window in moves")
	p.Int(&opts.MaxPeriod, "", "max-period", "longest highway period to look for")
	p.Int(&opts.Workers, "w", "workers", "parallel engines")
	p.Int(&top, "t", "top", "results to print")
	p.String(&export, "o", "export", "write the top rules to this presets file")
	p.Bool(&noColor, "", "no-color", "disable colored output")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	all := append(rules, sweep.RandomBehaviors(seed, count, minLen, maxLen)...)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("sweeping %d rules (%d workers, %d moves)", len(all), opts.Workers, opts.Steps)
	start := time.Now()
	results := sweep.Run(ctx, all, opts)
	sweep.Rank(results)
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))

	au := aurora.NewAurora(!noColor)
	var best []presets.Preset
	for i, res := range results {
		if i >= top {
			break
		}
		if res.Err != nil {
			fmt.Printf("%3d) %-14s %s\n", i+1, res.Behavior, au.Red(res.Err.Error()))
			continue
		}
		shape := au.Faint("chaotic").String()
		if res.HasHighway {
			shape = au.Green(fmt.Sprintf("highway p=%d drift=%v", res.Highway.Period, res.Highway.Drift)).String()
		}
		fmt.Printf("%3d) %-14s cells=%-7d extent=%dx%d %s\n", i+1, res.Behavior, res.Cells, res.Width, res.Height, shape)
		best = append(best, presets.Preset{
			Name:     "sweep-" + strings.ToLower(res.Behavior),
			Behavior: res.Behavior,
			Notes:    fmt.Sprintf("%d cells after %d moves", res.Cells, res.Ticks),
		})
	}

	if export != "" {
		if err := presets.Save(export, best); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d presets to %s", len(best), export)
	}
}
