package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"mad-ant/internal/app"
	"mad-ant/pkg/sims/ant"
)

func TestSummarizeReportsStateAfterSampling(t *testing.T) {
	cfg := ant.DefaultConfig()
	cfg.Behavior = "RL"
	s, err := app.NewSession(cfg, 31, 31)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(10_000); err != nil {
		t.Fatal(err)
	}

	var lines []string
	logf := func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }
	rf := runFlags{highway: true, window: 1000, maxPeriod: 200}
	if err := summarize(s, rf, time.Second, logf); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("logged %q", lines)
	}
	if !strings.Contains(lines[0], "period 104") || !strings.Contains(lines[0], "sampled 1200 more moves") {
		t.Fatalf("highway line = %q", lines[0])
	}
	if want := fmt.Sprintf("finished %d moves", s.Engine.State().Ticks); !strings.HasPrefix(lines[1], want) {
		t.Fatalf("final line = %q, expected prefix %q", lines[1], want)
	}
	if s.Engine.State().Ticks != 11_200 {
		t.Fatalf("ticks = %d", s.Engine.State().Ticks)
	}
}

func TestSummarizeWithoutHighway(t *testing.T) {
	s, err := app.NewSession(ant.DefaultConfig(), 31, 31)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(64); err != nil {
		t.Fatal(err)
	}
	var lines []string
	logf := func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }
	if err := summarize(s, runFlags{}, 0, logf); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "finished 64 moves") {
		t.Fatalf("logged %q", lines)
	}
}
