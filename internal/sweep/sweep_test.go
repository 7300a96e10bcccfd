package sweep

import (
	"context"
	"errors"
	"slices"
	"testing"

	"mad-ant/pkg/core"
)

func TestEvaluateClassic(t *testing.T) {
	res := Evaluate("rl", DefaultOptions())
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Behavior != "RL" {
		t.Fatalf("behavior = %q", res.Behavior)
	}
	if !res.HasHighway || res.Highway.Period != 104 {
		t.Fatalf("highway = %+v (found=%v)", res.Highway, res.HasHighway)
	}
	if res.Ticks != 11_000+1000+200 {
		t.Fatalf("ticks = %d", res.Ticks)
	}
	if res.Cells == 0 || res.Width == 0 || res.Height == 0 {
		t.Fatalf("empty telemetry: %+v", res)
	}
}

func TestEvaluateInvalid(t *testing.T) {
	res := Evaluate("RLQ", DefaultOptions())
	var invalid *core.InvalidBehaviorError
	if !errors.As(res.Err, &invalid) {
		t.Fatalf("err = %v", res.Err)
	}
}

func TestRunMatchesSequential(t *testing.T) {
	opts := Options{Steps: 3000, Window: 200, MaxPeriod: 50, Workers: 4}
	rules := []string{"RL", "RLR", "LLRR", "LRRRRRLLR", "RRLLLRLLLRRR", "LRL"}
	got := Run(context.Background(), rules, opts)
	if len(got) != len(rules) {
		t.Fatalf("got %d results", len(got))
	}
	for i, rule := range rules {
		want := Evaluate(rule, opts)
		if got[i] != want {
			t.Fatalf("%s: parallel %+v, sequential %+v", rule, got[i], want)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Run(ctx, []string{"RL", "RLR"}, Options{Steps: 10, Workers: 2})
	for _, r := range res {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("%s err = %v", r.Behavior, r.Err)
		}
	}
}

func TestRandomBehaviors(t *testing.T) {
	a := RandomBehaviors(5, 20, 2, 8)
	b := RandomBehaviors(5, 20, 2, 8)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different rules")
	}
	if len(a) != 20 {
		t.Fatalf("got %d rules", len(a))
	}
	seen := map[string]bool{}
	for _, r := range a {
		if len(r) < 2 || len(r) > 8 || uniform(r) || seen[r] {
			t.Fatalf("bad rule %q in %v", r, a)
		}
		seen[r] = true
	}
}

func TestRank(t *testing.T) {
	results := []Result{
		{Behavior: "A", Cells: 10},
		{Behavior: "B", Err: errors.New("boom"), Cells: 99},
		{Behavior: "C", Cells: 5, HasHighway: true},
		{Behavior: "D", Cells: 30},
	}
	Rank(results)
	var order []string
	for _, r := range results {
		order = append(order, r.Behavior)
	}
	if !slices.Equal(order, []string{"C", "D", "A", "B"}) {
		t.Fatalf("order = %v", order)
	}
}
