package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/integrii/flaggy"

	"mad-ant/internal/app"
	"mad-ant/internal/term"
	"mad-ant/pkg/core"
	"mad-ant/pkg/sims/ant"
)

type runFlags struct {
	ticks     int
	every     int
	paced     bool
	pngPath   string
	pngScale  int
	show      bool
	noColor   bool
	highway   bool
	window    int
	maxPeriod int
}

func main() {
	rf := runFlags{ticks: 11_000, every: 1000, pngScale: 4, show: true, window: 1000, maxPeriod: 200}
	cfg, err := app.ParseArgs("ant-run", "Run a multi-color Langton's ant without a window.", os.Args[1:], func(p *flaggy.Parser) {
		p.Int(&rf.ticks, "n", "ticks", "total ant moves")
		p.Int(&rf.every, "e", "every", "log progress every N moves (0 disables)")
		p.Bool(&rf.paced, "", "paced", "advance steps-per-tick moves per frame at --tps instead of flat out")
		p.String(&rf.pngPath, "o", "png", "write the final view to this PNG file")
		p.Int(&rf.pngScale, "", "png-scale", "pixels per cell in the PNG")
		p.Bool(&rf.show, "", "show", "print the final view to the terminal")
		p.Bool(&rf.noColor, "", "no-color", "draw the terminal view with ASCII shading")
		p.Bool(&rf.highway, "w", "highway", "sample the trail for a highway after the run")
		p.Int(&rf.window, "", "window", "highway sampling window in moves")
		p.Int(&rf.maxPeriod, "", "max-period", "longest highway period to look for")
	})
	if err != nil {
		log.Fatal(err)
	}
	antCfg, err := cfg.AntConfig()
	if err != nil {
		log.Fatal(err)
	}
	cols, rows := cfg.GridSize()
	s, err := app.NewSession(antCfg, cols, rows)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("running %s for %d moves", s.Engine.Behavior(), rf.ticks)
	start := time.Now()
	if err := run(ctx, s, antCfg, cfg.TPS, rf); err != nil {
		log.Fatalf("run stopped: %v", err)
	}
	if err := summarize(s, rf, time.Since(start), log.Printf); err != nil {
		log.Fatal(err)
	}

	r := term.New(!rf.noColor)
	if rf.show {
		min, vcols, vrows := s.Canvas.View()
		pos := s.Engine.State().Pos
		fmt.Println(r.Swatch(s.Canvas.Palette()))
		if err := r.Render(os.Stdout, s.Canvas, min, vcols, vrows, &pos); err != nil {
			log.Fatal(err)
		}
	}
	if rf.pngPath != "" {
		if err := writePNG(s, rf.pngPath, rf.pngScale); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", rf.pngPath)
	}
}

// summarize samples for a highway when asked and then logs the state that
// the view and PNG will show. Sampling advances the engine past rf.ticks.
func summarize(s *app.Session, rf runFlags, elapsed time.Duration, logf func(string, ...any)) error {
	if rf.highway {
		before := s.Engine.State().Ticks
		hw, ok, err := ant.DetectHighway(s.Engine, rf.window, rf.maxPeriod)
		if err != nil {
			return fmt.Errorf("highway detection: %w", err)
		}
		if err := s.Canvas.Err(); err != nil {
			return err
		}
		sampled := s.Engine.State().Ticks - before
		if ok {
			logf("highway: period %d, drift %v per period (sampled %d more moves)", hw.Period, hw.Drift, sampled)
		} else {
			logf("no highway with period <= %d (sampled %d more moves)", rf.maxPeriod, sampled)
		}
	}
	st := s.Engine.State()
	logf("finished %d moves in %s: %d cells visited, ant at %v heading %v",
		st.Ticks, elapsed.Round(time.Millisecond), s.Engine.Grid().Len(), st.Pos, st.Dir)
	return nil
}

func run(ctx context.Context, s *app.Session, cfg ant.Config, tps int, rf runFlags) error {
	chunk := cfg.StepsPerTick
	if chunk < 1 {
		chunk = 1
	}
	var pacer *core.FixedStep
	if rf.paced {
		pacer = core.NewFixedStep(tps)
	} else {
		chunk = max(chunk, 4096)
	}

	next := rf.every
	for done := 0; done < rf.ticks; {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := chunk
		if pacer != nil {
			time.Sleep(pacer.Interval())
			n = pacer.Due() * chunk
		}
		n = min(n, rf.ticks-done)
		if err := s.Advance(n); err != nil {
			return err
		}
		done += n
		if rf.every > 0 && done >= next {
			log.Printf("move %d: %d cells", done, s.Engine.Grid().Len())
			for next <= done {
				next += rf.every
			}
		}
	}
	return nil
}

func writePNG(s *app.Session, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Canvas.WritePNG(f, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
