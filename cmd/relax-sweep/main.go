// Command relax-sweep measures how the residual divergence of the pressure
// solve responds to the over-relaxation factor and sweep count, to pick a
// fixed iteration count for real-time use.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"eulerflow/internal/sims/fluid"
)

type paramSet struct {
	overrelaxation float64
	iterations     int
}

func (p paramSet) String() string {
	return fmt.Sprintf("omega=%.2f iters=%d", p.overrelaxation, p.iterations)
}

type sweepResult struct {
	params   paramSet
	residual float64
	elapsed  time.Duration
}

func main() {
	steps := flag.Int("steps", 60, "timesteps to simulate per candidate")
	width := flag.Int("width", 128, "grid width for sweep runs")
	height := flag.Int("height", 72, "grid height for sweep runs")
	obstacle := flag.Bool("obstacle", true, "include the demo obstacle")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	flag.Parse()

	omegaOptions := []float64{1.0, 1.3, 1.6, 1.8, 1.94}
	iterOptions := []int{10, 25, 50, 100, 200}

	var candidates []paramSet
	for _, omega := range omegaOptions {
		for _, iters := range iterOptions {
			candidates = append(candidates, paramSet{overrelaxation: omega, iterations: iters})
		}
	}

	results := make([]sweepResult, len(candidates))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = evaluate(candidates[idx], *width, *height, *steps, *obstacle)
			}
		}()
	}
	for idx := range candidates {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].residual < results[j].residual
	})

	fmt.Printf("sweep: %dx%d grid, %d steps, obstacle=%v\n", *width, *height, *steps, *obstacle)
	for _, r := range results {
		fmt.Printf("%-24s residual=%.3e elapsed=%s\n", r.params, r.residual, r.elapsed.Round(time.Millisecond))
	}
}

// evaluate runs one candidate in its own simulation instance. Instances are
// independent, so candidates can run in parallel even though each solver is
// strictly single-threaded.
func evaluate(p paramSet, width, height, steps int, obstacle bool) sweepResult {
	cfg := fluid.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Params.Overrelaxation = p.overrelaxation
	cfg.Params.ProjIterations = p.iterations
	cfg.Params.DemoObstacle = obstacle

	sim := fluid.NewWithConfig(cfg)
	start := time.Now()
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	return sweepResult{params: p, residual: sim.MeanAbsDivergence(), elapsed: time.Since(start)}
}
