package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"snaken/internal/agent"
	"snaken/pkg/snaken"
)

func main() {
	episodes := flag.Int("episodes", 32, "episodes per parameter set")
	steps := flag.Int("steps", 5000, "tick limit per episode")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 32, "world width")
	height := flag.Int("h", 32, "world height")
	seed := flag.Int64("seed", 1337, "base seed; episode i uses seed+i")
	policy := flag.String("policy", "greedy", "controller policy: random or greedy")
	selfHit := flag.Bool("self", true, "biting the own body is lethal")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	if _, err := agent.New(*policy, *seed); err != nil {
		log.Fatal(err)
	}

	base := snaken.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Params.Speed = snaken.MaxSpeed
	base.Params.SelfIntersection = *selfHit
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid world: %v", err)
	}

	sets := grid([]int{32, 64, 128, 255, snaken.UnlimitedStamina}, []int{1, 3, 8})
	fmt.Printf("Sweeping %d parameter sets x %d episodes (%d workers, %d steps, %s policy)\n",
		len(sets), *episodes, *workers, *steps, *policy)

	start := time.Now()
	all := sweep(base, sets, sweepOptions{
		episodes: *episodes,
		steps:    *steps,
		workers:  *workers,
		seed:     *seed,
		policy:   *policy,
	})
	sort.Slice(all, func(i, j int) bool { return all[i].better(all[j]) })

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

type sweepOptions struct {
	episodes int
	steps    int
	workers  int
	seed     int64
	policy   string
}

// sweep runs every parameter set on a worker pool and returns one result per
// set in completion order.
func sweep(base snaken.Config, sets []paramSet, opts sweepOptions) []setResult {
	if opts.workers <= 0 {
		opts.workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan setResult)
	var wg sync.WaitGroup

	for i := 0; i < opts.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSet(base, params, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []setResult
	for res := range results {
		all = append(all, res)
	}
	return all
}
