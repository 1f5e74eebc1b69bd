package heart

import (
	"math/rand"
	"sync"
)

// SampleParallel splits the cloud across workers, each drawing from its own
// source seeded with seed+worker. The output is deterministic for a given
// seed and worker count.
func SampleParallel(cfg SamplerConfig, seed int64, workers int) (*SampleResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Count {
		workers = cfg.Count
	}

	chunk := (cfg.Count + workers - 1) / workers
	parts := make([][]Point, workers)
	attempts := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := chunk
		if rem := cfg.Count - w*chunk; rem < n {
			n = rem
		}
		if n <= 0 {
			continue
		}

		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(idx)))
			budget := cfg.maxAttempts() / cfg.Count * n
			parts[idx], attempts[idx], errs[idx] = sampleInto(make([]Point, 0, n), cfg, n, budget, rng)
		}(w, n)
	}
	wg.Wait()

	points := make([]Point, 0, cfg.Count)
	total := 0
	for i := range parts {
		if errs[i] != nil {
			return nil, errs[i]
		}
		points = append(points, parts[i]...)
		total += attempts[i]
	}

	return &SampleResult{Cloud: newPointCloud(points, cfg.Scale), Attempts: total}, nil
}
