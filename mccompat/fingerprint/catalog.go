package fingerprint

import (
	"context"
	"sync"

	"github.com/spf13/afero"
)

// Catalog fingerprints a batch of files on a bounded worker pool. Each
// worker touches only its own file's bytes; results flow through a channel
// to a single collector, so no shared mutable state is needed. A canceled
// context stops feeding work; results already produced are returned.
func Catalog(ctx context.Context, fs afero.Fs, paths []string, workers int) map[string]Digests {
	if workers < 1 {
		workers = 1
	}

	type result struct {
		path    string
		digests Digests
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- result{path: path, digests: For(fs, path)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	catalog := make(map[string]Digests, len(paths))
	for r := range results {
		catalog[r.path] = r.digests
	}
	return catalog
}
