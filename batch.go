package glottie

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// FileResult is one entry of a ParseFiles batch: either a resolved
// Composition or the error (including a non-nil Parser.Err()) that
// prevented one.
type FileResult struct {
	Path  string
	Model *Composition
	Err   error
}

// ParseFiles parses every buffer in docs concurrently across a bounded
// goroutine pool, returning one FileResult per input, each tagged with
// its Path. The order of the results follows map iteration and is not
// defined.
// Parallelism here only ever spans independent documents — a single
// document's parse remains the single-threaded, synchronous walk spec §5
// requires; ParseFiles exists to amortize that cost across a batch of
// unrelated animation files, the common shape of an asset-pipeline
// ingestion job.
func ParseFiles(docs map[string][]byte, opts ...ModelOption) []FileResult {
	results := make([]FileResult, 0, len(docs))
	paths := make([]string, 0, len(docs))
	for path := range docs {
		paths = append(paths, path)
	}
	results = results[:len(paths)]

	poolSize := runtime.GOMAXPROCS(0)
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		for i, path := range paths {
			results[i] = FileResult{Path: path, Err: err}
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			p := New(docs[path])
			if !p.IsValid() {
				results[i] = FileResult{Path: path, Err: p.Err()}
				return
			}
			results[i] = FileResult{Path: path, Model: p.Model(opts...)}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = FileResult{Path: path, Err: submitErr}
		}
	}
	wg.Wait()
	return results
}
