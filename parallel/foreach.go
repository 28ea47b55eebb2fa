// Package parallel contains the worker pool used to fan out per-clause work.
package parallel

import "github.com/sourcegraph/conc/pool"

// ForEach calls body for every integer from 0 to length-1 using at most limit
// goroutines. Each index is handled by exactly one goroutine, and indexes are
// dealt out in strides so a worker handles length/limit of them. A panic in
// body is re-raised after all workers stop.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return // No iterations to perform
	}
	if limit <= 0 {
		limit = 1
	}
	if limit > length {
		limit = length
	}
	if limit == 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	p := pool.New().WithMaxGoroutines(limit)
	for w := 0; w < limit; w++ {
		w := w
		p.Go(func() {
			for i := w; i < length; i += limit {
				body(i)
			}
		})
	}
	p.Wait()
}
