package cli

import (
	"context"
	"sync"
)

// result is the outcome for the record at the same index.
type result struct {
	rec  record
	text string
	err  error
	done bool // false when the record was never processed
}

// process applies fn to every record on a fixed pool of workers and returns
// the results in input order. When failFast is set the first error stops
// further records from being handed out; records already in flight finish.
func process(ctx context.Context, workers int, failFast bool, recs []record, fn func(record) (string, error)) []result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]result, len(recs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				text, err := fn(recs[i])
				out[i] = result{rec: recs[i], text: text, err: err, done: true}
				if err != nil && failFast {
					cancel()
				}
			}
		}()
	}

feed:
	for i := range recs {
		// Checked first so a cancelled run stops even when a worker is idle.
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return out
}
