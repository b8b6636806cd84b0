package validator

import (
	"context"
	"sync"

	"github.com/Yoga07/NAOM/concurrent"
	"github.com/Yoga07/NAOM/tx"
)

type batchTask struct {
	idx int
	txn *tx.Transaction
}

type batchResult struct {
	idx   int
	valid bool
}

// batchValidator adapts TxIsValid to concurrent.Dispatchable so a block's
// worth of transactions can be checked across a worker pool instead of
// one at a time. Eval reports done once every submitted index has
// reported in, which is what tells the dispatcher to stop.
type batchValidator struct {
	lookup UTXOLookup

	mu        sync.Mutex
	results   []bool
	completed int
	done      chan struct{}
}

func (b *batchValidator) Worker(ctx context.Context, _ int, taskCh chan batchTask, resCh chan batchResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-taskCh:
			if !ok {
				return
			}
			resCh <- batchResult{idx: t.idx, valid: TxIsValid(t.txn, b.lookup)}
		}
	}
}

func (b *batchValidator) Eval(r batchResult) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[r.idx] = r.valid
	b.completed++
	finished := b.completed == len(b.results)
	if finished {
		close(b.done)
	}
	return finished
}

// ValidateBatch checks every transaction in txs against TxIsValid
// concurrently across workers goroutines, preserving input order in the
// returned slice. Intended for block-level validation, where hundreds of
// independent transactions would otherwise be checked serially.
func ValidateBatch(ctx context.Context, txs []*tx.Transaction, lookup UTXOLookup, workers int) []bool {
	if len(txs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	bv := &batchValidator{
		lookup:  lookup,
		results: make([]bool, len(txs)),
		done:    make(chan struct{}),
	}
	d := concurrent.NewDispatcher[batchTask, batchResult](ctx, workers, bv)
	for i, t := range txs {
		d.Process(batchTask{idx: i, txn: t})
	}
	<-bv.done
	return bv.results
}
