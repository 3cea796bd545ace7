package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-author-comment/domain"
)

const defaultWarmupBatch = 1000

type bloomWarmupWorker struct {
	AuthorRepo domain.AuthorRepository
	BloomRepo  domain.BloomRepository
	interval   time.Duration
	batchSize  int64
}

// NewBloomWarmupWorker loads every author id into the bloom filter, once on
// Warm and periodically on Start.
func NewBloomWarmupWorker(ar domain.AuthorRepository, br domain.BloomRepository, interval time.Duration, batchSize int64) *bloomWarmupWorker {
	if batchSize <= 0 {
		batchSize = defaultWarmupBatch
	}
	return &bloomWarmupWorker{
		AuthorRepo: ar,
		BloomRepo:  br,
		interval:   interval,
		batchSize:  batchSize,
	}
}

// Warm pages through the author ids by cursor and bulk-adds each page. The
// filter only answers negatives once a full pass completed without a failed
// write.
func (w *bloomWarmupWorker) Warm(ctx context.Context) error {
	gen := w.BloomRepo.Generation()
	var cursor, total int64
	for {
		ids, err := w.AuthorRepo.FetchIDs(ctx, cursor, w.batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := w.BloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += int64(len(ids))
		cursor = ids[len(ids)-1]
		if int64(len(ids)) < w.batchSize {
			break
		}
	}
	if err := w.BloomRepo.MarkReady(ctx, gen); err != nil {
		return err
	}
	logrus.Infof("bloom filter warmed with %d author ids", total)
	return nil
}

// Start re-runs Warm every interval until ctx is done. A non-positive interval
// disables the refresh.
func (w *bloomWarmupWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Warm(ctx); err != nil && ctx.Err() == nil {
				logrus.Warnf("bloom warmup failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down BloomWarmupWorker")
			return nil
		}
	}
}
