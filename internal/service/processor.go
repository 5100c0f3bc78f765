package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"example/room-image-gen/internal/model"
)

type BatchProcessor struct {
	generator        *ImageGenerator
	concurrent       int
	progressInterval time.Duration
}

func NewBatchProcessor(generator *ImageGenerator, concurrent int) *BatchProcessor {
	if concurrent < 1 {
		concurrent = 1
	}
	return &BatchProcessor{
		generator:        generator,
		concurrent:       concurrent,
		progressInterval: 4 * time.Second,
	}
}

// Run processes every entry with at most p.concurrent in flight and waits
// for all of them. Per-entry failures land in the report; only setup
// problems are returned as errors.
func (p *BatchProcessor) Run(ctx context.Context, entries []model.Entry) (*Report, error) {
	if err := os.MkdirAll(p.generator.OutputDir(), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	runID := uuid.NewString()
	started := time.Now()
	total := len(entries)
	results := make([]model.Result, total)

	var processedCount int32
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(p.progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				processed := atomic.LoadInt32(&processedCount)
				if processed < int32(total) {
					log.Printf("progress: %d/%d (%.1f%%)", processed, total, float64(processed)/float64(total)*100)
				}
			}
		}
	}()

	g := new(errgroup.Group)
	g.SetLimit(p.concurrent)

	for i, entry := range entries {
		g.Go(func() error {
			results[i] = p.generator.Process(ctx, entry, i+1, total)
			atomic.AddInt32(&processedCount, 1)
			return nil
		})
	}
	// workers never return errors
	_ = g.Wait()

	report := NewReport(runID, results)
	report.Started = started
	report.Elapsed = time.Since(started)
	return report, nil
}

// Plan returns the entries a run would actually send to the API.
func (p *BatchProcessor) Plan(entries []model.Entry) []model.Entry {
	var pending []model.Entry
	for _, e := range entries {
		if _, ok := p.generator.Existing(e.ID); !ok {
			pending = append(pending, e)
		}
	}
	return pending
}
