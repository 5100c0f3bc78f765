package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"example/room-image-gen/internal/gemini"
	"example/room-image-gen/internal/model"
)

// SkipThreshold is the size above which an existing file counts as a
// finished image rather than a placeholder or truncated write.
const SkipThreshold = 100_000

// Generator turns a prompt into image bytes.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type ImageGenerator struct {
	gen       Generator
	outputDir string
	policy    RetryPolicy
	sleep     func(context.Context, time.Duration) error
}

func NewImageGenerator(gen Generator, outputDir string, policy RetryPolicy) *ImageGenerator {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &ImageGenerator{
		gen:       gen,
		outputDir: outputDir,
		policy:    policy,
		sleep:     sleepContext,
	}
}

func (g *ImageGenerator) OutputDir() string { return g.outputDir }

func (g *ImageGenerator) path(id string) string {
	return filepath.Join(g.outputDir, id)
}

// Existing returns the size of the entry's artifact if it is big enough to
// be skipped.
func (g *ImageGenerator) Existing(id string) (int64, bool) {
	info, err := os.Stat(g.path(id))
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), info.Size() > SkipThreshold
}

// Process runs the skip check and then up to MaxAttempts generate/save
// cycles for one entry. It always returns a result; errors end up in it.
func (g *ImageGenerator) Process(ctx context.Context, entry model.Entry, index, total int) model.Result {
	tag := fmt.Sprintf("[%d/%d]", index, total)
	start := time.Now()

	if size, ok := g.Existing(entry.ID); ok {
		log.Printf("%s SKIP %s (already exists, %dKB)", tag, entry.ID, size/1024)
		return model.Result{ID: entry.ID, Outcome: model.OutcomeSkipped, Bytes: size}
	}

	log.Printf("%s Generating %s...", tag, entry.ID)

	var lastErr error
	attempt := 0
	for attempt < g.policy.MaxAttempts {
		attempt++
		attemptStart := time.Now()

		size, err := g.attempt(ctx, entry)
		if err == nil {
			log.Printf("%s OK %s (%dKB, %.1fs)", tag, entry.ID, size/1024, time.Since(attemptStart).Seconds())
			return model.Result{
				ID:       entry.ID,
				Outcome:  model.OutcomeSuccess,
				Bytes:    size,
				Attempts: attempt,
				Elapsed:  time.Since(start),
			}
		}
		lastErr = err
		logFailure(tag, entry.ID, err)

		delay, retry := g.policy.backoff(err)
		if !retry || attempt >= g.policy.MaxAttempts {
			break
		}
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			log.Printf("%s Rate limited, waiting %s...", tag, delay)
		}
		if err := g.sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	return model.Result{
		ID:       entry.ID,
		Outcome:  model.OutcomeFailed,
		Err:      failureDetail(lastErr),
		Attempts: attempt,
		Elapsed:  time.Since(start),
	}
}

func (g *ImageGenerator) attempt(ctx context.Context, entry model.Entry) (int64, error) {
	if g.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.policy.Timeout)
		defer cancel()
	}

	data, err := g.gen.GenerateImage(ctx, entry.Prompt)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(g.path(entry.ID), data, 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", entry.ID, err)
	}
	return int64(len(data)), nil
}

func logFailure(tag, id string, err error) {
	var apiErr *gemini.APIError
	var noImage *gemini.NoImageError
	switch {
	case errors.As(err, &apiErr):
		log.Printf("%s HTTP %d for %s: %s", tag, apiErr.StatusCode, id, apiErr.Message)
	case errors.As(err, &noImage):
		log.Printf("%s WARN %s: %s", tag, id, noImage.Error())
	default:
		log.Printf("%s ERROR %s: %v", tag, id, err)
	}
}
