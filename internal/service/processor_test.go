package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"example/room-image-gen/internal/gemini"
	"example/room-image-gen/internal/model"
)

func entries(n int) []model.Entry {
	out := make([]model.Entry, n)
	for i := range out {
		out[i] = model.Entry{ID: fmt.Sprintf("img-%02d.jpg", i), Prompt: fmt.Sprintf("prompt %d", i)}
	}
	return out
}

func TestRunRespectsConcurrencyLimit(t *testing.T) {
	fake := newGatedGenerator(3)
	g := NewImageGenerator(fake, t.TempDir(), DefaultRetryPolicy)
	p := NewBatchProcessor(g, 3)

	report, err := p.Run(context.Background(), entries(10))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if peak := fake.peak.Load(); peak != 3 {
		t.Errorf("peak in-flight calls = %d, want 3", peak)
	}
	if calls := fake.calls.Load(); calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	if report.Succeeded != 10 {
		t.Errorf("succeeded = %d, want 10", report.Succeeded)
	}
}

func TestRunEndToEnd(t *testing.T) {
	fake := &scriptedGenerator{responses: []response{{data: bytes.Repeat([]byte{7}, 2048)}}}
	dir := filepath.Join(t.TempDir(), "landing")
	g := NewImageGenerator(fake, dir, DefaultRetryPolicy)
	p := NewBatchProcessor(g, 3)

	batch := entries(5)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, e := range batch[:2] {
		if err := os.WriteFile(filepath.Join(dir, e.ID), make([]byte, 150_000), 0644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := p.Run(context.Background(), batch)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Succeeded != 3 || report.Skipped != 2 || report.Failed != 0 {
		t.Errorf("tally = %d ok / %d skipped / %d failed, want 3/2/0", report.Succeeded, report.Skipped, report.Failed)
	}
	if report.ExitCode() != 0 {
		t.Errorf("exit code = %d, want 0", report.ExitCode())
	}
	if fake.Calls() != 3 {
		t.Errorf("calls = %d, want 3", fake.Calls())
	}
	if report.RunID == "" {
		t.Error("report has no run id")
	}
	for i, res := range report.Results {
		if res.ID != batch[i].ID {
			t.Errorf("result %d is %s, want %s", i, res.ID, batch[i].ID)
		}
	}
	for _, e := range batch[2:] {
		info, err := os.Stat(filepath.Join(dir, e.ID))
		if err != nil {
			t.Errorf("%s not written: %v", e.ID, err)
			continue
		}
		if info.Size() != 2048 {
			t.Errorf("%s size = %d, want 2048", e.ID, info.Size())
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	fake := &scriptedGenerator{responses: []response{{err: &gemini.NoImageError{Message: "Image generation is not available in your country."}}}}
	g := NewImageGenerator(fake, t.TempDir(), DefaultRetryPolicy)
	g.sleep = (&recordingSleep{}).sleep
	p := NewBatchProcessor(g, 3)

	report, err := p.Run(context.Background(), entries(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed != 1 {
		t.Fatalf("failed = %d, want 1", report.Failed)
	}
	if report.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", report.ExitCode())
	}
	if fake.Calls() != 3 {
		t.Errorf("calls = %d, want 3", fake.Calls())
	}

	var out bytes.Buffer
	report.Print(&out)
	if !strings.Contains(out.String(), "RESULTS: 0 OK, 1 FAILED, 0 SKIPPED") {
		t.Errorf("summary missing from:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "img-00.jpg: Image generation is not available in your country.") {
		t.Errorf("failure listing missing from:\n%s", out.String())
	}
}

func TestRunOutputDirError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	g := NewImageGenerator(&scriptedGenerator{responses: []response{{data: []byte("x")}}}, filepath.Join(file, "out"), DefaultRetryPolicy)

	if _, err := NewBatchProcessor(g, 3).Run(context.Background(), entries(1)); err == nil {
		t.Error("expected an error when the output directory cannot be created")
	}
}

func TestPlan(t *testing.T) {
	g := NewImageGenerator(&scriptedGenerator{}, t.TempDir(), DefaultRetryPolicy)
	batch := entries(3)
	if err := os.WriteFile(filepath.Join(g.OutputDir(), batch[1].ID), make([]byte, SkipThreshold+1), 0644); err != nil {
		t.Fatal(err)
	}

	pending := NewBatchProcessor(g, 3).Plan(batch)

	if len(pending) != 2 || pending[0].ID != batch[0].ID || pending[1].ID != batch[2].ID {
		t.Errorf("pending = %v", pending)
	}
}
