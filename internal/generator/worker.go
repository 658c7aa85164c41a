package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	goerrors "github.com/pixil98/go-errors"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/fill"
)

// Renderer writes a human readable spoiler for a result.
type Renderer interface {
	Render(w io.Writer, res *Result) error
}

// Publisher announces a completed result to downstream consumers.
type Publisher interface {
	PublishResult(ctx context.Context, res *Result) error
}

// Archiver keeps results so they can be looked up by id later.
type Archiver interface {
	Save(ctx context.Context, res *Result) error
}

// Request is a single configured generation.
type Request struct {
	Name   string
	Config *config.Config
}

// Worker runs its requests in order, hands every result to the configured
// sinks and returns once all requests are done.
type Worker struct {
	gen      *Generator
	requests []Request
	logger   *slog.Logger

	renderer  Renderer
	publisher Publisher
	archiver  Archiver
	outputDir string
}

func NewWorker(gen *Generator, requests []Request, opts ...WorkerOpt) *Worker {
	w := &Worker{
		gen:      gen,
		requests: requests,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Start satisfies the service worker interface. A generation failure is
// logged and the next request still runs; all failures are returned
// together. Sink failures and cancellation stop the worker.
func (w *Worker) Start(ctx context.Context) error {
	el := goerrors.NewErrorList()

	for _, req := range w.requests {
		res, err := w.gen.Generate(ctx, req.Config)
		if errors.Is(err, fill.ErrGenerationFailed) {
			w.logger.WarnContext(ctx, "generation failed", "request", req.Name, "error", err)
			el.Add(fmt.Errorf("request %s: %w", req.Name, err))
			continue
		}
		if err != nil {
			return fmt.Errorf("request %s: %w", req.Name, err)
		}

		if err := w.deliver(ctx, res); err != nil {
			return fmt.Errorf("request %s: %w", req.Name, err)
		}
	}

	return el.Err()
}

func (w *Worker) deliver(ctx context.Context, res *Result) error {
	if w.outputDir != "" {
		if err := w.writeFiles(res); err != nil {
			return err
		}
	}

	if w.archiver != nil {
		if err := w.archiver.Save(ctx, res); err != nil {
			return fmt.Errorf("archiving result: %w", err)
		}
	}

	if w.publisher != nil {
		if err := w.publisher.PublishResult(ctx, res); err != nil {
			return fmt.Errorf("publishing result: %w", err)
		}
	}

	w.logger.InfoContext(ctx, "result delivered", "seed_id", res.ID.String())
	return nil
}

func (w *Worker) writeFiles(res *Result) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.outputDir, res.ID.String()+".json"), data, 0644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if w.renderer == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(w.outputDir, res.ID.String()+".txt"))
	if err != nil {
		return fmt.Errorf("creating spoiler file: %w", err)
	}
	// Write errors surface through Render; a close error on top is not actionable.
	defer func() { _ = f.Close() }()

	if err := w.renderer.Render(f, res); err != nil {
		return fmt.Errorf("rendering spoiler: %w", err)
	}
	return nil
}
