package generator

import "log/slog"

type WorkerOpt func(*Worker)

func WithWorkerLogger(l *slog.Logger) WorkerOpt {
	return func(w *Worker) {
		w.logger = l
	}
}

func WithRenderer(r Renderer) WorkerOpt {
	return func(w *Worker) {
		w.renderer = r
	}
}

func WithPublisher(p Publisher) WorkerOpt {
	return func(w *Worker) {
		w.publisher = p
	}
}

func WithArchiver(a Archiver) WorkerOpt {
	return func(w *Worker) {
		w.archiver = a
	}
}

// WithOutputDir makes the worker write <id>.json, and <id>.txt when a
// renderer is set, into dir.
func WithOutputDir(dir string) WorkerOpt {
	return func(w *Worker) {
		w.outputDir = dir
	}
}
