package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-testutil"
)

type recordingSink struct {
	published []*Result
	archived  []*Result
	err       error
}

func (s *recordingSink) PublishResult(_ context.Context, res *Result) error {
	s.published = append(s.published, res)
	return s.err
}

func (s *recordingSink) Save(_ context.Context, res *Result) error {
	s.archived = append(s.archived, res)
	return nil
}

type seedRenderer struct{}

func (seedRenderer) Render(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w, "seed %d\n", res.Seed)
	return err
}

func TestWorker_Start(t *testing.T) {
	bad := seeded(2)
	bad.Placements = map[string]string{"Zora's Ledge": "Flippers"}

	sink := &recordingSink{}
	dir := t.TempDir()
	w := NewWorker(New(WithLogger(quietLogger())),
		[]Request{{Name: "good", Config: seeded(1)}, {Name: "bad", Config: bad}, {Name: "also good", Config: seeded(3)}},
		WithWorkerLogger(quietLogger()),
		WithPublisher(sink),
		WithArchiver(sink),
		WithRenderer(seedRenderer{}),
		WithOutputDir(dir),
	)

	err := w.Start(context.Background())
	if err == nil {
		t.Fatal("expected the failed request to be reported")
	}

	testutil.AssertEqual(t, "published", len(sink.published), 2)
	testutil.AssertEqual(t, "archived", len(sink.archived), 2)

	id := sink.published[0].ID.String()
	spoiler, err := os.ReadFile(filepath.Join(dir, id+".txt"))
	if err != nil {
		t.Fatalf("reading spoiler: %v", err)
	}
	testutil.AssertEqual(t, "spoiler", string(spoiler), "seed 1\n")

	_, err = os.Stat(filepath.Join(dir, id+".json"))
	testutil.AssertEqual(t, "result file", err == nil, true)
}

func TestWorker_StopsOnSinkError(t *testing.T) {
	sink := &recordingSink{err: errors.New("broker down")}
	w := NewWorker(New(WithLogger(quietLogger())),
		[]Request{{Name: "first", Config: seeded(1)}, {Name: "second", Config: seeded(2)}},
		WithWorkerLogger(quietLogger()),
		WithPublisher(sink),
	)

	err := w.Start(context.Background())
	testutil.AssertErrorContains(t, err, "broker down")
	testutil.AssertEqual(t, "published", len(sink.published), 1)
}

func TestWorker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWorker(New(WithLogger(quietLogger())),
		[]Request{{Name: "only", Config: config.Default()}},
		WithWorkerLogger(quietLogger()),
	)

	err := w.Start(ctx)
	testutil.AssertEqual(t, "canceled", errors.Is(err, context.Canceled), true)
}
