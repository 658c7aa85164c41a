package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-rando/internal/generator"
	"github.com/pixil98/go-testutil"
)

type fakeBroker struct {
	subject  string
	data     []byte
	readyErr error
	pubErr   error
}

func (b *fakeBroker) WaitReady(context.Context) error { return b.readyErr }

func (b *fakeBroker) Publish(subject string, data []byte) error {
	b.subject = subject
	b.data = data
	return b.pubErr
}

var sampleID = uuid.MustParse("0b7e3a52-91c4-4f0e-8d21-6a5b4c3d2e1f")

func sampleResult() *generator.Result {
	return &generator.Result{
		ID:      sampleID,
		Seed:    7,
		Worlds:  []generator.WorldResult{{Id: 0, Player: "Alice"}, {Id: 1, Player: "Bob"}},
		Spheres: make([]generator.SphereResult, 3),
	}
}

func TestResultPublisher_PublishResult(t *testing.T) {
	tests := map[string]struct {
		broker *fakeBroker
		expErr string
	}{
		"published": {
			broker: &fakeBroker{},
		},
		"broker never ready": {
			broker: &fakeBroker{readyErr: errors.New("waiting for nats server: context canceled")},
			expErr: "waiting for nats server",
		},
		"publish fails": {
			broker: &fakeBroker{pubErr: errors.New("connection closed")},
			expErr: "connection closed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := &ResultPublisher{server: tt.broker}
			err := p.PublishResult(context.Background(), sampleResult())

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("publish: %v", err)
			}

			var ev CompleteEvent
			if err := json.Unmarshal(tt.broker.data, &ev); err != nil {
				t.Fatalf("decoding event: %v", err)
			}
			testutil.AssertEqual(t, "subject", tt.broker.subject, "rando.0b7e3a52-91c4-4f0e-8d21-6a5b4c3d2e1f.complete")
			testutil.AssertEqual(t, "event", ev, CompleteEvent{
				ID:      sampleID.String(),
				Seed:    7,
				Players: []string{"Alice", "Bob"},
				Spheres: 3,
			})
		})
	}
}

func TestNatsServer_RoundTrip(t *testing.T) {
	srv, err := NewNatsServer(WithPort(-1))
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	waitCtx, waitCancel := context.WithTimeout(ctx, 10*time.Second)
	defer waitCancel()
	if err := srv.WaitReady(waitCtx); err != nil {
		t.Fatalf("waiting: %v", err)
	}

	got := make(chan []byte, 1)
	unsubscribe, err := srv.Subscribe(SubjectPrefix+".*.complete", func(data []byte) { got <- data })
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer unsubscribe()

	if err := NewResultPublisher(srv).PublishResult(ctx, sampleResult()); err != nil {
		t.Fatalf("publishing: %v", err)
	}

	select {
	case data := <-got:
		var ev CompleteEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decoding: %v", err)
		}
		testutil.AssertEqual(t, "id", ev.ID, sampleID.String())
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}
}

func TestNatsServer_NotStarted(t *testing.T) {
	srv, err := NewNatsServer(WithPort(-1))
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	testutil.AssertErrorContains(t, srv.Publish("x", nil), "not started")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	testutil.AssertErrorContains(t, srv.WaitReady(ctx), "context canceled")
}
