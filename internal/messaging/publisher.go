package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-rando/internal/generator"
)

// SubjectPrefix starts every subject the publisher sends on.
const SubjectPrefix = "rando"

// CompleteEvent is the compact hand-off message for a finished generation.
// Consumers fetch the full result from the archive by id.
type CompleteEvent struct {
	ID      string   `json:"id"`
	Seed    int64    `json:"seed"`
	Players []string `json:"players"`
	Spheres int      `json:"spheres"`
}

type broker interface {
	WaitReady(ctx context.Context) error
	Publish(subject string, data []byte) error
}

// ResultPublisher announces completed generations over NATS.
type ResultPublisher struct {
	server broker
}

func NewResultPublisher(server *NatsServer) *ResultPublisher {
	return &ResultPublisher{server: server}
}

// CompleteSubject is the subject a result with the given id is announced on.
func CompleteSubject(id string) string {
	return fmt.Sprintf("%s.%s.complete", SubjectPrefix, id)
}

// PublishResult satisfies generator.Publisher.
func (p *ResultPublisher) PublishResult(ctx context.Context, res *generator.Result) error {
	if err := p.server.WaitReady(ctx); err != nil {
		return err
	}

	ev := CompleteEvent{
		ID:      res.ID.String(),
		Seed:    res.Seed,
		Spheres: len(res.Spheres),
	}
	for _, w := range res.Worlds {
		ev.Players = append(ev.Players, w.Player)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	if err := p.server.Publish(CompleteSubject(ev.ID), data); err != nil {
		return fmt.Errorf("publishing %s: %w", ev.ID, err)
	}
	return nil
}
