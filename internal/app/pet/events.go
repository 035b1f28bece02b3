package pet

import (
	"context"

	"petstore/internal/petstore"
)

type Events interface {
	PetCreated(ctx context.Context, p petstore.Pet) error
}

// NoopEvents is used when Kafka is disabled and in tests.
type NoopEvents struct{}

func (NoopEvents) PetCreated(ctx context.Context, p petstore.Pet) error { return nil }
