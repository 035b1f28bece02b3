package kafka

import (
	"context"
	"fmt"

	apppet "petstore/internal/app/pet"
	"petstore/internal/config"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

const PetCreatedType = "PetCreated"

type petEvents struct {
	bus         Bus
	topicPrefix string
	logger      logging.Logger
}

func NewPetEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) apppet.Events {
	return &petEvents{
		bus:         bus,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger.With("component", "pet_events"),
	}
}

func petsTopic(prefix string) string {
	return prefix + "pets"
}

func (e *petEvents) PetCreated(ctx context.Context, p petstore.Pet) error {
	if err := e.bus.Publish(ctx, petsTopic(e.topicPrefix), PetCreatedType, p); err != nil {
		return fmt.Errorf("publish PetCreated: %w", err)
	}
	return nil
}
