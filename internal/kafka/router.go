package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"petstore/internal/config"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

// Router consumes the pets topic and writes an audit log line per event.
type Router struct {
	router *message.Router
}

func NewRouter(
	ctx context.Context,
	cfg config.KafkaConfig,
	baseLogger logging.Logger,
) (*Router, error) {
	if !cfg.Enabled {
		return &Router{router: nil}, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	subCfg := kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}

	subscriber, err := kafka.NewSubscriber(subCfg, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	topic := petsTopic(cfg.TopicPrefix)
	router.AddHandler(
		"pet-audit-handler",
		topic,
		subscriber,
		"",
		nil,
		petAuditHandler(baseLogger.With("component", "pet_audit", "topic", topic)),
	)

	return &Router{router: router}, nil
}

// petAuditHandler logs every pet event. Undecodable messages are logged and
// acked so they do not block the partition.
func petAuditHandler(logger logging.Logger) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		var env Envelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			logger.Error("dropping undecodable message", "uuid", msg.UUID, "error", err)
			return nil, nil
		}

		switch env.Type {
		case PetCreatedType:
			var p petstore.Pet
			if err := json.Unmarshal(env.Payload, &p); err != nil {
				logger.Error("dropping malformed PetCreated", "uuid", msg.UUID, "error", err)
				return nil, nil
			}
			logger.Info("pet created",
				"pet_id", p.ID,
				"name", p.Name,
				"correlation_id", env.CorrelationID,
				"occurred_at", env.OccurredAt,
			)
		default:
			logger.Debug("ignoring event", "type", env.Type, "uuid", msg.UUID)
		}
		return nil, nil
	}
}

func (r *Router) Run(ctx context.Context) error {
	if r.router == nil {
		return nil // Kafka disabled
	}
	return r.router.Run(ctx)
}

func (r *Router) Close(ctx context.Context) error {
	if r.router == nil {
		return nil
	}
	return r.router.Close()
}
