package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hostel/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout  = 5 * time.Second
	readRetryBase = 500 * time.Millisecond
	readRetryMax  = 30 * time.Second
)

// RetryDelay doubles from 500ms per consecutive read failure and caps at 30s.
func RetryDelay(attempt int) time.Duration {
	delay := readRetryBase
	for i := 1; i < attempt && delay < readRetryMax; i++ {
		delay *= 2
	}

	return min(delay, readRetryMax)
}

type Message struct {
	Key   string
	Value any
}

func (m Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Decode unmarshals the JSON payload of msg into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

// Handler processes one consumed message. A returned error is logged and the message skipped.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type kafkaClientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{}
	dialer := &kafkaGo.Dialer{
		Timeout:   writeTimeout,
		DualStack: true,
	}

	if cfg.Kafka.SASL.Username != "" {
		mechanism := plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}

		transport.SASL = mechanism
		dialer.SASLMechanism = mechanism
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: cfg,
		dialer: dialer,
		writer: writer,
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message")

			return err
		}

		msg.Topic = topic
		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent messages")

	return nil
}

// Consume reads topic until ctx is cancelled.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == "" {
		return errors.New("topic name cannot be empty")
	}

	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	failures := 0

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer stopped")

				return nil
			}

			failures++
			delay := RetryDelay(failures)
			log.Error().Err(err).Str("topic", topic).Dur("retry_in", delay).Msg("Failed to read message from Kafka")

			select {
			case <-ctx.Done():
				log.Info().Str("topic", topic).Msg("Consumer stopped")

				return nil
			case <-time.After(delay):
			}

			continue
		}

		failures = 0

		if err := handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Failed to handle Kafka message")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
