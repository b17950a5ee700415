package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"showtix/internal/shared/config"
	"showtix/pkg/logger"
)

// Producer publishes booking notifications to Kafka. A nil Producer is a
// valid no-op so the booking flow works with the pipeline disabled.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewProducer connects a synchronous, idempotent producer to the brokers
// named in the Kafka config.
func NewProducer(cfg *config.Config, log *logger.Logger) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	// Exactly-once per partition: idempotent writes require a single
	// in-flight request.
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Same user always lands on the same partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    cfg.Kafka.NotificationTopic,
		log:      log,
	}, nil
}

// Publish sends one notification to the notification topic.
func (p *Producer) Publish(ctx context.Context, notification *Notification) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(notification.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification-type"), Value: []byte(notification.Type)},
			{Key: []byte("producer"), Value: []byte("showtix-notifications")},
		},
		Timestamp: time.Now().UTC(),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	p.log.Debug("notification published",
		"notification_id", notification.ID,
		"type", string(notification.Type),
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Close shuts down the underlying Kafka producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
