package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"showtix/internal/shared/config"
	"showtix/pkg/logger"
)

// Consumer drains the notification topic and hands each message to a pool
// of delivery workers.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	workers int
	emailer EmailService
	log     *logger.Logger

	jobs   chan *Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

func NewConsumer(cfg *config.Config, emailer EmailService, log *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	workers := cfg.Kafka.ConsumerWorkers
	if workers <= 0 {
		workers = 2
	}

	return &Consumer{
		group:   group,
		topic:   cfg.Kafka.NotificationTopic,
		workers: workers,
		emailer: emailer,
		log:     log,
		jobs:    make(chan *Notification, workers*4),
	}, nil
}

// Start launches the worker pool and the consume loop. It returns
// immediately; delivery happens on background goroutines until Stop.
func (c *Consumer) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.runWorker(ctx, i)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		handler := &groupHandler{jobs: c.jobs, log: c.log}
		for {
			if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
				c.log.Error("consumer group session ended", "error", err.Error())
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case err, ok := <-c.group.Errors():
				if !ok {
					return
				}
				c.log.Error("consumer group error", "error", err.Error())
			case <-ctx.Done():
				return
			}
		}
	}()

	c.log.Info("notification consumer started", "topic", c.topic, "workers", c.workers)
}

// Stop cancels the consume loop and waits for in-flight deliveries.
func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.group.Close()
	c.wg.Wait()
	return err
}

func (c *Consumer) runWorker(ctx context.Context, id int) {
	defer c.wg.Done()
	for {
		select {
		case notification, ok := <-c.jobs:
			if !ok {
				return
			}
			c.deliver(ctx, notification)
		case <-ctx.Done():
			return
		}
	}
}

// deliver attempts the email send with exponential backoff between retries.
func (c *Consumer) deliver(ctx context.Context, notification *Notification) {
	backoff := 500 * time.Millisecond
	for {
		err := c.emailer.SendNotification(ctx, notification)
		if err == nil {
			notification.MarkSent()
			c.log.Info("notification delivered",
				"notification_id", notification.ID,
				"type", string(notification.Type),
				"email", notification.Email,
			)
			return
		}

		notification.MarkFailed(err.Error())
		if !notification.ShouldRetry() {
			c.log.Error("notification delivery abandoned",
				"notification_id", notification.ID,
				"retries", notification.RetryCount,
				"error", err.Error(),
			)
			return
		}

		wait := backoff * time.Duration(1<<(notification.RetryCount-1))
		c.log.Warn("notification delivery failed, retrying",
			"notification_id", notification.ID,
			"attempt", notification.RetryCount,
			"backoff", wait.String(),
		)
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return
		}
	}
}

// groupHandler implements sarama.ConsumerGroupHandler, feeding decoded
// messages into the worker pool.
type groupHandler struct {
	jobs chan<- *Notification
	log  *logger.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			var notification Notification
			if err := json.Unmarshal(message.Value, &notification); err != nil {
				// Poison message: log and skip, never block the partition.
				h.log.Error("unparseable notification message",
					"partition", message.Partition,
					"offset", message.Offset,
					"error", err.Error(),
				)
				session.MarkMessage(message, "")
				continue
			}

			select {
			case h.jobs <- &notification:
				session.MarkMessage(message, "")
			case <-session.Context().Done():
				return nil
			}
		case <-session.Context().Done():
			return nil
		}
	}
}
