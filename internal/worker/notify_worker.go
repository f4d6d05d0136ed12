package worker

import (
	"HelpDesk/config"
	"HelpDesk/internal/mq"
	"HelpDesk/internal/task"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

type dlqMessage struct {
	OrderID  uint64    `json:"order_id"`
	Attempt  int       `json:"attempt"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// RunNotifyWorker consumes order notices from RabbitMQ and mails them.
func RunNotifyWorker(ctx context.Context) error {
	client, err := mq.Dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}

	prefetch := config.AppConfig.RabbitMQPrefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := client.Channel.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := client.Channel.Consume(
		mq.QueueNotices,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	concurrency := config.AppConfig.NotifyWorkerConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	burst := config.AppConfig.NotifyBurst
	if burst <= 0 {
		burst = 1
	}
	rateLimit := config.AppConfig.NotifyRate
	var limiter *rate.Limiter
	if rateLimit <= 0 {
		limiter = rate.NewLimiter(rate.Inf, burst)
	} else {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("notify worker: delivery channel closed")
			}
			sem <- struct{}{}
			go func(d amqp.Delivery) {
				defer func() { <-sem }()
				handleNotice(ctx, client, limiter, d)
			}(delivery)
		}
	}
}

func handleNotice(ctx context.Context, client *mq.Client, limiter *rate.Limiter, delivery amqp.Delivery) {
	var notice task.OrderNotice
	if err := json.Unmarshal(delivery.Body, &notice); err != nil {
		log.Printf("notify worker: invalid message: %v", err)
		_ = delivery.Ack(false)
		return
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			_ = delivery.Nack(false, true)
			return
		}
	}

	if err := task.SendOrderNotice(notice); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			_ = delivery.Nack(false, true)
			return
		}
		if err := scheduleRetry(ctx, client, notice, err); err != nil {
			log.Printf("notify worker: retry schedule failed: %v", err)
			_ = delivery.Nack(false, true)
			return
		}
	}

	_ = delivery.Ack(false)
}

func scheduleRetry(ctx context.Context, client *mq.Client, notice task.OrderNotice, procErr error) error {
	maxRetry := config.AppConfig.NotifyRetryMax
	if maxRetry < 0 {
		maxRetry = 0
	}
	nextAttempt := notice.Attempt + 1
	if maxRetry == 0 || nextAttempt > maxRetry {
		return publishDLQ(ctx, client, notice, procErr)
	}

	delay := pickRetryDelay(nextAttempt, config.AppConfig.NotifyRetryDelays)
	notice.Attempt = nextAttempt
	body, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	return client.PublishRetry(ctx, body, delay)
}

func publishDLQ(ctx context.Context, client *mq.Client, notice task.OrderNotice, procErr error) error {
	log.Printf("notify worker: order %d notice failed for good: %v", notice.OrderID, procErr)
	dlq := dlqMessage{
		OrderID:  notice.OrderID,
		Attempt:  notice.Attempt,
		Error:    procErr.Error(),
		FailedAt: time.Now(),
	}
	body, err := json.Marshal(dlq)
	if err != nil {
		return err
	}
	if err := client.PublishDLQ(ctx, body); err != nil {
		log.Printf("notify worker: dlq publish failed: %v", err)
	}
	return nil
}

func pickRetryDelay(attempt int, delays []time.Duration) time.Duration {
	if len(delays) == 0 {
		return 0
	}
	index := attempt - 1
	if index < 0 {
		index = 0
	}
	if index >= len(delays) {
		return delays[len(delays)-1]
	}
	return delays[index]
}
