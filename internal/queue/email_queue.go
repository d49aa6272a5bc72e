package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// EmailQueueKey is the Redis list the email worker consumes from.
	EmailQueueKey = "taskhive:queue:email"

	enqueueTimeout = 5 * time.Second
)

// EmailJob is the unit of work pushed onto the email queue.
type EmailJob struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	HTML     string `json:"html,omitempty"`
	Template string `json:"template,omitempty"`
}

// EmailProducer enqueues email jobs for asynchronous delivery.
type EmailProducer interface {
	Enqueue(ctx context.Context, job EmailJob) error
}

// RedisEmailQueue is the Redis-backed EmailProducer. Jobs are serialised as
// JSON and pushed onto a list; the worker pops them with a blocking read.
type RedisEmailQueue struct {
	client *redis.Client
}

func NewRedisEmailQueue(client *redis.Client) *RedisEmailQueue {
	return &RedisEmailQueue{client: client}
}

func (q *RedisEmailQueue) Enqueue(ctx context.Context, job EmailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	if err := q.client.LPush(ctx, EmailQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue email job: %w", err)
	}
	return nil
}

// Dequeue blocks until a job is available or the timeout elapses. A nil job
// with a nil error means the timeout fired with an empty queue.
func (q *RedisEmailQueue) Dequeue(ctx context.Context, timeout time.Duration) (*EmailJob, error) {
	res, err := q.client.BRPop(ctx, timeout, EmailQueueKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue email job: %w", err)
	}
	if len(res) < 2 {
		return nil, fmt.Errorf("dequeue email job: malformed BRPOP reply")
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("decode email job: %w", err)
	}
	return &job, nil
}
