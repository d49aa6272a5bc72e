package workers

import (
	"context"
	"time"

	"taskhive_backend/internal/email"
	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/queue"
)

const (
	popTimeout   = 5 * time.Second
	retryBackoff = 2 * time.Second
)

// EmailWorker drains the Redis email queue and hands each job to the
// configured sender. Delivery failures are logged and the job is dropped;
// the queue is best-effort notification traffic, not a transactional
// outbox.
type EmailWorker struct {
	jobs   *queue.RedisEmailQueue
	sender email.Sender
}

func NewEmailWorker(jobs *queue.RedisEmailQueue, sender email.Sender) *EmailWorker {
	return &EmailWorker{jobs: jobs, sender: sender}
}

func (w *EmailWorker) Start(ctx context.Context) {
	go w.consume(ctx)
}

func (w *EmailWorker) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
		}

		job, err := w.jobs.Dequeue(ctx, popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("email worker stopped")
				return
			}
			logger.WorkerLog("email", "dequeue", err)
			time.Sleep(retryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		if err := w.sender.Send(job.To, job.Subject, job.Text, job.HTML); err != nil {
			logger.WorkerLog("email", "send", err)
			continue
		}
		logger.Debug("email delivered", "to", job.To, "subject", job.Subject)
	}
}
