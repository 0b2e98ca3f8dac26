// Package tasks defines the background jobs the API hands to the worker.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBillSettle = "bill:settle"

// BillSettlePayload names the bill to mark as paid.
type BillSettlePayload struct {
	BillID string `json:"billId"`
}

// NewBillSettleTask builds a settlement job. The task id is derived from the
// bill so a bill is queued at most once at a time.
func NewBillSettleTask(payload BillSettlePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBillSettle, b)
	opts := []asynq.Option{
		asynq.TaskID("settle:" + payload.BillID),
		asynq.MaxRetry(10),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueuedSettler marks bills paid by queueing a settlement job, so failures
// are retried by the worker instead of being dropped.
type QueuedSettler struct {
	Queue Enqueuer
}

func (s *QueuedSettler) MarkPaid(ctx context.Context, billID string) error {
	task, opts, err := NewBillSettleTask(BillSettlePayload{BillID: billID})
	if err != nil {
		return err
	}
	_, err = s.Queue.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
