// Package worker runs the background job server.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"hotelier/services/tasks"
	"hotelier/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BillSettler applies a settlement to the bill store.
type BillSettler interface {
	MarkPaid(ctx context.Context, id string) error
}

// NewServer builds the job server. Call Start with NewMux and Shutdown on exit.
func NewServer(opt asynq.RedisClientOpt, logger *zap.Logger) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	})
}

func NewMux(settler BillSettler, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBillSettle, HandleBillSettle(settler, logger))
	return mux
}

// HandleBillSettle marks the task's bill as paid. A bill that no longer
// exists is logged and dropped; other failures are retried.
func HandleBillSettle(settler BillSettler, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BillSettlePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil || p.BillID == "" {
			logger.Error("Invalid settlement payload", zap.ByteString("payload", task.Payload()), zap.Error(err))
			return fmt.Errorf("invalid settlement payload: %w", asynq.SkipRetry)
		}

		err := settler.MarkPaid(ctx, p.BillID)
		switch {
		case err == nil:
			logger.Info("Bill settled", zap.String("billID", p.BillID))
			return nil
		case utils.IsKind(err, utils.KindNotFound):
			logger.Warn("Settled bill no longer exists", zap.String("billID", p.BillID))
			return nil
		default:
			logger.Error("Failed to settle bill", zap.String("billID", p.BillID), zap.Error(err))
			return err
		}
	}
}
