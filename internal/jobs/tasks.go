package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeRecomputeCaseFunds is the task type for refreshing a case's
	// funds held/distributed snapshot from its transactions.
	TaskTypeRecomputeCaseFunds = "cashiering:recompute_funds"
)

// RecomputeCaseFundsPayload identifies the case whose funds need refreshing.
type RecomputeCaseFundsPayload struct {
	CaseID string `json:"caseID"`
}

// NewRecomputeCaseFundsTask constructs an Asynq task.
func NewRecomputeCaseFundsTask(payload RecomputeCaseFundsPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeRecomputeCaseFunds, data), nil
}

// NewRecomputeCaseFundsHandler returns the handler processing
// TaskTypeRecomputeCaseFunds tasks through the cashiering service.
func NewRecomputeCaseFundsHandler(recomputer portssvc.CaseFundsRecomputeSvc, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RecomputeCaseFundsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if payload.CaseID == "" {
			return asynq.SkipRetry
		}
		if err := recomputer.RecomputeCaseFunds(ctx, payload.CaseID); err != nil {
			logger.Warn("Funds recompute task failed",
				slog.String("case_id", payload.CaseID),
				slog.String("error", err.Error()))
			return err
		}
		return nil
	}
}
