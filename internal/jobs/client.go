package jobs

import (
	"context"

	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/hibiken/asynq"
)

// Client submits jobs to the queue. It satisfies the funds recompute queuer
// port so the transaction service can enqueue refreshes without knowing
// about Asynq.
type Client struct {
	client *asynq.Client
}

var _ portssvc.FundsRecomputeQueuer = (*Client)(nil)

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

// EnqueueRecompute enqueues a funds recompute task for the case.
func (c *Client) EnqueueRecompute(ctx context.Context, caseID string) error {
	task, err := NewRecomputeCaseFundsTask(RecomputeCaseFundsPayload{CaseID: caseID})
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
	return err
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
