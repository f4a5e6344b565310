package worker

import (
	"context"
	"customers/internal/customers"
	"customers/pkg/domain"
	"customers/pkg/emailgateway"
	"customers/pkg/logger"
	"customers/pkg/result"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

var errNotificationFailed = errors.New("promotion notification failed")

// PromotionNotificationWorker sends the promotion email for jobs enqueued by
// customers.Service.Promote. The job is only visible once the promotion is
// committed, so a send never happens for a rolled back promotion. A failed
// send is logged and the job cancelled; it is never retried.
type PromotionNotificationWorker struct {
	river.WorkerDefaults[customers.PromotionNotificationArgs]

	gateway emailgateway.Gateway
	timeout time.Duration
}

// NewPromotionNotificationWorker builds the worker. A zero timeout keeps
// River's default job timeout.
func NewPromotionNotificationWorker(gateway emailgateway.Gateway, timeout time.Duration) *PromotionNotificationWorker {
	return &PromotionNotificationWorker{
		gateway: gateway,
		timeout: timeout,
	}
}

func (w *PromotionNotificationWorker) Timeout(*river.Job[customers.PromotionNotificationArgs]) time.Duration {
	return w.timeout
}

func (w *PromotionNotificationWorker) Work(ctx context.Context,
	job *river.Job[customers.PromotionNotificationArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int64("customerId", int64(job.Args.CustomerID)),
		zap.String("status", string(job.Args.Status)))

	email := domain.CreateEmail(result.Some(job.Args.Email))
	if email.IsFailure() || !job.Args.Status.Valid() {
		logger.Error(ctx, "malformed promotion notification job", logger.Email("email", job.Args.Email))

		return river.JobCancel(fmt.Errorf("%w: malformed job", errNotificationFailed))
	}

	if res := w.gateway.SendPromotionNotification(ctx, email.Value(), job.Args.Status); res.IsFailure() {
		logger.Error(ctx, "could not send promotion notification",
			logger.Email("email", job.Args.Email),
			zap.String("reason", res.Error()))

		return river.JobCancel(fmt.Errorf("%w: %s", errNotificationFailed, res.Error()))
	}

	logger.Info(ctx, "promotion notification sent")

	return nil
}
