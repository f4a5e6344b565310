package customers

import (
	"customers/pkg/domain"

	"github.com/riverqueue/river"
)

// PromotionNotificationArgs is the River job enqueued in the same transaction
// that persists a promotion. The recipient and tier are captured at promotion
// time so the worker does not read the customer again.
type PromotionNotificationArgs struct {
	CustomerID domain.CustomerID     `json:"customerId"`
	Email      string                `json:"email"`
	Status     domain.CustomerStatus `json:"status"`
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args PromotionNotificationArgs) Kind() string { return "PromotionNotificationJob" }

// InsertOpts makes the notification a single attempt: a failed send is reported
// and never retried.
func (args PromotionNotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
	}
}
