// Package emailgateway defines the outbound notification contract used when a
// customer is promoted, plus the message every provider sends.
//
//go:generate mockgen -package mockemailgateway -source=interface.go -destination=mock/mockemailgateway.go
package emailgateway

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
)

const (
	// DefaultSender is used when no sender address is configured.
	DefaultSender = "noreply@northwind.com"
	// PromotionSubject is the subject of every promotion notification.
	PromotionSubject = "Congratulations!"
)

// Gateway delivers notifications to customers. Delivery problems are reported
// as a failed result; implementations never retry.
type Gateway interface {
	// SendPromotionNotification tells the owner of email that the customer now
	// holds status.
	SendPromotionNotification(ctx context.Context, email domain.Email, status domain.CustomerStatus) result.Result
}

// Message is a provider independent plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

var statusLabels = map[domain.CustomerStatus]string{
	domain.CustomerStatusRegular:   "Regular",
	domain.CustomerStatusPreferred: "Preferred",
	domain.CustomerStatusGold:      "Gold",
}

// PromotionMessage builds the notification for a promotion to status.
// An empty from falls back to DefaultSender.
func PromotionMessage(from string, email domain.Email, status domain.CustomerStatus) Message {
	if from == "" {
		from = DefaultSender
	}

	label, ok := statusLabels[status]
	if !ok {
		label = string(status)
	}

	return Message{
		From:    from,
		To:      email.String(),
		Subject: PromotionSubject,
		Body:    "You've been promoted to " + label,
	}
}
