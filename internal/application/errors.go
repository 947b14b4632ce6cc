package application

import (
	"context"
	"errors"

	"github.com/bnema/files-billing-cli/internal/domain"
)

var remoteCodeMessages = map[string]string{
	"unauthorized":       "Your session has expired, store a new API token",
	"card_declined":      "Your card was declined",
	"expired_card":       "Your card has expired",
	"incorrect_cvc":      "The card security code is incorrect",
	"incorrect_number":   "The card number is incorrect",
	"insufficient_funds": "Your card has insufficient funds",
	"processing_error":   "An error occurred while processing your card, try again",
	"user_rejected":      "The request was rejected in the wallet",
}

// FormatError turns any flow error into the single line shown to the user.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	var derr *domain.Error
	if !errors.As(err, &derr) {
		return err.Error()
	}

	switch derr.Kind {
	case domain.KindRemoteCall:
		if message, ok := remoteCodeMessages[derr.Code]; ok {
			return message
		}
		if derr.Message != "" {
			return derr.Message
		}
		return "The billing service could not complete the request"
	case domain.KindUserAbandoned:
		if derr.Message != "" {
			return derr.Message
		}
		return "cancelled"
	default:
		return derr.Error()
	}
}
