package ports

import "github.com/bnema/files-billing-cli/internal/domain"

type Notifier interface {
	Notify(notification domain.Notification)
}
