package notification

import (
	"context"

	"salonbook/models"
)

// EmailSender sends outbound email. Implementations can be swapped without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}
