package interfaces

import (
	"context"

	"pgw_comprovantes/internal/domain/entities"
)

// IMailer abstracts the SMTP relay.
//
// Send never returns a Go error: transport failures are categorized into
// the EmailOutcome tags so the caller can report them without aborting the
// invocation.
type IMailer interface {
	Send(ctx context.Context, msg entities.OutboundEmail) entities.EmailOutcome
}
