package driven

import "context"

// AccessList answers allow-list membership for chat identities.
type AccessList interface {
	// Contains returns true if the identity may use the bot.
	Contains(ctx context.Context, userID int64) bool
}
