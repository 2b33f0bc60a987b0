package driving

import "context"

// AccessService gates every inbound interaction.
type AccessService interface {
	// Check returns domain.ErrAccessDenied unless the identity is allowed.
	Check(ctx context.Context, userID int64) error
}
