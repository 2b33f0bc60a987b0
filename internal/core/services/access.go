package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// Ensure AccessService implements the interface.
var _ driving.AccessService = (*AccessService)(nil)

// AccessService gates interactions against an injected allow-list.
type AccessService struct {
	list driven.AccessList
}

// NewAccessService creates a new access service.
// A nil list denies everyone.
func NewAccessService(list driven.AccessList) *AccessService {
	return &AccessService{list: list}
}

// Check returns domain.ErrAccessDenied unless the identity is allowed.
func (s *AccessService) Check(ctx context.Context, userID int64) error {
	if s.list == nil || !s.list.Contains(ctx, userID) {
		return fmt.Errorf("%w: user %d", domain.ErrAccessDenied, userID)
	}
	return nil
}
