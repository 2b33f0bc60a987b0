package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure AllowList implements the interface.
var _ driven.AccessList = (*AllowList)(nil)

// AllowList is a fixed set of permitted chat identities.
type AllowList struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

// NewAllowList creates an allow-list from the given identities.
func NewAllowList(ids ...int64) *AllowList {
	l := &AllowList{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
	return l
}

// Contains reports whether the identity is on the list.
func (l *AllowList) Contains(_ context.Context, userID int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[userID]
	return ok
}

// Len returns the number of permitted identities.
func (l *AllowList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}
