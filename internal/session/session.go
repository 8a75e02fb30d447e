// Package session holds the per-browser working state of the dashboard: the
// acting customer tier and the cart built under it. Sessions live for a
// single sitting and are never persisted.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/chayanon-dev/lineadmin/internal/cart"
	"github.com/chayanon-dev/lineadmin/pkg/enums"
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
)

// Session is the state for one operator sitting. The cart survives tier
// switches; only the prices shown change.
type Session struct {
	ID        string
	Tier      enums.CustomerTier
	Cart      *cart.Cart
	CreatedAt time.Time
}

// New starts a session acting as the given tier with an empty cart.
func New(tier enums.CustomerTier) (*Session, error) {
	if !tier.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown customer tier").WithDetails(map[string]string{
			"tier": tier.String(),
		})
	}
	return &Session{
		ID:        uuid.NewString(),
		Tier:      tier,
		Cart:      cart.New(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SwitchTier changes the acting tier without touching the cart contents.
func (s *Session) SwitchTier(tier enums.CustomerTier) error {
	if !tier.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown customer tier").WithDetails(map[string]string{
			"tier": tier.String(),
		})
	}
	s.Tier = tier
	return nil
}

// CycleTier advances to the next tier in the bronze to platinum cycle,
// mirroring the tier switcher button in the dashboard header.
func (s *Session) CycleTier() enums.CustomerTier {
	s.Tier = s.Tier.Next()
	return s.Tier
}
