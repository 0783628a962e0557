package usecases

import (
	"context"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
)

// TransactionRunner runs fn in one database transaction. Repositories
// called with the context passed to fn join it.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SpaceLocker serialises booking writes for one space. The returned
// function releases the lock.
type SpaceLocker interface {
	Acquire(ctx context.Context, spaceID uint) (func(), error)
}

// Metrics observes admission decisions and lifecycle transitions.
type Metrics interface {
	ObserveAdmission(rule reservation.Rule, admitted bool)
	ObserveTransition(action vo.HistoryAction)
}

type nopMetrics struct{}

func (nopMetrics) ObserveAdmission(reservation.Rule, bool) {}
func (nopMetrics) ObserveTransition(vo.HistoryAction)     {}
