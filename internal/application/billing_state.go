package application

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BillingState holds the currently known subscription, invoices and default
// card. Every refresh replaces the affected parts wholesale and persists the
// resulting snapshot.
type BillingState struct {
	api    ports.BillingAPI
	repo   ports.BillingStateRepository
	clock  ports.Clock
	logger *logrus.Logger

	mu       sync.RWMutex
	snapshot domain.BillingSnapshot
}

func NewBillingState(api ports.BillingAPI, repo ports.BillingStateRepository, clock ports.Clock, logger *logrus.Logger) *BillingState {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = discardLogger()
	}

	return &BillingState{
		api:    api,
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Load replaces the in-memory snapshot with the persisted one.
func (s *BillingState) Load(ctx context.Context) error {
	snapshot, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load billing state: %w", err)
	}

	s.mu.Lock()
	s.snapshot = snapshot.Clone()
	s.mu.Unlock()

	return nil
}

func (s *BillingState) Snapshot() domain.BillingSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

// Refresh re-fetches subscription, invoices and default card concurrently.
// The snapshot is swapped only when all three succeed.
func (s *BillingState) Refresh(ctx context.Context) error {
	var (
		subscription *domain.Subscription
		invoices     []domain.Invoice
		card         *domain.DefaultCard
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fetched, err := s.api.GetSubscription(groupCtx)
		if err != nil {
			return fmt.Errorf("fetch subscription: %w", err)
		}
		subscription = fetched
		return nil
	})
	group.Go(func() error {
		fetched, err := s.api.ListInvoices(groupCtx)
		if err != nil {
			return fmt.Errorf("fetch invoices: %w", err)
		}
		invoices = fetched
		return nil
	})
	group.Go(func() error {
		fetched, err := s.api.GetDefaultCard(groupCtx)
		if err != nil {
			return fmt.Errorf("fetch default card: %w", err)
		}
		card = fetched
		return nil
	})

	if err := group.Wait(); err != nil {
		s.logger.WithError(err).Warn("billing refresh failed")
		return err
	}

	return s.commit(ctx, func(snapshot *domain.BillingSnapshot) {
		snapshot.Subscription = subscription
		snapshot.Invoices = invoices
		snapshot.DefaultCard = card
	})
}

func (s *BillingState) RefreshSubscription(ctx context.Context) error {
	subscription, err := s.api.GetSubscription(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("subscription refresh failed")
		return fmt.Errorf("fetch subscription: %w", err)
	}

	return s.commit(ctx, func(snapshot *domain.BillingSnapshot) {
		snapshot.Subscription = subscription
	})
}

func (s *BillingState) RefreshInvoices(ctx context.Context) error {
	invoices, err := s.api.ListInvoices(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("invoice refresh failed")
		return fmt.Errorf("fetch invoices: %w", err)
	}

	return s.commit(ctx, func(snapshot *domain.BillingSnapshot) {
		snapshot.Invoices = invoices
	})
}

func (s *BillingState) RefreshDefaultCard(ctx context.Context) error {
	card, err := s.api.GetDefaultCard(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("default card refresh failed")
		return fmt.Errorf("fetch default card: %w", err)
	}

	return s.commit(ctx, func(snapshot *domain.BillingSnapshot) {
		snapshot.DefaultCard = card
	})
}

// Reset drops everything known about the account, e.g. after the API token
// changed.
func (s *BillingState) Reset(ctx context.Context) error {
	return s.commit(ctx, func(snapshot *domain.BillingSnapshot) {
		*snapshot = domain.BillingSnapshot{}
	})
}

func (s *BillingState) commit(ctx context.Context, apply func(*domain.BillingSnapshot)) error {
	s.mu.Lock()
	next := s.snapshot.Clone()
	apply(&next)
	next.RefreshedAt = s.clock.Now().UTC()
	s.snapshot = next
	persisted := next.Clone()
	s.mu.Unlock()

	if err := s.repo.Save(ctx, persisted); err != nil {
		return fmt.Errorf("save billing state: %w", err)
	}

	return nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
