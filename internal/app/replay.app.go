package app

import (
	"context"

	"perfhistory/internal/domain"
	"perfhistory/internal/logger"
	"perfhistory/internal/service"
)

// TransactionEventBus decouples ledger writes from snapshot recomputation.
// The ledger publishes a changed event and returns immediately; replay
// happens eventually on a subscriber goroutine, never on the write path.
type TransactionEventBus struct {
	events chan domain.TransactionChangedEvent
}

func NewTransactionEventBus() *TransactionEventBus {
	return &TransactionEventBus{
		events: make(chan domain.TransactionChangedEvent, 128),
	}
}

func (b *TransactionEventBus) Publish(event domain.TransactionChangedEvent) {
	b.events <- event
}

// ReplayTriggerHandler subscribes to transaction-changed events and drives
// the replay service. Concurrent events for one portfolio coalesce inside
// ReplayFrom; events for different portfolios replay independently.
type ReplayTriggerHandler struct {
	ReplayService service.ReplayService
	Bus           *TransactionEventBus
}

func NewReplayTriggerHandler(replayService service.ReplayService, bus *TransactionEventBus) *ReplayTriggerHandler {
	return &ReplayTriggerHandler{
		ReplayService: replayService,
		Bus:           bus,
	}
}

// Start consumes events until ctx is cancelled. Errors are logged, not
// propagated: the next ledger write re-triggers replay from an
// equal-or-earlier date, so a failed pass gets another chance without a
// retry loop here.
func (h *ReplayTriggerHandler) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-h.Bus.events:
				go func(event domain.TransactionChangedEvent) {
					err := h.ReplayService.ReplayFrom(ctx, event.PortfolioID, event.EffectiveDate)
					if err != nil {
						logger.FromContext(ctx).Errorf(
							"replay for %s from %s failed: %v",
							event.PortfolioID, event.EffectiveDate.Format("2006-01-02"), err)
					}
				}(event)
			}
		}
	}()
}
