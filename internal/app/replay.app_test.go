package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"perfhistory/internal/domain"
	mock_service "perfhistory/internal/service/mocks"
	"perfhistory/internal/util"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func Test_ReplayTriggerHandler(t *testing.T) {
	t.Run("published events drive the replay service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		replayService := mock_service.NewMockReplayService(ctrl)

		portfolioID := uuid.New()
		effectiveDate := util.NewDate(2025, 1, 6)

		var wg sync.WaitGroup
		wg.Add(1)
		replayService.EXPECT().
			ReplayFrom(gomock.Any(), portfolioID, effectiveDate).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, date time.Time) error {
				wg.Done()
				return nil
			})

		bus := NewTransactionEventBus()
		handler := NewReplayTriggerHandler(replayService, bus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		handler.Start(ctx)

		bus.Publish(domain.TransactionChangedEvent{
			PortfolioID:   portfolioID,
			EffectiveDate: effectiveDate,
		})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("replay was never triggered")
		}
	})

	t.Run("a failing replay does not stop the consumer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		replayService := mock_service.NewMockReplayService(ctrl)

		first := uuid.New()
		second := uuid.New()
		effectiveDate := util.NewDate(2025, 1, 6)

		var wg sync.WaitGroup
		wg.Add(2)
		replayService.EXPECT().
			ReplayFrom(gomock.Any(), first, effectiveDate).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, date time.Time) error {
				wg.Done()
				return domain.ErrDataUnavailable
			})
		replayService.EXPECT().
			ReplayFrom(gomock.Any(), second, effectiveDate).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, date time.Time) error {
				wg.Done()
				return nil
			})

		bus := NewTransactionEventBus()
		handler := NewReplayTriggerHandler(replayService, bus)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		handler.Start(ctx)

		bus.Publish(domain.TransactionChangedEvent{PortfolioID: first, EffectiveDate: effectiveDate})
		bus.Publish(domain.TransactionChangedEvent{PortfolioID: second, EffectiveDate: effectiveDate})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("not every event reached the replay service")
		}
	})
}
