package service

import (
	"context"
	"errors"
	"testing"

	"perfhistory/internal/db/models/postgres/public/model"
	mock_repository "perfhistory/internal/repository/mocks"
	"perfhistory/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_RunFetchForDate(t *testing.T) {
	ctx := context.Background()
	forDate := util.NewDate(2025, 1, 10)

	t.Run("one symbol failing does not starve the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataService := &stubMarketDataService{
			errBySymbol: map[string]error{
				"QQQ": errors.New("connection reset"),
			},
		}
		ingestionRunRepository := mock_repository.NewMockIngestionRunRepository(ctrl)

		handler := ingestionServiceHandler{
			MarketDataService:      marketDataService,
			IngestionRunRepository: ingestionRunRepository,
			Symbols:                []string{"SPY", "QQQ", "VTI"},
		}

		ingestionRunRepository.EXPECT().
			Add(model.IngestionRun{
				ForDate:   forDate,
				Succeeded: 2,
				Failed:    1,
			}).
			Return(&model.IngestionRun{}, nil)

		summary, err := handler.RunFetchForDate(ctx, forDate)
		require.Error(t, err)
		require.NotNil(t, summary)
		require.Equal(t, 2, summary.Succeeded)
		require.Equal(t, 1, summary.Failed)
		require.Equal(t, 3, marketDataService.calls)
	})

	t.Run("clean run returns no error and records the audit row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataService := &stubMarketDataService{}
		ingestionRunRepository := mock_repository.NewMockIngestionRunRepository(ctrl)

		handler := ingestionServiceHandler{
			MarketDataService:      marketDataService,
			IngestionRunRepository: ingestionRunRepository,
			Symbols:                []string{"SPY", "AGG"},
		}

		ingestionRunRepository.EXPECT().
			Add(model.IngestionRun{
				ForDate:   forDate,
				Succeeded: 2,
				Failed:    0,
			}).
			Return(&model.IngestionRun{}, nil)

		summary, err := handler.RunFetchForDate(ctx, forDate)
		require.NoError(t, err)
		require.Equal(t, 2, summary.Succeeded)
		require.Equal(t, 0, summary.Failed)
	})

	t.Run("failures trigger an alert email when configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataService := &stubMarketDataService{
			errBySymbol: map[string]error{
				"SPY": errors.New("upstream outage"),
			},
		}
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)

		handler := ingestionServiceHandler{
			MarketDataService: marketDataService,
			EmailRepository:   emailRepository,
			Symbols:           []string{"SPY"},
			AlertEmail:        "oncall@example.com",
		}

		emailRepository.EXPECT().
			SendEmail("oncall@example.com", "Benchmark ingestion failures", gomock.Any()).
			Return(nil)

		summary, err := handler.RunFetchForDate(ctx, forDate)
		require.Error(t, err)
		require.Equal(t, 1, summary.Failed)
	})

	t.Run("no alert when every symbol succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataService := &stubMarketDataService{}
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)

		handler := ingestionServiceHandler{
			MarketDataService: marketDataService,
			EmailRepository:   emailRepository,
			Symbols:           []string{"SPY"},
			AlertEmail:        "oncall@example.com",
		}

		summary, err := handler.RunFetchForDate(ctx, forDate)
		require.NoError(t, err)
		require.Equal(t, 1, summary.Succeeded)
	})
}

func Test_NewIngestionService_defaultSymbols(t *testing.T) {
	svc := NewIngestionService(&stubMarketDataService{}, nil, nil, nil, "")
	handler, ok := svc.(ingestionServiceHandler)
	require.True(t, ok)
	require.Equal(t, DefaultBenchmarkSymbols, handler.Symbols)
}
