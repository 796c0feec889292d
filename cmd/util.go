package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"perfhistory/api"
	"perfhistory/internal/app"
	"perfhistory/internal/repository"
	"perfhistory/internal/service"
	"perfhistory/internal/util"
	"perfhistory/pkg/marketdata"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

type Dependencies struct {
	ApiHandler          *api.ApiHandler
	TransactionEventBus *app.TransactionEventBus
	ReplayTrigger       *app.ReplayTriggerHandler
	Secrets             *util.Secrets
}

func InitializeDependencies() (*Dependencies, error) {
	// missing .env is fine, secrets cover the non-local setups
	_ = godotenv.Load()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	snapshotRepository := repository.NewSnapshotRepository(dbConn)
	benchmarkPriceRepository := repository.NewBenchmarkPriceRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	ingestionRunRepository := repository.NewIngestionRunRepository(dbConn)

	var marketDataClient marketdata.Client
	if strings.EqualFold(secrets.MarketData, "alpaca") {
		marketDataClient = marketdata.NewAlpacaClient(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret)
	} else {
		marketDataClient = marketdata.NewYahooClient()
	}

	marketDataService := service.NewMarketDataService(marketDataClient, benchmarkPriceRepository)
	benchmarkDataService := service.NewBenchmarkDataService(benchmarkPriceRepository, marketDataService)
	replayService := service.NewReplayService(
		dbConn,
		snapshotRepository,
		transactionRepository,
		benchmarkDataService,
	)

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}
	ingestionService := service.NewIngestionService(
		marketDataService,
		ingestionRunRepository,
		emailRepository,
		secrets.BenchmarkAssets,
		secrets.SES.AlertEmail,
	)

	bus := app.NewTransactionEventBus()
	replayTrigger := app.NewReplayTriggerHandler(replayService, bus)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		SnapshotRepository:   snapshotRepository,
		BenchmarkDataService: benchmarkDataService,
		ReplayService:        replayService,
		IngestionService:     ingestionService,
		GptRepository:        gptRepository,
		JwtSecret:            secrets.Jwt,
	}

	return &Dependencies{
		ApiHandler:          apiHandler,
		TransactionEventBus: bus,
		ReplayTrigger:       replayTrigger,
		Secrets:             secrets,
	}, nil
}
