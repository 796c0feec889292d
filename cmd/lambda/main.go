package main

import (
	"context"
	"log"
	"os"

	"perfhistory/cmd"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	_ "github.com/lib/pq"
)

type lambdaHandler struct {
	deps *cmd.Dependencies
}

func (m lambdaHandler) ApiHandler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	engine := m.deps.ApiHandler.InitializeRouterEngine()
	ginLambda := ginadapter.New(engine)
	return ginLambda.ProxyWithContext(ctx, req)
}

// ScheduledHandler runs the daily benchmark fetch off a CloudWatch cron.
// Per-symbol failures are tallied inside the service; the lambda only
// errors when the run as a whole could not complete.
func (m lambdaHandler) ScheduledHandler(ctx context.Context, event events.CloudWatchEvent) error {
	summary, err := m.deps.ApiHandler.IngestionService.RunDailyFetch(ctx)
	if err != nil {
		return err
	}
	log.Printf("benchmark ingestion for %s: %d succeeded, %d failed",
		summary.ForDate.Format("2006-01-02"), summary.Succeeded, summary.Failed)
	return nil
}

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps.ApiHandler)

	handler := lambdaHandler{deps: deps}

	if os.Getenv("LAMBDA_MODE") == "api" {
		deps.ReplayTrigger.Start(context.Background())
		lambda.Start(handler.ApiHandler)
		return
	}
	lambda.Start(handler.ScheduledHandler)
}
