package api

import (
	"database/sql"
	"fmt"
	"time"

	"perfhistory/internal/logger"
	"perfhistory/internal/repository"
	"perfhistory/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                   *sql.DB
	SnapshotRepository   repository.SnapshotRepository
	BenchmarkDataService service.BenchmarkDataService
	ReplayService        service.ReplayService
	IngestionService     service.IngestionService
	GptRepository        repository.GptRepository
	JwtSecret            string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to perfhistory"})
	})
	router.POST("/performance", m.performance)
	router.GET("/performance/export", m.exportPerformance)
	router.POST("/comparison", m.comparison)
	router.POST("/commentary", m.commentary)

	admin := router.Group("/", m.adminAuthMiddleware())
	admin.POST("/backfill", m.backfill)
	admin.POST("/ingestBenchmark", m.ingestBenchmark)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	logger.FromContext(ctx.Request.Context()).Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
