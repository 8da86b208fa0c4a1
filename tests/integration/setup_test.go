package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradelog/internal/handlers"
	"tradelog/internal/logger"
	"tradelog/internal/middleware"
	"tradelog/internal/models"
	"tradelog/internal/review"
	"tradelog/internal/services"
	"tradelog/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// stubGenerator implements review.Generator for integration tests.
type stubGenerator struct {
	generateFn func(ctx context.Context, in review.Input) (string, error)
}

func (s *stubGenerator) Generate(ctx context.Context, in review.Input) (string, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, in)
	}
	return "stub review", nil
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Journal{},
		&models.SellRecord{},
		&models.AIReviewLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database and the given review generator.
func setupApp(t *testing.T, generator review.Generator) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	journalService := services.NewJournalService(db)
	reviewService := services.NewReviewService(db, generator)

	// Handlers
	journalHandler := handlers.NewJournalHandler(journalService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	journals := v1.Group("/journals")
	journals.GET("", journalHandler.ListJournals)
	journals.GET("/archived", journalHandler.ListArchivedJournals)
	journals.POST("", journalHandler.CreateJournal)
	journals.PUT("/:id", journalHandler.UpdateJournal)
	journals.DELETE("/:id", journalHandler.ArchiveJournal)
	journals.POST("/:id/unarchive", journalHandler.UnarchiveJournal)
	journals.POST("/:id/reviews", reviewHandler.AddReviewLog)
	journals.POST("/:id/reviews/generate", reviewHandler.GenerateReview)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// journalBody builds a valid journal payload for the given asset with the
// given sell-record fragments.
func journalBody(asset string, sellRecords ...string) string {
	return fmt.Sprintf(`{
		"date": "2024-01-15",
		"asset": %q,
		"amount": "10",
		"price": "150",
		"strategy": "swing",
		"reasons": "Strong earnings momentum",
		"risks": "Broad market pullback",
		"expected_return": "12%%",
		"exit_plan": "Sell half at +10%%",
		"market_conditions": "Risk-on",
		"emotional_state": "Calm",
		"sell_records": [%s]
	}`, asset, strings.Join(sellRecords, ","))
}

// createJournal creates a journal through the API and returns its id.
func (app *testApp) createJournal(t *testing.T, body string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/v1/journals", body)
	if rec.Code != 201 {
		t.Fatalf("create journal failed: %d %s", rec.Code, rec.Body.String())
	}
	journal := parseJSON(t, rec)["journal"].(map[string]interface{})
	return journal["id"].(float64)
}
