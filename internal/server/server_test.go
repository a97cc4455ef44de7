package server_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/data"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/database"
	"github.com/localnerve/catalogdb/internal/middleware"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/server"
	"github.com/localnerve/catalogdb/internal/services"
	"github.com/localnerve/catalogdb/internal/testutil"
	"github.com/localnerve/catalogdb/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		DBType:         "sqlite",
		CacheType:      "memory",
		AuthHeader:     "passwordKey",
		AuthSecret:     secret,
		BcryptCost:     bcrypt.MinCost,
		DefaultCulture: "en",
		LogLevel:       "error",
	}
}

// newApp builds the full application over a seeded database
func newApp(t *testing.T, store cache.Cache) *fiber.App {
	t.Helper()

	db := testutil.OpenDB(t)
	require.NoError(t, database.Seed(db, data.Seed))

	return server.New(server.Deps{
		Config:   testConfig(),
		DB:       db,
		Cache:    store,
		Registry: prometheus.NewRegistry(),
	})
}

func request(t *testing.T, app *fiber.App, method, url string, body interface{}, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newApp(t, cache.NewMemory(cache.Options{}))

	resp := request(t, app, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var result services.HealthCheckResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Cache)
}

func TestHealthReportsClosedCache(t *testing.T) {
	store := cache.NewMemory(cache.Options{})
	app := newApp(t, store)
	require.NoError(t, store.Close())

	resp := request(t, app, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, resp, http.StatusServiceUnavailable)

	var result services.HealthCheckResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, "unreachable", result.Cache)
}

func TestSeededCars(t *testing.T) {
	app := newApp(t, cache.NewMemory(cache.Options{}))

	resp := request(t, app, http.MethodGet, "/api/cars?years=2019&years=2018", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var cars []models.Car
	testutil.ParseJSON(t, resp, &cars)
	assert.Len(t, cars, 3)

	resp = request(t, app, http.MethodDelete, "/api/cars/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNoContent)

	resp = request(t, app, http.MethodGet, "/api/cars", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	testutil.ParseJSON(t, resp, &cars)
	assert.Len(t, cars, 3)
}

func TestBatchRouteIsNotAnID(t *testing.T) {
	app := newApp(t, nil)

	resp := request(t, app, http.MethodPost, "/api/cars/batch", []models.Car{
		{Make: "Kia", Model: "Rio", Year: 2017},
		{Make: "Kia", Model: "Ceed", Year: 2021},
	})
	testutil.AssertStatus(t, resp, http.StatusOK)

	var cars []models.Car
	testutil.ParseJSON(t, resp, &cars)
	assert.Len(t, cars, 2)
}

func TestUsersRequireSharedSecret(t *testing.T) {
	app := newApp(t, cache.NewMemory(cache.Options{}))

	for _, url := range []string{"/api/users", "/api/projects/1/users"} {
		resp := request(t, app, http.MethodGet, url, nil)
		testutil.AssertStatus(t, resp, http.StatusForbidden)

		var body utils.ErrorResponseStruct
		testutil.ParseJSON(t, resp, &body)
		assert.Equal(t, "data.authorization", body.Type)
	}

	resp := request(t, app, http.MethodPost, "/api/users/batch", []models.User{{FirstName: "Grace"}})
	testutil.AssertStatus(t, resp, http.StatusForbidden)

	resp = request(t, app, http.MethodPost, "/api/users", models.User{FirstName: "Grace", LastName: "Hopper"}, "passwordKey", secret)
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp = request(t, app, http.MethodGet, "/api/users", nil, "passwordKey", secret)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var users []models.User
	testutil.ParseJSON(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Hopper", users[0].LastName)

	// Projects themselves are not gated
	resp = request(t, app, http.MethodGet, "/api/projects", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestLocalizedMovies(t *testing.T) {
	app := newApp(t, nil)

	tests := []struct {
		language string
		want     string
	}{
		{language: "", want: "Drama"},
		{language: "ru-RU", want: "Драма"},
		{language: "it", want: "Dramma"},
	}

	for _, tt := range tests {
		t.Run("lang="+tt.language, func(t *testing.T) {
			var headers []string
			if tt.language != "" {
				headers = []string{fiber.HeaderAcceptLanguage, tt.language}
			}
			resp := request(t, app, http.MethodGet, "/api/movies/1", nil, headers...)
			testutil.AssertStatus(t, resp, http.StatusOK)

			var movie models.Movie
			testutil.ParseJSON(t, resp, &movie)
			assert.Equal(t, "The Godfather", movie.Title)
			assert.Equal(t, tt.want, movie.Category)
		})
	}
}

func TestSeededNestedResources(t *testing.T) {
	app := newApp(t, nil)

	resp := request(t, app, http.MethodGet, "/api/companies/1/products", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var products []models.Product
	testutil.ParseJSON(t, resp, &products)
	assert.Len(t, products, 2)

	resp = request(t, app, http.MethodGet, "/api/libraries/1/books", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var books []models.Book
	testutil.ParseJSON(t, resp, &books)
	assert.Len(t, books, 1)

	resp = request(t, app, http.MethodGet, "/api/libraries/1/rooms", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp = request(t, app, http.MethodGet, "/api/documents/1/reports", nil, fiber.HeaderAcceptLanguage, "ru")
	testutil.AssertStatus(t, resp, http.StatusOK)
	var reports []models.Report
	testutil.ParseJSON(t, resp, &reports)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"Заголовок", "Сводка", "Итого"}, reports[0].Rows)

	resp = request(t, app, http.MethodGet, "/api/libraries/9/books", nil)
	testutil.AssertStatus(t, resp, http.StatusNotFound)
}

func TestRequestHeaders(t *testing.T) {
	app := newApp(t, nil)

	first := request(t, app, http.MethodGet, "/api/tickets", nil)
	testutil.AssertStatus(t, first, http.StatusOK)
	second := request(t, app, http.MethodGet, "/api/tickets", nil)
	testutil.AssertStatus(t, second, http.StatusOK)

	assert.Equal(t, "1", first.Header.Get(middleware.HeaderRequestCount))
	assert.Equal(t, "2", second.Header.Get(middleware.HeaderRequestCount))
	assert.NotEmpty(t, second.Header.Get(fiber.HeaderXRequestID))
}

func TestNotFoundRoute(t *testing.T) {
	app := newApp(t, nil)

	resp := request(t, app, http.MethodGet, "/api/spaceships", nil)
	testutil.AssertStatus(t, resp, http.StatusNotFound)

	var body utils.ErrorResponseStruct
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "[404] Resource Not Found", body.Message)
	assert.Equal(t, "/api/spaceships", body.URL)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(t, cache.NewMemory(cache.Options{}))

	resp := request(t, app, http.MethodGet, "/api/cars", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp = request(t, app, http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catalogdb_cache_lookups_total")
	assert.Contains(t, string(body), "http_requests_total")
}

func TestSwaggerDoc(t *testing.T) {
	app := newApp(t, nil)

	resp := request(t, app, http.MethodGet, "/swagger/doc.json", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var doc map[string]interface{}
	testutil.ParseJSON(t, resp, &doc)
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/cars")
	assert.Contains(t, paths, "/projects/{parentId}/users")
}
