package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/cache"
	"github.com/localnerve/catalogdb/internal/handlers"
	"github.com/localnerve/catalogdb/internal/metrics"
	"github.com/localnerve/catalogdb/internal/middleware"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
	"github.com/localnerve/catalogdb/internal/testutil"
	"github.com/localnerve/catalogdb/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	app     *fiber.App
	db      *gorm.DB
	store   *cache.Memory
	metrics *metrics.Metrics
}

// newTestApp wires the handlers onto a fresh database and memory cache
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.OpenDB(t)
	store := cache.NewMemory(cache.Options{})
	m := metrics.New(prometheus.NewRegistry())
	lists := handlers.NewListCache(store, m)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(middleware.Language("en"))

	cars := &handlers.CarHandler{Service: services.NewCarService(db), Lists: lists}
	app.Post("/api/cars/batch", cars.CreateBatch)
	app.Get("/api/cars", cars.List)
	app.Get("/api/cars/:id", cars.Get)
	app.Post("/api/cars", cars.Create)
	app.Put("/api/cars/:id", cars.Update)
	app.Delete("/api/cars/:id", cars.Delete)

	users := &handlers.UserHandler{Service: services.NewUserService(db, bcrypt.MinCost), Lists: lists}
	projects := &handlers.ProjectHandler{Service: services.NewProjectService(db), Lists: lists}
	app.Get("/api/users", users.List)
	app.Post("/api/users", users.Create)
	app.Get("/api/users/:id", users.Get)
	app.Post("/api/projects", projects.Create)
	app.Delete("/api/projects/:id", projects.Delete)
	app.Get("/api/projects/:parentId/users", users.ListInProject)
	app.Post("/api/projects/:parentId/users", users.CreateInProject)

	companies := &handlers.CompanyHandler{Service: services.NewCompanyService(db)}
	app.Post("/api/companies", companies.Create)
	app.Delete("/api/companies/:id", companies.Delete)
	app.Get("/api/companies/:parentId/products", companies.ListProducts)
	app.Post("/api/companies/:parentId/products", companies.CreateProduct)
	app.Get("/api/companies/:parentId/products/:id", companies.GetProduct)
	app.Put("/api/companies/:parentId/products/:id", companies.UpdateProduct)

	documents := &handlers.DocumentHandler{Service: services.NewDocumentService(db)}
	app.Post("/api/documents", documents.Create)
	app.Get("/api/documents/:parentId/reports", documents.ListReports)
	app.Post("/api/documents/:parentId/reports", documents.CreateReport)

	songs := &handlers.SongHandler{Service: services.NewSongService(db), Lists: lists}
	app.Get("/api/songs", songs.List)
	app.Post("/api/songs", songs.Create)

	return &testApp{app: app, db: db, store: store, metrics: m}
}

func (ta *testApp) do(t *testing.T, method, url string, body interface{}, headers ...string) *http.Response {
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

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) cars(t *testing.T, url string) []models.Car {
	t.Helper()
	resp := ta.do(t, http.MethodGet, url, nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var cars []models.Car
	testutil.ParseJSON(t, resp, &cars)
	return cars
}

func seedCars(t *testing.T, ta *testApp) []models.Car {
	t.Helper()
	resp := ta.do(t, http.MethodPost, "/api/cars/batch", []models.Car{
		{Make: "Audi", Model: "A6", Year: 2019},
		{Make: "BMW", Model: "5", Year: 2020},
		{Make: "Toyota", Model: "Camry", Year: 2019},
		{Make: "Toyota", Model: "Supra", Year: 2018},
	})
	testutil.AssertStatus(t, resp, http.StatusOK)

	var created []models.Car
	testutil.ParseJSON(t, resp, &created)
	require.Len(t, created, 4)
	return created
}

func TestCarsFilterThenDelete(t *testing.T) {
	ta := newTestApp(t)
	created := seedCars(t, ta)
	assert.Equal(t, uint(1), created[0].ID)

	byYear := ta.cars(t, "/api/cars?years=2019&years=2018")
	assert.Len(t, byYear, 3)

	resp := ta.do(t, http.MethodDelete, "/api/cars/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNoContent)
	testutil.AssertNoContent(t, resp)

	remaining := ta.cars(t, "/api/cars")
	require.Len(t, remaining, 3)
	for _, car := range remaining {
		assert.NotEqual(t, uint(1), car.ID)
	}
}

func TestCarsFilterForms(t *testing.T) {
	ta := newTestApp(t)
	seedCars(t, ta)

	repeated := ta.cars(t, "/api/cars?years=2019&years=2018")
	commas := ta.cars(t, "/api/cars?years=2019,2018")
	assert.Equal(t, repeated, commas)

	toyotas := ta.cars(t, "/api/cars?makes=Toyota")
	assert.Len(t, toyotas, 2)

	combined := ta.cars(t, "/api/cars?makes=Toyota&years=2018")
	require.Len(t, combined, 1)
	assert.Equal(t, "Supra", combined[0].Model)

	none := ta.cars(t, "/api/cars?models=Corolla")
	assert.Empty(t, none)
}

func TestCarsInvalidFilter(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodGet, "/api/cars?years=recent", nil)
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	var body utils.ErrorResponseStruct
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "data.validation.filter", body.Type)
	assert.False(t, body.Ok)
}

func TestListCacheKeyedByFilter(t *testing.T) {
	ta := newTestApp(t)
	seedCars(t, ta)

	all := ta.cars(t, "/api/cars")
	require.Len(t, all, 4)
	assert.Equal(t, 1, ta.store.Len())

	// A cached unfiltered list must not answer a filtered request
	bmw := ta.cars(t, "/api/cars?makes=BMW")
	require.Len(t, bmw, 1)
	assert.Equal(t, 2, ta.store.Len())

	// Served from cache
	again := ta.cars(t, "/api/cars?makes=BMW")
	assert.Equal(t, bmw, again)

	resp := ta.do(t, http.MethodPost, "/api/cars", models.Car{Make: "BMW", Model: "3", Year: 2021})
	testutil.AssertStatus(t, resp, http.StatusOK)
	assert.Zero(t, ta.store.Len(), "write must evict the cars scope")

	assert.Len(t, ta.cars(t, "/api/cars?makes=BMW"), 2)
}

func TestListCacheSkipsStoreAfterConcurrentWrite(t *testing.T) {
	ta := newTestApp(t)
	seedCars(t, ta)

	var armed atomic.Bool
	var writeStatus int
	var writeErr error
	err := ta.db.Callback().Query().After("gorm:query").Register("test:write_during_list", func(tx *gorm.DB) {
		if tx.Statement.Table != "cars" || !armed.CompareAndSwap(true, false) {
			return
		}
		raw, _ := json.Marshal(models.Car{Make: "Honda", Model: "Civic", Year: 2021})
		req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(raw))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := ta.app.Test(req, -1)
		writeErr = err
		if resp != nil {
			writeStatus = resp.StatusCode
		}
	})
	require.NoError(t, err)

	armed.Store(true)
	assert.Len(t, ta.cars(t, "/api/cars"), 4)
	require.NoError(t, writeErr)
	require.Equal(t, http.StatusOK, writeStatus)
	assert.Equal(t, 0, ta.store.Len())

	assert.Len(t, ta.cars(t, "/api/cars"), 5)
	assert.Equal(t, 1, ta.store.Len())
	assert.Len(t, ta.cars(t, "/api/cars"), 5)
}

func TestListCacheMetrics(t *testing.T) {
	ta := newTestApp(t)
	seedCars(t, ta)

	ta.cars(t, "/api/cars")
	ta.cars(t, "/api/cars")

	assert.Equal(t, 1.0, promtest.ToFloat64(ta.metrics.CacheLookups.WithLabelValues(handlers.ScopeCars, "hit")))
	assert.Equal(t, 1.0, promtest.ToFloat64(ta.metrics.CacheLookups.WithLabelValues(handlers.ScopeCars, "miss")))
	assert.Equal(t, 1.0, promtest.ToFloat64(ta.metrics.CacheInvalidations.WithLabelValues(handlers.ScopeCars)))
}

func TestCarGetAndUpdate(t *testing.T) {
	ta := newTestApp(t)
	seedCars(t, ta)

	t.Run("missing", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/cars/99", nil)
		testutil.AssertStatus(t, resp, http.StatusNotFound)

		var body utils.ErrorResponseStruct
		testutil.ParseJSON(t, resp, &body)
		assert.Equal(t, "Car not found", body.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp := ta.do(t, http.MethodGet, "/api/cars/first", nil)
		testutil.AssertStatus(t, resp, http.StatusBadRequest)
	})

	t.Run("id mismatch", func(t *testing.T) {
		resp := ta.do(t, http.MethodPut, "/api/cars/2", models.Car{ID: 3, Make: "BMW"})
		testutil.AssertStatus(t, resp, http.StatusBadRequest)
	})

	t.Run("update missing", func(t *testing.T) {
		resp := ta.do(t, http.MethodPut, "/api/cars/99", models.Car{Make: "Kia"})
		testutil.AssertStatus(t, resp, http.StatusNotFound)
	})

	t.Run("update", func(t *testing.T) {
		resp := ta.do(t, http.MethodPut, "/api/cars/2", models.Car{ID: 2, Make: "BMW", Model: "7", Price: 90000, Year: 2022})
		testutil.AssertStatus(t, resp, http.StatusNoContent)

		resp = ta.do(t, http.MethodGet, "/api/cars/2", nil)
		testutil.AssertStatus(t, resp, http.StatusOK)
		var car models.Car
		testutil.ParseJSON(t, resp, &car)
		assert.Equal(t, "7", car.Model)
		assert.Equal(t, uint(2022), car.Year)
	})

	t.Run("delete missing", func(t *testing.T) {
		resp := ta.do(t, http.MethodDelete, "/api/cars/99", nil)
		testutil.AssertStatus(t, resp, http.StatusNotFound)
	})
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewBufferString("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	resp = ta.do(t, http.MethodPost, "/api/cars", models.Car{Make: "Ford", Year: 12345})
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	resp = ta.do(t, http.MethodPost, "/api/cars/batch", []models.Car{})
	testutil.AssertStatus(t, resp, http.StatusBadRequest)
}

func TestBatchAcceptsSingleObject(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/cars/batch", models.Car{Make: "Kia", Model: "Rio", Year: 2017})
	testutil.AssertStatus(t, resp, http.StatusOK)

	var created []models.Car
	testutil.ParseJSON(t, resp, &created)
	require.Len(t, created, 1)
	assert.NotZero(t, created[0].ID)
}

func TestUsersHidePasswords(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "analytical",
		"age":       36,
	})
	testutil.AssertStatus(t, resp, http.StatusOK)

	var created map[string]interface{}
	testutil.ParseJSON(t, resp, &created)
	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "passwordHash")

	resp = ta.do(t, http.MethodGet, "/api/users?lastNames=Lovelace", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var users []map[string]interface{}
	testutil.ParseJSON(t, resp, &users)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")
}

func TestUserPasswordByteLimit(t *testing.T) {
	ta := newTestApp(t)

	// 40 runes pass the length tag but are 80 bytes
	resp := ta.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"firstName": "Multi",
		"password":  strings.Repeat("é", 40),
	})
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	var body utils.ErrorResponseStruct
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "data.validation.input", body.Type)
}

func TestProjectUsers(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodGet, "/api/projects/1/users", nil)
	testutil.AssertStatus(t, resp, http.StatusNotFound)

	resp = ta.do(t, http.MethodPost, "/api/projects", models.Project{Name: "Apollo"})
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp = ta.do(t, http.MethodPost, "/api/projects/1/users", models.User{FirstName: "Margaret", LastName: "Hamilton"})
	testutil.AssertStatus(t, resp, http.StatusOK)
	var user models.User
	testutil.ParseJSON(t, resp, &user)
	require.NotNil(t, user.ProjectID)
	assert.Equal(t, uint(1), *user.ProjectID)

	resp = ta.do(t, http.MethodGet, "/api/users?projectIds=1", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var members []models.User
	testutil.ParseJSON(t, resp, &members)
	assert.Len(t, members, 1)

	// Deleting the project detaches its users and evicts cached user lists
	resp = ta.do(t, http.MethodDelete, "/api/projects/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNoContent)

	resp = ta.do(t, http.MethodGet, "/api/users?projectIds=1", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	testutil.ParseJSON(t, resp, &members)
	assert.Empty(t, members)
}

func TestCompanyProducts(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/companies/1/products", models.Product{Name: "Widget"})
	testutil.AssertStatus(t, resp, http.StatusNotFound)

	resp = ta.do(t, http.MethodPost, "/api/companies", models.Company{Name: "Contoso", Location: "Redmond"})
	testutil.AssertStatus(t, resp, http.StatusOK)

	resp = ta.do(t, http.MethodPost, "/api/companies/1/products", models.Product{Name: "Widget", Category: "Tools", CompanyID: 7})
	testutil.AssertStatus(t, resp, http.StatusOK)
	var product models.Product
	testutil.ParseJSON(t, resp, &product)
	assert.Equal(t, uint(1), product.CompanyID, "parent id comes from the path")

	resp = ta.do(t, http.MethodPut, "/api/companies/1/products/1", models.Product{Name: "Gadget", Category: "Tools"})
	testutil.AssertStatus(t, resp, http.StatusNoContent)

	resp = ta.do(t, http.MethodGet, "/api/companies/1/products/1", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	testutil.ParseJSON(t, resp, &product)
	assert.Equal(t, "Gadget", product.Name)

	resp = ta.do(t, http.MethodDelete, "/api/companies/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNoContent)

	resp = ta.do(t, http.MethodGet, "/api/companies/1/products", nil)
	testutil.AssertStatus(t, resp, http.StatusNotFound)
}

func TestReportsFollowAcceptLanguage(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/documents", models.Document{Name: "Quarterly"})
	testutil.AssertStatus(t, resp, http.StatusOK)
	resp = ta.do(t, http.MethodPost, "/api/documents/1/reports", models.Report{Name: "Q1"})
	testutil.AssertStatus(t, resp, http.StatusOK)

	tests := []struct {
		header string
		first  string
	}{
		{header: "", first: "Title"},
		{header: "ru-RU,ru;q=0.9", first: "Заголовок"},
		{header: "it", first: "Titolo"},
		{header: "fr-FR", first: ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			var headers []string
			if tt.header != "" {
				headers = []string{fiber.HeaderAcceptLanguage, tt.header}
			}
			resp := ta.do(t, http.MethodGet, "/api/documents/1/reports", nil, headers...)
			testutil.AssertStatus(t, resp, http.StatusOK)

			var reports []models.Report
			testutil.ParseJSON(t, resp, &reports)
			require.Len(t, reports, 1)
			require.Len(t, reports[0].Rows, 3)
			assert.Equal(t, tt.first, reports[0].Rows[0])
		})
	}
}

func TestSongsWithNewSinger(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.do(t, http.MethodPost, "/api/songs", map[string]interface{}{
		"name":   "Halo",
		"singer": map[string]interface{}{"name": "Beyonce"},
	})
	testutil.AssertStatus(t, resp, http.StatusOK)

	var song models.Song
	testutil.ParseJSON(t, resp, &song)
	require.NotNil(t, song.Singer)
	assert.Equal(t, "Beyonce", song.Singer.Name)
	assert.False(t, song.ReleaseDate.IsZero())

	resp = ta.do(t, http.MethodGet, "/api/songs?singers=Beyonce", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	var songs []models.Song
	testutil.ParseJSON(t, resp, &songs)
	require.Len(t, songs, 1)
	assert.Equal(t, "Halo", songs[0].Name)
}
