package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/config"
	"github.com/localnerve/catalogdb/internal/handlers"
	"github.com/localnerve/catalogdb/internal/metrics"
	"github.com/localnerve/catalogdb/internal/middleware"
	"github.com/localnerve/catalogdb/internal/services"
)

// crud is satisfied by every handler serving a flat resource
type crud interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func mount(r fiber.Router, path string, h crud, gate ...fiber.Handler) {
	g := r.Group(path, gate...)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

type nested struct {
	list, get, create, update, delete fiber.Handler
}

func mountNested(r fiber.Router, parent, child string, n nested, gate ...fiber.Handler) {
	g := r.Group("/"+parent+"/:parentId/"+child, gate...)
	g.Get("/", n.list)
	g.Get("/:id", n.get)
	g.Post("/", n.create)
	g.Put("/:id", n.update)
	g.Delete("/:id", n.delete)
}

func registerRoutes(api fiber.Router, cfg *config.Config, deps Deps, m *metrics.Metrics) {
	db := deps.DB
	lists := handlers.NewListCache(deps.Cache, m)
	gate := middleware.SharedSecret(cfg.AuthHeader, cfg.AuthSecret, m)

	cars := &handlers.CarHandler{Service: services.NewCarService(db), Lists: lists}
	newsFeed := &handlers.NewsFeedHandler{Service: services.NewNewsFeedService(db), Lists: lists}
	songs := &handlers.SongHandler{Service: services.NewSongService(db), Lists: lists}
	singers := &handlers.SingerHandler{Service: services.NewSingerService(db), Lists: lists}
	users := &handlers.UserHandler{Service: services.NewUserService(db, cfg.BcryptCost), Lists: lists}
	projects := &handlers.ProjectHandler{Service: services.NewProjectService(db), Lists: lists}
	tickets := &handlers.TicketHandler{Service: services.NewTicketService(db)}
	companies := &handlers.CompanyHandler{Service: services.NewCompanyService(db)}
	libraries := &handlers.LibraryHandler{Service: services.NewLibraryService(db)}
	documents := &handlers.DocumentHandler{Service: services.NewDocumentService(db)}
	reports := &handlers.ReportHandler{Service: services.NewReportService(db)}
	movies := &handlers.MovieHandler{Service: services.NewMovieService(db)}

	// Batch routes come first so "batch" is never parsed as an id
	api.Post("/cars/batch", cars.CreateBatch)
	api.Post("/newsfeed/batch", newsFeed.CreateBatch)
	api.Post("/songs/batch", songs.CreateBatch)
	api.Post("/users/batch", gate, users.CreateBatch)

	mount(api, "/cars", cars)
	mount(api, "/newsfeed", newsFeed)
	mount(api, "/songs", songs)
	mount(api, "/singers", singers)
	mount(api, "/users", users, gate)
	mount(api, "/projects", projects)
	mount(api, "/tickets", tickets)
	mount(api, "/companies", companies)
	mount(api, "/libraries", libraries)
	mount(api, "/documents", documents)
	mount(api, "/reports", reports)
	mount(api, "/movies", movies)

	mountNested(api, "companies", "products", nested{
		companies.ListProducts, companies.GetProduct, companies.CreateProduct, companies.UpdateProduct, companies.DeleteProduct,
	})
	mountNested(api, "libraries", "books", nested{
		libraries.ListBooks, libraries.GetBook, libraries.CreateBook, libraries.UpdateBook, libraries.DeleteBook,
	})
	mountNested(api, "libraries", "rooms", nested{
		libraries.ListRooms, libraries.GetRoom, libraries.CreateRoom, libraries.UpdateRoom, libraries.DeleteRoom,
	})
	mountNested(api, "documents", "reports", nested{
		documents.ListReports, documents.GetReport, documents.CreateReport, documents.UpdateReport, documents.DeleteReport,
	})
	mountNested(api, "projects", "users", nested{
		users.ListInProject, users.GetInProject, users.CreateInProject, users.UpdateInProject, users.DeleteInProject,
	}, gate)
}
