package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/services"
)

// MovieHandler handles movie routes.
// Categories are translated into the request culture on read.
type MovieHandler struct {
	Service *services.MovieService
}

// List handles GET /api/movies
// @Summary List movies
// @Tags Movies
// @Produce json
// @Param Accept-Language header string false "Culture for category names"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listMovies", h.Service.List)
}

// Get handles GET /api/movies/:id
// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getMovie", h.Service.Get)
}

// Create handles POST /api/movies
// @Summary Create a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param body body models.Movie true "Movie"
// @Success 200 {object} models.Movie
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createMovie", h.Service.Create)
}

// Update handles PUT /api/movies/:id
// @Summary Update a movie
// @Description Copies title and category onto the stored movie.
// @Tags Movies
// @Accept json
// @Param id path int true "Movie ID"
// @Param body body models.Movie true "Movie"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateMovie", h.Service.Update)
}

// Delete handles DELETE /api/movies/:id
// @Summary Delete a movie
// @Tags Movies
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteMovie", h.Service.Delete)
}
