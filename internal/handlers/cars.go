package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
)

// CarHandler handles car routes. Lists are served through the response cache.
type CarHandler struct {
	Service *services.CarService
	Lists   *ListCache
}

func parseCarFilter(c *fiber.Ctx) (services.CarFilter, error) {
	years, err := parseQueryUints(c, "years")
	if err != nil {
		return services.CarFilter{}, err
	}
	return services.CarFilter{
		Years:  years,
		Makes:  parseQueryValues(c, "makes"),
		Models: parseQueryValues(c, "models"),
	}, nil
}

// List handles GET /api/cars
// @Summary List cars
// @Description List cars, optionally filtered. Repeated keys and comma-separated values are both accepted.
// @Tags Cars
// @Produce json
// @Param years query []int false "Years" collectionFormat(multi)
// @Param makes query []string false "Makes" collectionFormat(multi)
// @Param models query []string false "Models" collectionFormat(multi)
// @Success 200 {array} models.Car
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	filter, err := parseCarFilter(c)
	if err != nil {
		return err
	}
	return serve(h.Lists, c, "listCars", ScopeCars, filter.CacheKey(), func(ctx context.Context) ([]models.Car, error) {
		return h.Service.List(ctx, filter)
	})
}

// Get handles GET /api/cars/:id
// @Summary Get a car
// @Tags Cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} models.Car
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cars/{id} [get]
func (h *CarHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getCar", h.Service.Get)
}

// Create handles POST /api/cars
// @Summary Create a car
// @Tags Cars
// @Accept json
// @Produce json
// @Param body body models.Car true "Car"
// @Success 200 {object} models.Car
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createCar", h.Service.Create, h.Lists.Invalidate(ScopeCars))
}

// CreateBatch handles POST /api/cars/batch
// @Summary Create several cars
// @Description Accepts a JSON array or a single object; all entries are stored in one transaction.
// @Tags Cars
// @Accept json
// @Produce json
// @Param body body []models.Car true "Cars"
// @Success 200 {array} models.Car
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /cars/batch [post]
func (h *CarHandler) CreateBatch(c *fiber.Ctx) error {
	return createBatch(c, "createCars", h.Service.CreateBatch, h.Lists.Invalidate(ScopeCars))
}

// Update handles PUT /api/cars/:id
// @Summary Update a car
// @Description Copies price, year, make and model onto the stored car.
// @Tags Cars
// @Accept json
// @Param id path int true "Car ID"
// @Param body body models.Car true "Car"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateCar", h.Service.Update, h.Lists.Invalidate(ScopeCars))
}

// Delete handles DELETE /api/cars/:id
// @Summary Delete a car
// @Tags Cars
// @Param id path int true "Car ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cars/{id} [delete]
func (h *CarHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteCar", h.Service.Delete, h.Lists.Invalidate(ScopeCars))
}
