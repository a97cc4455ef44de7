package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
)

// SongHandler handles song routes. Lists are served through the response cache.
type SongHandler struct {
	Service *services.SongService
	Lists   *ListCache
}

// List handles GET /api/songs
// @Summary List songs
// @Tags Songs
// @Produce json
// @Param singers query []string false "Singer names" collectionFormat(multi)
// @Param names query []string false "Song names" collectionFormat(multi)
// @Success 200 {array} models.Song
// @Router /songs [get]
func (h *SongHandler) List(c *fiber.Ctx) error {
	filter := services.SongFilter{
		Singers: parseQueryValues(c, "singers"),
		Names:   parseQueryValues(c, "names"),
	}
	return serve(h.Lists, c, "listSongs", ScopeSongs, filter.CacheKey(), func(ctx context.Context) ([]models.Song, error) {
		return h.Service.List(ctx, filter)
	})
}

// Get handles GET /api/songs/:id
// @Summary Get a song
// @Tags Songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} models.Song
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id} [get]
func (h *SongHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getSong", h.Service.Get)
}

// Create handles POST /api/songs
// @Summary Create a song
// @Description releaseDate is set from the server clock. A singer object without an id is created.
// @Tags Songs
// @Accept json
// @Produce json
// @Param body body models.Song true "Song"
// @Success 200 {object} models.Song
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs [post]
func (h *SongHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createSong", h.Service.Create, h.Lists.Invalidate(ScopeSongs))
}

// CreateBatch handles POST /api/songs/batch
// @Summary Create several songs
// @Tags Songs
// @Accept json
// @Produce json
// @Param body body []models.Song true "Songs"
// @Success 200 {array} models.Song
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /songs/batch [post]
func (h *SongHandler) CreateBatch(c *fiber.Ctx) error {
	return createBatch(c, "createSongs", h.Service.CreateBatch, h.Lists.Invalidate(ScopeSongs))
}

// Update handles PUT /api/songs/:id
// @Summary Update a song
// @Description Copies name and singer onto the stored song.
// @Tags Songs
// @Accept json
// @Param id path int true "Song ID"
// @Param body body models.Song true "Song"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id} [put]
func (h *SongHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateSong", h.Service.Update, h.Lists.Invalidate(ScopeSongs))
}

// Delete handles DELETE /api/songs/:id
// @Summary Delete a song
// @Tags Songs
// @Param id path int true "Song ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /songs/{id} [delete]
func (h *SongHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteSong", h.Service.Delete, h.Lists.Invalidate(ScopeSongs))
}

// SingerHandler handles singer routes.
// Singer writes also evict cached song lists, which embed singers.
type SingerHandler struct {
	Service *services.SingerService
	Lists   *ListCache
}

// List handles GET /api/singers
// @Summary List singers
// @Tags Singers
// @Produce json
// @Success 200 {array} models.Singer
// @Router /singers [get]
func (h *SingerHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listSingers", h.Service.List)
}

// Get handles GET /api/singers/:id
// @Summary Get a singer
// @Tags Singers
// @Produce json
// @Param id path int true "Singer ID"
// @Success 200 {object} models.Singer
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /singers/{id} [get]
func (h *SingerHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getSinger", h.Service.Get)
}

// Create handles POST /api/singers
// @Summary Create a singer
// @Tags Singers
// @Accept json
// @Produce json
// @Param body body models.Singer true "Singer"
// @Success 200 {object} models.Singer
// @Router /singers [post]
func (h *SingerHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createSinger", h.Service.Create)
}

// Update handles PUT /api/singers/:id
// @Summary Update a singer
// @Tags Singers
// @Accept json
// @Param id path int true "Singer ID"
// @Param body body models.Singer true "Singer"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /singers/{id} [put]
func (h *SingerHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateSinger", h.Service.Update, h.Lists.Invalidate(ScopeSongs))
}

// Delete handles DELETE /api/singers/:id
// @Summary Delete a singer
// @Description Songs of the singer are kept with no singer.
// @Tags Singers
// @Param id path int true "Singer ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /singers/{id} [delete]
func (h *SingerHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteSinger", h.Service.Delete, h.Lists.Invalidate(ScopeSongs))
}
