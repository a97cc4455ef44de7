package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
)

// NewsFeedHandler handles news feed routes. Lists are served through the response cache.
type NewsFeedHandler struct {
	Service *services.NewsFeedService
	Lists   *ListCache
}

// List handles GET /api/newsfeed
// @Summary List news feed items
// @Tags NewsFeed
// @Produce json
// @Param body query []string false "Exact bodies" collectionFormat(multi)
// @Param authorNames query []string false "Author names" collectionFormat(multi)
// @Param title query []string false "Titles" collectionFormat(multi)
// @Success 200 {array} models.NewsFeedItem
// @Router /newsfeed [get]
func (h *NewsFeedHandler) List(c *fiber.Ctx) error {
	filter := services.NewsFeedFilter{
		Body:        parseQueryValues(c, "body"),
		AuthorNames: parseQueryValues(c, "authorNames"),
		Titles:      parseQueryValues(c, "title"),
	}
	return serve(h.Lists, c, "listNewsFeed", ScopeNewsFeed, filter.CacheKey(), func(ctx context.Context) ([]models.NewsFeedItem, error) {
		return h.Service.List(ctx, filter)
	})
}

// Get handles GET /api/newsfeed/:id
// @Summary Get a news feed item
// @Tags NewsFeed
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.NewsFeedItem
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /newsfeed/{id} [get]
func (h *NewsFeedHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getNewsFeedItem", h.Service.Get)
}

// Create handles POST /api/newsfeed
// @Summary Create a news feed item
// @Description dateCreated is set from the server clock.
// @Tags NewsFeed
// @Accept json
// @Produce json
// @Param body body models.NewsFeedItem true "Item"
// @Success 200 {object} models.NewsFeedItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /newsfeed [post]
func (h *NewsFeedHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createNewsFeedItem", h.Service.Create, h.Lists.Invalidate(ScopeNewsFeed))
}

// CreateBatch handles POST /api/newsfeed/batch
// @Summary Create several news feed items
// @Tags NewsFeed
// @Accept json
// @Produce json
// @Param body body []models.NewsFeedItem true "Items"
// @Success 200 {array} models.NewsFeedItem
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /newsfeed/batch [post]
func (h *NewsFeedHandler) CreateBatch(c *fiber.Ctx) error {
	return createBatch(c, "createNewsFeedItems", h.Service.CreateBatch, h.Lists.Invalidate(ScopeNewsFeed))
}

// Update handles PUT /api/newsfeed/:id
// @Summary Update a news feed item
// @Description Copies body, title and allowComments onto the stored item.
// @Tags NewsFeed
// @Accept json
// @Param id path int true "Item ID"
// @Param body body models.NewsFeedItem true "Item"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /newsfeed/{id} [put]
func (h *NewsFeedHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateNewsFeedItem", h.Service.Update, h.Lists.Invalidate(ScopeNewsFeed))
}

// Delete handles DELETE /api/newsfeed/:id
// @Summary Delete a news feed item
// @Tags NewsFeed
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /newsfeed/{id} [delete]
func (h *NewsFeedHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteNewsFeedItem", h.Service.Delete, h.Lists.Invalidate(ScopeNewsFeed))
}
