package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
)

// TicketHandler handles ticket routes
type TicketHandler struct {
	Service *services.TicketService
}

// List handles GET /api/tickets
// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Param titles query []string false "Titles" collectionFormat(multi)
// @Param authorNames query []string false "Author names" collectionFormat(multi)
// @Success 200 {array} models.Ticket
// @Router /tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	filter := services.TicketFilter{
		Titles:      parseQueryValues(c, "titles"),
		AuthorNames: parseQueryValues(c, "authorNames"),
	}
	return listAll(c, "listTickets", func(ctx context.Context) ([]models.Ticket, error) {
		return h.Service.List(ctx, filter)
	})
}

// Get handles GET /api/tickets/:id
// @Summary Get a ticket
// @Tags Tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.Ticket
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getTicket", h.Service.Get)
}

// Create handles POST /api/tickets
// @Summary Create a ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param body body models.Ticket true "Ticket"
// @Success 200 {object} models.Ticket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createTicket", h.Service.Create)
}

// Update handles PUT /api/tickets/:id
// @Summary Update a ticket
// @Description Copies title, body and publishedDate onto the stored ticket.
// @Tags Tickets
// @Accept json
// @Param id path int true "Ticket ID"
// @Param body body models.Ticket true "Ticket"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateTicket", h.Service.Update)
}

// Delete handles DELETE /api/tickets/:id
// @Summary Delete a ticket
// @Tags Tickets
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteTicket", h.Service.Delete)
}
