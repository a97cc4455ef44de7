package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/services"
)

// LibraryHandler handles libraries and their nested books and rooms
type LibraryHandler struct {
	Service *services.LibraryService
}

// List handles GET /api/libraries
// @Summary List libraries
// @Tags Libraries
// @Produce json
// @Success 200 {array} models.Library
// @Router /libraries [get]
func (h *LibraryHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listLibraries", h.Service.List)
}

// Get handles GET /api/libraries/:id
// @Summary Get a library
// @Tags Libraries
// @Produce json
// @Param id path int true "Library ID"
// @Success 200 {object} models.Library
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{id} [get]
func (h *LibraryHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getLibrary", h.Service.Get)
}

// Create handles POST /api/libraries
// @Summary Create a library
// @Tags Libraries
// @Accept json
// @Produce json
// @Param body body models.Library true "Library"
// @Success 200 {object} models.Library
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /libraries [post]
func (h *LibraryHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createLibrary", h.Service.Create)
}

// Update handles PUT /api/libraries/:id
// @Summary Update a library
// @Description Copies name and location onto the stored library.
// @Tags Libraries
// @Accept json
// @Param id path int true "Library ID"
// @Param body body models.Library true "Library"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{id} [put]
func (h *LibraryHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateLibrary", h.Service.Update)
}

// Delete handles DELETE /api/libraries/:id
// @Summary Delete a library
// @Description Books and rooms of the library are deleted with it.
// @Tags Libraries
// @Param id path int true "Library ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{id} [delete]
func (h *LibraryHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteLibrary", h.Service.Delete)
}

// ListBooks handles GET /api/libraries/:parentId/books
// @Summary List the books of a library
// @Tags Books
// @Produce json
// @Param parentId path int true "Library ID"
// @Success 200 {array} models.Book
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/books [get]
func (h *LibraryHandler) ListBooks(c *fiber.Ctx) error {
	return listChildren(c, "listBooks", h.Service.ListBooks)
}

// GetBook handles GET /api/libraries/:parentId/books/:id
// @Summary Get a book of a library
// @Tags Books
// @Produce json
// @Param parentId path int true "Library ID"
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/books/{id} [get]
func (h *LibraryHandler) GetBook(c *fiber.Ctx) error {
	return getChild(c, "getBook", h.Service.GetBook)
}

// CreateBook handles POST /api/libraries/:parentId/books
// @Summary Create a book in a library
// @Description The library id is taken from the path.
// @Tags Books
// @Accept json
// @Produce json
// @Param parentId path int true "Library ID"
// @Param body body models.Book true "Book"
// @Success 200 {object} models.Book
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/books [post]
func (h *LibraryHandler) CreateBook(c *fiber.Ctx) error {
	return createChild(c, "createBook", h.Service.CreateBook)
}

// UpdateBook handles PUT /api/libraries/:parentId/books/:id
// @Summary Update a book of a library
// @Description Copies name and category onto the stored book.
// @Tags Books
// @Accept json
// @Param parentId path int true "Library ID"
// @Param id path int true "Book ID"
// @Param body body models.Book true "Book"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/books/{id} [put]
func (h *LibraryHandler) UpdateBook(c *fiber.Ctx) error {
	return updateChild(c, "updateBook", h.Service.UpdateBook)
}

// DeleteBook handles DELETE /api/libraries/:parentId/books/:id
// @Summary Delete a book of a library
// @Tags Books
// @Param parentId path int true "Library ID"
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/books/{id} [delete]
func (h *LibraryHandler) DeleteBook(c *fiber.Ctx) error {
	return deleteChild(c, "deleteBook", h.Service.DeleteBook)
}

// ListRooms handles GET /api/libraries/:parentId/rooms
// @Summary List the rooms of a library
// @Tags Rooms
// @Produce json
// @Param parentId path int true "Library ID"
// @Success 200 {array} models.Room
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/rooms [get]
func (h *LibraryHandler) ListRooms(c *fiber.Ctx) error {
	return listChildren(c, "listRooms", h.Service.ListRooms)
}

// GetRoom handles GET /api/libraries/:parentId/rooms/:id
// @Summary Get a room of a library
// @Tags Rooms
// @Produce json
// @Param parentId path int true "Library ID"
// @Param id path int true "Room ID"
// @Success 200 {object} models.Room
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/rooms/{id} [get]
func (h *LibraryHandler) GetRoom(c *fiber.Ctx) error {
	return getChild(c, "getRoom", h.Service.GetRoom)
}

// CreateRoom handles POST /api/libraries/:parentId/rooms
// @Summary Create a room in a library
// @Description The library id is taken from the path.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param parentId path int true "Library ID"
// @Param body body models.Room true "Room"
// @Success 200 {object} models.Room
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/rooms [post]
func (h *LibraryHandler) CreateRoom(c *fiber.Ctx) error {
	return createChild(c, "createRoom", h.Service.CreateRoom)
}

// UpdateRoom handles PUT /api/libraries/:parentId/rooms/:id
// @Summary Update a room of a library
// @Description Copies name and capacity onto the stored room.
// @Tags Rooms
// @Accept json
// @Param parentId path int true "Library ID"
// @Param id path int true "Room ID"
// @Param body body models.Room true "Room"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/rooms/{id} [put]
func (h *LibraryHandler) UpdateRoom(c *fiber.Ctx) error {
	return updateChild(c, "updateRoom", h.Service.UpdateRoom)
}

// DeleteRoom handles DELETE /api/libraries/:parentId/rooms/:id
// @Summary Delete a room of a library
// @Tags Rooms
// @Param parentId path int true "Library ID"
// @Param id path int true "Room ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /libraries/{parentId}/rooms/{id} [delete]
func (h *LibraryHandler) DeleteRoom(c *fiber.Ctx) error {
	return deleteChild(c, "deleteRoom", h.Service.DeleteRoom)
}
