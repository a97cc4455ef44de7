package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/services"
)

// CompanyHandler handles companies and their nested products
type CompanyHandler struct {
	Service *services.CompanyService
}

// List handles GET /api/companies
// @Summary List companies
// @Tags Companies
// @Produce json
// @Success 200 {array} models.Company
// @Router /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listCompanies", h.Service.List)
}

// Get handles GET /api/companies/:id
// @Summary Get a company
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getCompany", h.Service.Get)
}

// Create handles POST /api/companies
// @Summary Create a company
// @Tags Companies
// @Accept json
// @Produce json
// @Param body body models.Company true "Company"
// @Success 200 {object} models.Company
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createCompany", h.Service.Create)
}

// Update handles PUT /api/companies/:id
// @Summary Update a company
// @Description Copies name and location onto the stored company.
// @Tags Companies
// @Accept json
// @Param id path int true "Company ID"
// @Param body body models.Company true "Company"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateCompany", h.Service.Update)
}

// Delete handles DELETE /api/companies/:id
// @Summary Delete a company
// @Description Products of the company are deleted with it.
// @Tags Companies
// @Param id path int true "Company ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteCompany", h.Service.Delete)
}

// ListProducts handles GET /api/companies/:parentId/products
// @Summary List the products of a company
// @Tags Products
// @Produce json
// @Param parentId path int true "Company ID"
// @Success 200 {array} models.Product
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{parentId}/products [get]
func (h *CompanyHandler) ListProducts(c *fiber.Ctx) error {
	return listChildren(c, "listProducts", h.Service.ListProducts)
}

// GetProduct handles GET /api/companies/:parentId/products/:id
// @Summary Get a product of a company
// @Tags Products
// @Produce json
// @Param parentId path int true "Company ID"
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{parentId}/products/{id} [get]
func (h *CompanyHandler) GetProduct(c *fiber.Ctx) error {
	return getChild(c, "getProduct", h.Service.GetProduct)
}

// CreateProduct handles POST /api/companies/:parentId/products
// @Summary Create a product in a company
// @Description The company id is taken from the path.
// @Tags Products
// @Accept json
// @Produce json
// @Param parentId path int true "Company ID"
// @Param body body models.Product true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{parentId}/products [post]
func (h *CompanyHandler) CreateProduct(c *fiber.Ctx) error {
	return createChild(c, "createProduct", h.Service.CreateProduct)
}

// UpdateProduct handles PUT /api/companies/:parentId/products/:id
// @Summary Update a product of a company
// @Description Copies name and category onto the stored product.
// @Tags Products
// @Accept json
// @Param parentId path int true "Company ID"
// @Param id path int true "Product ID"
// @Param body body models.Product true "Product"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{parentId}/products/{id} [put]
func (h *CompanyHandler) UpdateProduct(c *fiber.Ctx) error {
	return updateChild(c, "updateProduct", h.Service.UpdateProduct)
}

// DeleteProduct handles DELETE /api/companies/:parentId/products/:id
// @Summary Delete a product of a company
// @Tags Products
// @Param parentId path int true "Company ID"
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /companies/{parentId}/products/{id} [delete]
func (h *CompanyHandler) DeleteProduct(c *fiber.Ctx) error {
	return deleteChild(c, "deleteProduct", h.Service.DeleteProduct)
}
