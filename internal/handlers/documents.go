package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/services"
)

// DocumentHandler handles documents and their nested reports.
// Report rows are translated into the request culture on read.
type DocumentHandler struct {
	Service *services.DocumentService
}

// List handles GET /api/documents
// @Summary List documents
// @Tags Documents
// @Produce json
// @Success 200 {array} models.Document
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listDocuments", h.Service.List)
}

// Get handles GET /api/documents/:id
// @Summary Get a document
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getDocument", h.Service.Get)
}

// Create handles POST /api/documents
// @Summary Create a document
// @Tags Documents
// @Accept json
// @Produce json
// @Param body body models.Document true "Document"
// @Success 200 {object} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createDocument", h.Service.Create)
}

// Update handles PUT /api/documents/:id
// @Summary Update a document
// @Description Copies name and body onto the stored document.
// @Tags Documents
// @Accept json
// @Param id path int true "Document ID"
// @Param body body models.Document true "Document"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateDocument", h.Service.Update)
}

// Delete handles DELETE /api/documents/:id
// @Summary Delete a document
// @Description Reports of the document are deleted with it.
// @Tags Documents
// @Param id path int true "Document ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteDocument", h.Service.Delete)
}

// ListReports handles GET /api/documents/:parentId/reports
// @Summary List the reports of a document
// @Tags Reports
// @Produce json
// @Param parentId path int true "Document ID"
// @Success 200 {array} models.Report
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{parentId}/reports [get]
func (h *DocumentHandler) ListReports(c *fiber.Ctx) error {
	return listChildren(c, "listReports", h.Service.ListReports)
}

// GetReport handles GET /api/documents/:parentId/reports/:id
// @Summary Get a report of a document
// @Tags Reports
// @Produce json
// @Param parentId path int true "Document ID"
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{parentId}/reports/{id} [get]
func (h *DocumentHandler) GetReport(c *fiber.Ctx) error {
	return getChild(c, "getReport", h.Service.GetReport)
}

// CreateReport handles POST /api/documents/:parentId/reports
// @Summary Create a report in a document
// @Description The document id is taken from the path.
// @Tags Reports
// @Accept json
// @Produce json
// @Param parentId path int true "Document ID"
// @Param body body models.Report true "Report"
// @Success 200 {object} models.Report
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{parentId}/reports [post]
func (h *DocumentHandler) CreateReport(c *fiber.Ctx) error {
	return createChild(c, "createReport", h.Service.CreateReport)
}

// UpdateReport handles PUT /api/documents/:parentId/reports/:id
// @Summary Update a report of a document
// @Description Copies name and category onto the stored report.
// @Tags Reports
// @Accept json
// @Param parentId path int true "Document ID"
// @Param id path int true "Report ID"
// @Param body body models.Report true "Report"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{parentId}/reports/{id} [put]
func (h *DocumentHandler) UpdateReport(c *fiber.Ctx) error {
	return updateChild(c, "updateReport", h.Service.UpdateReport)
}

// DeleteReport handles DELETE /api/documents/:parentId/reports/:id
// @Summary Delete a report of a document
// @Tags Reports
// @Param parentId path int true "Document ID"
// @Param id path int true "Report ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{parentId}/reports/{id} [delete]
func (h *DocumentHandler) DeleteReport(c *fiber.Ctx) error {
	return deleteChild(c, "deleteReport", h.Service.DeleteReport)
}

// ReportHandler handles reports addressed without their document
type ReportHandler struct {
	Service *services.ReportService
}

// List handles GET /api/reports
// @Summary List reports
// @Tags Reports
// @Produce json
// @Param Accept-Language header string false "Culture for row headers"
// @Success 200 {array} models.Report
// @Router /reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listAllReports", h.Service.List)
}

// Get handles GET /api/reports/:id
// @Summary Get a report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getAnyReport", h.Service.Get)
}

// Create handles POST /api/reports
// @Summary Create a report
// @Tags Reports
// @Accept json
// @Produce json
// @Description documentId must reference an existing document.
// @Param body body models.Report true "Report"
// @Success 200 {object} models.Report
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createReport", h.Service.Create)
}

// Update handles PUT /api/reports/:id
// @Summary Update a report
// @Description Copies name and category onto the stored report.
// @Tags Reports
// @Accept json
// @Param id path int true "Report ID"
// @Param body body models.Report true "Report"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reports/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateReport", h.Service.Update)
}

// Delete handles DELETE /api/reports/:id
// @Summary Delete a report
// @Tags Reports
// @Param id path int true "Report ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteReport", h.Service.Delete)
}
