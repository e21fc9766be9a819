package lineitems

import (
	"errors"
	"strconv"

	"order-items/core/lock"
	"order-items/core/logger"
	"order-items/feature/lineitems/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for document line items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SaveRequest is the body of a full replacement save.
type SaveRequest struct {
	Items  []models.SubmittedLineItem `json:"items"`
	DryRun bool                       `json:"dry_run"`
}

// PatchRequest is the body of an autosave field update.
type PatchRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// ReorderRequest is the body of a reorder.
type ReorderRequest struct {
	Positions []models.Position `json:"positions"`
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	docs := app.Group("/documents/:documentID")
	docs.Get("/summary", h.HandleSummary)
	docs.Post("/seed", h.HandleSeed)
	docs.Post("/export", h.HandleExport)
	docs.Delete("/", h.HandleTeardown)
	docs.Get("/items/:kind", h.HandleList)
	docs.Put("/items/:kind", h.HandleSave)
	docs.Put("/items/:kind/order", h.HandleReorder)
	docs.Delete("/items/:kind/:id", h.HandleDelete)

	app.Patch("/items/:kind/:id", h.HandlePatch)
}

func parseDocument(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("documentID"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid document id")
	}
	return id, nil
}

func parseKind(c *fiber.Ctx) (models.Kind, error) {
	kind, ok := models.ParseKind(c.Params("kind"))
	if !ok {
		return "", fiber.NewError(fiber.StatusBadRequest, "unknown item kind")
	}
	return kind, nil
}

func parseItemID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}
	return id, nil
}

// respondError maps service errors to status codes. Storage details stay in the log.
func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	case errors.Is(err, ErrInvalidField), errors.Is(err, ErrInvalidValue), errors.Is(err, ErrUnknownKind):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	case errors.Is(err, ErrExportDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, lock.ErrLocked):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "document is being edited, retry"})
	default:
		l.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// HandleList returns the items of one kind.
// @Summary List Items
// @Description List a document's invoice or cost items in display order.
// @Tags items
// @Produce json
// @Param documentID path int true "Document ID"
// @Param kind path string true "invoice or cost"
// @Success 200 {array} models.LineItem
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /documents/{documentID}/items/{kind} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}
	kind, err := parseKind(c)
	if err != nil {
		return respondError(c, l, err)
	}

	items, err := h.service.List(c.Context(), kind, docID)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(items)
}

// HandleSave reconciles a full replacement set.
// @Summary Save Items
// @Description Replace a document's items of one kind. Omitted ids are deleted; new rows without a product name are ignored.
// @Tags items
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param kind path string true "invoice or cost"
// @Param request body SaveRequest true "Submitted items"
// @Success 200 {object} SaveResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /documents/{documentID}/items/{kind} [put]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}
	kind, err := parseKind(c)
	if err != nil {
		return respondError(c, l, err)
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, l, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}

	result, err := h.service.Save(c.Context(), kind, docID, req.Items, SaveOptions{
		DryRun: req.DryRun || c.QueryBool("dry_run"),
	})
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(result)
}

// HandlePatch updates a single field.
// @Summary Patch Item Field
// @Description Autosave one of product_name, price, quantity, unit, amount, remarks.
// @Tags items
// @Accept json
// @Produce json
// @Param kind path string true "invoice or cost"
// @Param id path int true "Item ID"
// @Param request body PatchRequest true "Field and value"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{kind}/{id} [patch]
func (h *Handler) HandlePatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	kind, err := parseKind(c)
	if err != nil {
		return respondError(c, l, err)
	}
	id, err := parseItemID(c)
	if err != nil {
		return respondError(c, l, err)
	}

	var req PatchRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, l, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}

	if err := h.service.PatchField(c.Context(), kind, id, req.Field, req.Value); err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleReorder rewrites sort positions.
// @Summary Reorder Items
// @Tags items
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param kind path string true "invoice or cost"
// @Param request body ReorderRequest true "Positions"
// @Success 200 {object} map[string]int64
// @Router /documents/{documentID}/items/{kind}/order [put]
func (h *Handler) HandleReorder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}
	kind, err := parseKind(c)
	if err != nil {
		return respondError(c, l, err)
	}

	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, l, fiber.NewError(fiber.StatusBadRequest, "invalid request body"))
	}

	moved, err := h.service.Reorder(c.Context(), kind, docID, req.Positions)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(fiber.Map{"moved": moved})
}

// HandleDelete removes one item of the document.
// @Summary Delete Item
// @Tags items
// @Param documentID path int true "Document ID"
// @Param kind path string true "invoice or cost"
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /documents/{documentID}/items/{kind}/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}
	kind, err := parseKind(c)
	if err != nil {
		return respondError(c, l, err)
	}
	id, err := parseItemID(c)
	if err != nil {
		return respondError(c, l, err)
	}

	if err := h.service.DeleteItem(c.Context(), kind, id, docID); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSeed creates the initial blank row of a new document.
// @Summary Seed Document
// @Tags documents
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Router /documents/{documentID}/seed [post]
func (h *Handler) HandleSeed(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}

	id, seeded, err := h.service.SeedInitialItem(c.Context(), docID)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(fiber.Map{"seeded": seeded, "id": id})
}

// HandleTeardown removes every item of a deleted document.
// @Summary Teardown Document
// @Tags documents
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} TeardownResult
// @Router /documents/{documentID} [delete]
func (h *Handler) HandleTeardown(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}

	result, err := h.service.Teardown(c.Context(), docID)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(result)
}

// HandleSummary returns both collections with totals and profit.
// @Summary Document Summary
// @Tags documents
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} models.Summary
// @Router /documents/{documentID}/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}

	sum, err := h.service.Summary(c.Context(), docID)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(sum)
}

// HandleExport writes the summary snapshot to object storage.
// @Summary Export Snapshot
// @Tags documents
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string "Export disabled"
// @Router /documents/{documentID}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	docID, err := parseDocument(c)
	if err != nil {
		return respondError(c, l, err)
	}

	key, err := h.service.Export(c.Context(), docID)
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(fiber.Map{"key": key})
}
