package integrity

import (
	"order-items/core/logger"
	"order-items/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the item table schemas and the snapshot bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if h.service.client == nil {
		report["storage"] = map[string]interface{}{"status": "disabled"}
	} else if exists, err := h.service.CheckBucket(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]interface{}{"status": "checked", "bucket_exists": exists}
	}

	return c.JSON(report)
}

// HandleSchemaCheck verifies the item tables.
// @Summary Check Item Table Schema
// @Description Compares both item tables with the expected column set and types.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStorageCheck checks the snapshot bucket.
// @Summary Check Snapshot Bucket
// @Description Checks that the snapshot bucket exists. Use ?fix=true to create it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} map[string]interface{} "Bucket status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()

	exists, err := h.service.CheckBucket(ctx)
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !exists && c.QueryBool("fix") {
		if err := h.service.FixBucket(ctx); err != nil {
			l.Error("Failed to create bucket", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "fixed", "bucket_exists": true})
	}

	return c.JSON(fiber.Map{"status": "checked", "bucket_exists": exists})
}
