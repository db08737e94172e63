package inventory

import (
	"context"
	"errors"

	"shortage-tracker/core/logger"
	"shortage-tracker/feature/inventory/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Authorizer gates mutating requests on the acting user's role.
type Authorizer interface {
	// AuthorizeWrite returns an error when the named user may not modify
	// inventory (unknown user or reader role).
	AuthorizeWrite(ctx context.Context, username string) error
}

// Handler handles HTTP requests for inventory.
type Handler struct {
	service *Service
	auth    Authorizer
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. auth may be nil to disable role
// gating (CLI-driven deployments).
func NewHandler(service *Service, auth Authorizer) *Handler {
	return &Handler{service: service, auth: auth, logger: service.logger}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleSave)
	group.Get("/stats", h.HandleStats)
	group.Get("/analytics", h.HandleAnalytics)
	group.Get("/duplicates", h.HandleDuplicates)
	group.Post("/duplicates/archive", h.HandleArchiveDuplicates)
	group.Post("/import", h.HandleImport)
	group.Get("/:id/scopes", h.HandleScopeOptions)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the inventory snapshot.
// @Summary List Inventory
// @Description Returns all missing-part records, newest first, optionally filtered by department.
// @Tags inventory
// @Produce json
// @Param department query string false "Department code"
// @Success 200 {array} models.Record "Records"
// @Failure 400 {object} map[string]string "Unknown Department"
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context(), c.Query("department"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(records)
}

type saveRequest struct {
	reconcile.Candidate
	Department string `json:"department"`
}

// HandleSave validates and persists a record.
// @Summary Save Record
// @Description Creates or updates a missing-part record after duplicate validation.
// @Tags inventory
// @Accept json
// @Produce json
// @Param record body saveRequest true "Record"
// @Success 200 {object} models.Record "Saved Record"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 409 {object} map[string]string "Duplicate In Department"
// @Router /inventory [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	username, ok := h.requireWriter(c)
	if !ok {
		return nil
	}

	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	record, err := h.service.Save(c.Context(), req.Candidate, req.Department, username)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(record)
}

// HandleScopeOptions reports the available delete scopes for a record.
// @Summary Delete Scope Options
// @Description Returns the record and the other departments holding the same identity key.
// @Tags inventory
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]interface{} "Scope Options"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id}/scopes [get]
func (h *Handler) HandleScopeOptions(c *fiber.Ctx) error {
	record, others, err := h.service.ScopeOptions(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"record":            record,
		"other_departments": others,
	})
}

// HandleDelete removes a record under the requested scope.
// @Summary Delete Record
// @Description Deletes a record. Scope 'global' removes the identity key from every department; 'single' and 'local' remove only this record.
// @Tags inventory
// @Produce json
// @Param id path string true "Record ID"
// @Param scope query string false "single|local|global" default(single)
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if _, ok := h.requireWriter(c); !ok {
		return nil
	}

	mode := reconcile.ScopeMode(c.Query("scope", string(reconcile.ScopeSingle)))
	switch mode {
	case reconcile.ScopeSingle, reconcile.ScopeLocal, reconcile.ScopeGlobal:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown delete scope"})
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), mode); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

type importRequest struct {
	Department string                  `json:"department"`
	Rows       []reconcile.Row         `json:"rows"`
	Options    reconcile.ImportOptions `json:"options"`
}

// HandleImport reconciles and applies a spreadsheet batch.
// @Summary Import Batch
// @Description Reconciles already-parsed spreadsheet rows against the target department under the chosen duplicate policy.
// @Tags inventory
// @Accept json
// @Produce json
// @Param batch body importRequest true "Batch"
// @Success 200 {object} ImportReport "Import Report"
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	if _, ok := h.requireWriter(c); !ok {
		return nil
	}

	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	report, err := h.service.Import(c.Context(), req.Rows, req.Department, req.Options)
	if errors.Is(err, reconcile.ErrNothingToImport) {
		// Not an error: nothing survived reconciliation and no wipe was
		// requested, so no writes were issued.
		return c.JSON(fiber.Map{"inserted": 0, "deleted": 0, "message": "nothing to import"})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleDuplicates returns the consolidated cross-department duplicates.
// @Summary Cross-Department Duplicates
// @Description Returns identity keys present in two or more departments, with first-seen department order and summed quantities.
// @Tags inventory
// @Produce json
// @Success 200 {array} reconcile.ConsolidatedGroup "Groups"
// @Router /inventory/duplicates [get]
func (h *Handler) HandleDuplicates(c *fiber.Ctx) error {
	groups, err := h.service.Duplicates(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(groups)
}

// HandleArchiveDuplicates uploads the duplicates report to object storage.
// @Summary Archive Duplicates Report
// @Description Writes the current cross-department duplicates report as JSON to the configured bucket.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]string "Object Name"
// @Failure 503 {object} map[string]string "Storage Not Configured"
// @Router /inventory/duplicates/archive [post]
func (h *Handler) HandleArchiveDuplicates(c *fiber.Ctx) error {
	if _, ok := h.requireWriter(c); !ok {
		return nil
	}

	objectName, err := h.service.UploadDuplicatesReport(c.Context())
	if errors.Is(err, ErrNoStorage) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"object": objectName})
}

// HandleStats returns the dashboard totals.
// @Summary Inventory Stats
// @Tags inventory
// @Produce json
// @Success 200 {object} Stats "Stats"
// @Router /inventory/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(stats)
}

// HandleAnalytics returns the chart series for the analytics view.
// @Summary Inventory Analytics
// @Tags inventory
// @Produce json
// @Success 200 {object} AnalyticsReport "Report"
// @Router /inventory/analytics [get]
func (h *Handler) HandleAnalytics(c *fiber.Ctx) error {
	report, err := h.service.Analytics(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// requireWriter resolves the acting username and checks the role gate. When
// the gate rejects, the 403 response is already written and ok is false.
func (h *Handler) requireWriter(c *fiber.Ctx) (string, bool) {
	username := c.Get("X-Username")
	if h.auth == nil {
		return username, true
	}
	if err := h.auth.AuthorizeWrite(c.Context(), username); err != nil {
		_ = c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		return "", false
	}
	return username, true
}

// fail maps service errors to HTTP responses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.logger, c)

	switch {
	case errors.Is(err, reconcile.ErrMissingRequiredField), errors.Is(err, ErrUnknownDepartment), errors.Is(err, ErrImmutableDepartment):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, reconcile.ErrDuplicateInDepartment):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Inventory request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
