package event

import (
	"context"
	"errors"

	"github.com/blusalice3/sokubaikai/core/logger"
	"github.com/blusalice3/sokubaikai/feature/event/models"
	"github.com/blusalice3/sokubaikai/feature/event/reconcile"
	"github.com/blusalice3/sokubaikai/feature/event/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for event planning.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the event routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/events")
	group.Get("/", h.HandleListEvents)
	group.Delete("/:name", h.HandleDeleteEvent)
	group.Get("/:name/items", h.HandleListItems)
	group.Post("/:name/import", h.HandleImport)
	group.Put("/:name/items/:id", h.HandleUpdateItem)
	group.Delete("/:name/items/:id", h.HandleDeleteItem)
	group.Post("/:name/items/move", h.HandleMove)
	group.Get("/:name/days/:day/columns", h.HandleColumns)
	group.Post("/:name/days/:day/active", h.HandleAddToActive)
	group.Delete("/:name/days/:day/active", h.HandleRemoveFromActive)
	group.Post("/:name/days/:day/mode", h.HandleToggleMode)
	group.Post("/:name/reconcile", h.HandleReconcilePlan)
	group.Post("/:name/reconcile/confirm", h.HandleReconcileConfirm)
	group.Get("/:name/export", h.HandleExport)
}

// ImportRequest carries a bulk import: paste text, explicit items, or both.
type ImportRequest struct {
	Text  string        `json:"text"`
	Items []models.Item `json:"items"`
}

// MoveRequest carries a drag-and-drop reposition.
type MoveRequest struct {
	DraggedID   string   `json:"dragged_id"`
	TargetID    string   `json:"target_id"`
	SelectedIDs []string `json:"selected_ids"`
}

// ActiveRequest carries a partition membership change.
type ActiveRequest struct {
	IDs []string `json:"ids"`
}

// ReconcileRequest names the sheet to reconcile against. Empty fields fall
// back to the event's stored source metadata.
type ReconcileRequest struct {
	SourceURL string `json:"source_url"`
	SheetName string `json:"sheet_name"`
}

// ConfirmRequest carries a previously planned change-set back for apply.
type ConfirmRequest struct {
	ChangeSet *reconcile.ChangeSet `json:"change_set"`
	SourceURL string               `json:"source_url"`
	SheetName string               `json:"sheet_name"`
}

// ColumnsResponse is one day's board: both projections plus the mode flag.
type ColumnsResponse struct {
	Mode      models.Mode   `json:"mode"`
	Active    []models.Item `json:"active"`
	Candidate []models.Item `json:"candidate"`
}

// HandleListEvents lists known events.
// @Summary List Events
// @Description Lists the names of all known events.
// @Tags events
// @Produce json
// @Success 200 {object} map[string][]string "Event names"
// @Router /events [get]
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"events": h.service.Events()})
}

// HandleDeleteEvent removes an event entirely.
// @Summary Delete Event
// @Description Removes an event and all its items, partitions and flags.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name} [delete]
func (h *Handler) HandleDeleteEvent(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.DeleteEvent(c.Context(), name); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleListItems returns the event's collection in route order.
// @Summary List Items
// @Description Returns the event's items in current visitation order.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /events/{name}/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.Items(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// HandleImport bulk-imports items from paste text or an item array.
// @Summary Bulk Import
// @Description Imports items from tab-delimited paste text and/or an explicit item array, creating the event if needed.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param request body ImportRequest true "Import payload"
// @Success 200 {object} map[string]int "Added and skipped counts"
// @Failure 400 {object} map[string]string
// @Router /events/{name}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	added, skipped := 0, 0
	if req.Text != "" {
		a, sk, err := h.service.ImportPaste(c.Context(), name, req.Text)
		if err != nil {
			return h.fail(c, err)
		}
		added, skipped = added+a, skipped+sk
	}
	if len(req.Items) > 0 {
		a, err := h.service.AddItems(c.Context(), name, req.Items)
		if err != nil {
			return h.fail(c, err)
		}
		added += a
	}

	l.Info("Items imported",
		zap.String("event", name),
		zap.Int("added", added),
		zap.Int("skipped", skipped))
	return c.JSON(fiber.Map{"added": added, "skipped": skipped})
}

// HandleUpdateItem replaces an item by id.
// @Summary Update Item
// @Description Replaces the item with the given id. A stale id is a no-op.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param id path string true "Item id"
// @Param item body models.Item true "Item"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/items/{id} [put]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	item.ID = c.Params("id")
	if err := h.service.UpdateItem(c.Context(), c.Params("name"), item); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleDeleteItem removes an item.
// @Summary Delete Item
// @Description Removes the item and prunes it from both days' partitions. A stale id is a no-op.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Param id path string true "Item id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/items/{id} [delete]
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Context(), c.Params("name"), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleMove repositions an item or a selected block.
// @Summary Move Items
// @Description Moves the dragged item, or the whole selection containing it, to before the target item. Stale references are no-ops.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param request body MoveRequest true "Move payload"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/items/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	err := h.service.Move(c.Context(), c.Params("name"), req.DraggedID, req.TargetID, req.SelectedIDs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleColumns returns a day's active and candidate columns.
// @Summary Day Columns
// @Description Returns the day's active and candidate item lists plus its mode flag.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Param day path string true "Day (day1 or day2)"
// @Success 200 {object} ColumnsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/days/{day}/columns [get]
func (h *Handler) HandleColumns(c *fiber.Ctx) error {
	day, ok := models.ParseDay(c.Params("day"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown day"})
	}
	active, candidate, mode, err := h.service.Columns(c.Params("name"), day)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ColumnsResponse{Mode: mode, Active: active, Candidate: candidate})
}

// HandleAddToActive places items onto the day's active route.
// @Summary Add To Active
// @Description Appends the given item ids to the day's active column. Duplicates are ignored.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param day path string true "Day (day1 or day2)"
// @Param request body ActiveRequest true "Item ids"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/days/{day}/active [post]
func (h *Handler) HandleAddToActive(c *fiber.Ctx) error {
	return h.handleActiveChange(c, h.service.AddToActive)
}

// HandleRemoveFromActive takes items off the day's active route.
// @Summary Remove From Active
// @Description Removes the given item ids from the day's active column.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param day path string true "Day (day1 or day2)"
// @Param request body ActiveRequest true "Item ids"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/days/{day}/active [delete]
func (h *Handler) HandleRemoveFromActive(c *fiber.Ctx) error {
	return h.handleActiveChange(c, h.service.RemoveFromActive)
}

func (h *Handler) handleActiveChange(c *fiber.Ctx, op func(ctx context.Context, event string, day models.Day, ids []string) error) error {
	day, ok := models.ParseDay(c.Params("day"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown day"})
	}
	var req ActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := op(c.Context(), c.Params("name"), day, req.IDs); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleToggleMode flips the day's edit/execute flag.
// @Summary Toggle Mode
// @Description Flips the day's mode between edit and execute, independently of the other day.
// @Tags events
// @Produce json
// @Param name path string true "Event name"
// @Param day path string true "Day (day1 or day2)"
// @Success 200 {object} map[string]string "New mode"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/days/{day}/mode [post]
func (h *Handler) HandleToggleMode(c *fiber.Ctx) error {
	day, ok := models.ParseDay(c.Params("day"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown day"})
	}
	mode, err := h.service.ToggleMode(c.Context(), c.Params("name"), day)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"mode": string(mode)})
}

// HandleReconcilePlan computes the pending change-set against the sheet.
// @Summary Plan Reconciliation
// @Description Fetches the sheet and computes the pending add/update/delete sets. Nothing is applied.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param request body ReconcileRequest true "Source locator"
// @Success 200 {object} reconcile.ChangeSet
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string "Source unavailable, supply a corrected locator"
// @Router /events/{name}/reconcile [post]
func (h *Handler) HandleReconcilePlan(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	cs, err := h.service.Plan(c.Context(), name, req.SourceURL, req.SheetName)
	if err != nil {
		l.Warn("Reconciliation plan failed", zap.String("event", name), zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(cs)
}

// HandleReconcileConfirm applies a pending change-set.
// @Summary Confirm Reconciliation
// @Description Applies the pending change-set atomically: deletes, then updates, then sorted inserts.
// @Tags events
// @Accept json
// @Produce json
// @Param name path string true "Event name"
// @Param request body ConfirmRequest true "Change-set to apply"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{name}/reconcile/confirm [post]
func (h *Handler) HandleReconcileConfirm(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil || req.ChangeSet == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if err := h.service.Confirm(c.Context(), name, req.ChangeSet, req.SourceURL, req.SheetName); err != nil {
		return h.fail(c, err)
	}
	l.Info("Reconciliation confirmed",
		zap.String("event", name),
		zap.Int("adds", len(req.ChangeSet.ToAdd)),
		zap.Int("updates", len(req.ChangeSet.ToUpdate)),
		zap.Int("deletes", len(req.ChangeSet.ToDelete)))
	return c.JSON(fiber.Map{"status": "applied"})
}

// HandleExport downloads the event as CSV.
// @Summary Export CSV
// @Description Returns the event's items as a BOM-prefixed CSV table in route order.
// @Tags events
// @Produce text/csv
// @Param name path string true "Event name"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]string
// @Router /events/{name}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	name := c.Params("name")
	data, err := h.service.ExportCSV(name)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
	return c.Send(data)
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Reason})
	case errors.Is(err, ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	case errors.Is(err, source.ErrSourceUnavailable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "source_unavailable",
		})
	default:
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
