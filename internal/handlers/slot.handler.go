package handlers

import (
	"errors"
	"lighthouse/internal/app"
	slotController "lighthouse/internal/controllers/slots"
	"lighthouse/internal/filters"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

// Query parameters that shape the page rather than select slots.
var reservedListParams = map[string]bool{
	"pageStart": true,
	"pageSize":  true,
	"viewerId":  true,
}

type SlotHandler struct {
	Handler
	slotController slotController.SlotControllerInterface
}

func NewSlotHandler(app app.App, router fiber.Router) *SlotHandler {
	log := logger.New("handlers").File("slot_handler")
	return &SlotHandler{
		slotController: app.Controllers.Slot,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SlotHandler) Register() {
	h.router.Get("/s/user/:id", h.getSlot)
	h.router.Get("/slots/mmpicks", h.getTeamPicks)
	h.router.Get("/slots", h.listSlots)
}

func (h *SlotHandler) getSlot(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("slot_handler").Function("getSlot")

	slotID, err := c.ParamsInt("id")
	if err != nil || slotID <= 0 {
		log.Warn("Invalid slot id", "id", c.Params("id"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid slot id",
		})
	}

	document, err := h.slotController.GetSlot(c.UserContext(), slotID, c.QueryInt("viewerId"))
	if err != nil {
		if errors.Is(err, slotController.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		_ = log.Err("Failed to retrieve slot", err, "slotID", slotID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve slot",
		})
	}

	return sendXML(c, document)
}

func (h *SlotHandler) listSlots(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("slot_handler").Function("listSlots")

	document, err := h.slotController.ListSlots(c.UserContext(), listRequest(c))
	if err != nil {
		return listError(c, log, err)
	}

	return sendXML(c, document)
}

func (h *SlotHandler) getTeamPicks(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("slot_handler").Function("getTeamPicks")

	document, err := h.slotController.TeamPicks(c.UserContext(), listRequest(c))
	if err != nil {
		return listError(c, log, err)
	}

	return sendXML(c, document)
}

func listRequest(c *fiber.Ctx) slotController.ListRequest {
	request := slotController.ListRequest{
		PageStart: c.QueryInt("pageStart", 1),
		PageSize:  c.QueryInt("pageSize"),
		ViewerID:  c.QueryInt("viewerId"),
		Filters:   map[string]string{},
	}

	for key, value := range c.Queries() {
		if !reservedListParams[key] {
			request.Filters[key] = value
		}
	}

	return request
}

func listError(c *fiber.Ctx, log logger.Logger, err error) error {
	if errors.Is(err, filters.ErrUnknownFilter) || errors.Is(err, filters.ErrInvalidFilterValue) {
		log.Warn("Rejected slot filters", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	_ = log.Err("Failed to list slots", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to list slots",
	})
}

func sendXML(c *fiber.Ctx, document string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.SendString(document)
}
