package slotController

import (
	"context"
	"errors"
	"lighthouse/config"
	"lighthouse/internal/filters"
	. "lighthouse/internal/models"
	"lighthouse/internal/repositories"
	"lighthouse/internal/serializer"
	"lighthouse/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

var ErrNotFound = errors.New("slot not found")

// ListRequest describes one page of a listing. PageStart is 1-based, matching
// what the game client sends. ViewerID 0 means an anonymous viewer.
type ListRequest struct {
	PageStart int
	PageSize  int
	ViewerID  int
	Filters   map[string]string
}

type SlotControllerInterface interface {
	GetSlot(ctx context.Context, slotID int, viewerID int) (string, error)
	ListSlots(ctx context.Context, request ListRequest) (string, error)
	TeamPicks(ctx context.Context, request ListRequest) (string, error)
}

type SlotController struct {
	slotRepo     repositories.SlotRepository
	userRepo     repositories.UserRepository
	locationRepo repositories.LocationRepository
	ratingRepo   repositories.RatingRepository
	visitRepo    repositories.VisitRepository
	statistics   services.SlotStatisticsService
	Config       config.Config
	log          logger.Logger
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
) SlotControllerInterface {
	return &SlotController{
		slotRepo:     repos.Slot,
		userRepo:     repos.User,
		locationRepo: repos.Location,
		ratingRepo:   repos.Rating,
		visitRepo:    repos.Visit,
		statistics:   services.SlotStatistics,
		Config:       config,
		log:          logger.New("slotController"),
	}
}

func (c *SlotController) GetSlot(ctx context.Context, slotID int, viewerID int) (string, error) {
	log := c.log.Function("GetSlot")

	slot, err := c.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return "", log.Err("failed to get slot", err, "slotID", slotID)
	}

	if slot == nil {
		return "", ErrNotFound
	}

	return c.render(ctx, slot, viewerID)
}

func (c *SlotController) ListSlots(ctx context.Context, request ListRequest) (string, error) {
	filter, err := filters.ParseAll(request.Filters)
	if err != nil {
		return "", err
	}

	return c.list(ctx, filter, request)
}

func (c *SlotController) TeamPicks(ctx context.Context, request ListRequest) (string, error) {
	filter, err := filters.ParseAll(request.Filters)
	if err != nil {
		return "", err
	}

	return c.list(ctx, filters.And(filters.TeamPickFilter{}, filter), request)
}

func (c *SlotController) list(
	ctx context.Context,
	filter filters.SlotFilter,
	request ListRequest,
) (string, error) {
	log := c.log.Function("list")

	pageStart, pageSize := c.pageBounds(request)

	slots, total, err := c.slotRepo.Find(ctx, filter, repositories.Page{
		Start: pageStart - 1,
		Size:  pageSize,
	})
	if err != nil {
		return "", log.Err("failed to find slots", err, "pageStart", pageStart, "pageSize", pageSize)
	}

	documents := make([]string, 0, len(slots))
	for _, slot := range slots {
		document, err := c.render(ctx, slot, request.ViewerID)
		if err != nil {
			return "", err
		}
		documents = append(documents, document)
	}

	return serializer.SerializeSlots(documents, total, pageStart+len(slots)), nil
}

func (c *SlotController) pageBounds(request ListRequest) (int, int) {
	pageStart := max(request.PageStart, 1)

	pageSize := request.PageSize
	if pageSize <= 0 {
		pageSize = c.Config.DefaultPageSize
	}
	if c.Config.MaxPageSize > 0 && pageSize > c.Config.MaxPageSize {
		pageSize = c.Config.MaxPageSize
	}

	return pageStart, pageSize
}

func (c *SlotController) render(ctx context.Context, slot *Slot, viewerID int) (string, error) {
	log := c.log.Function("render")

	creator, err := c.userRepo.GetByID(ctx, slot.CreatorID)
	if err != nil {
		return "", log.Err("failed to resolve creator", err, "slotID", slot.SlotID, "creatorID", slot.CreatorID)
	}

	location, err := c.locationRepo.GetByID(ctx, slot.LocationID)
	if err != nil {
		return "", log.Err("failed to resolve location", err, "slotID", slot.SlotID)
	}

	stats, err := c.statistics.Snapshot(ctx, slot.SlotID)
	if err != nil {
		return "", err
	}

	slotContext := serializer.SlotContext{
		Creator:    creator,
		Location:   location,
		Statistics: stats,
	}

	if viewerID > 0 {
		if slotContext.YourRating, err = c.ratingRepo.GetBySlotAndUser(ctx, slot.SlotID, viewerID); err != nil {
			return "", err
		}
		if slotContext.YourVisit, err = c.visitRepo.GetBySlotAndUser(ctx, slot.SlotID, viewerID); err != nil {
			return "", err
		}
	}

	return serializer.SerializeSlot(slot, slotContext), nil
}
