package repositories

import (
	"context"
	"errors"
	"lighthouse/internal/database"
	. "lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id int) (*Location, error)
	Create(ctx context.Context, location *Location) (*Location, error)
}

type locationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewLocationRepository(db database.DB) LocationRepository {
	return &locationRepository{
		db:  db,
		log: logger.New("locationRepository"),
	}
}

func (r *locationRepository) GetByID(ctx context.Context, id int) (*Location, error) {
	log := r.log.Function("GetByID")

	if id <= 0 {
		return nil, nil
	}

	var location Location
	if err := r.db.Session(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get location by ID", err, "id", id)
	}

	return &location, nil
}

func (r *locationRepository) Create(ctx context.Context, location *Location) (*Location, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(location).Error; err != nil {
		return nil, log.Err("failed to create location", err)
	}

	return location, nil
}
