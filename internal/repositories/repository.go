package repositories

import (
	"lighthouse/internal/database"
)

type Repository struct {
	Slot     SlotRepository
	Heart    HeartRepository
	Rating   RatingRepository
	Visit    VisitRepository
	User     UserRepository
	Location LocationRepository
}

func New(db database.DB) Repository {
	return Repository{
		Slot:     NewSlotRepository(db),
		Heart:    NewHeartRepository(db),
		Rating:   NewRatingRepository(db),
		Visit:    NewVisitRepository(db),
		User:     NewUserRepository(db),
		Location: NewLocationRepository(db),
	}
}
