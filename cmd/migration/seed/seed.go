package seed

import (
	"context"
	. "lighthouse/internal/models"
	"lighthouse/internal/repositories"
	"lighthouse/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type seedSlot struct {
	slot   Slot
	hearts int
	votes  []RatedLevel
}

// Seed loads a small development catalog in one transaction. It does nothing
// when the catalog already holds slots.
func Seed(
	ctx context.Context,
	transaction *services.TransactionService,
	repos repositories.Repository,
	log logger.Logger,
) error {
	log = log.Function("Seed")

	_, total, err := repos.Slot.Find(ctx, nil, repositories.Page{Size: 1})
	if err != nil {
		return log.Err("failed to check existing slots", err)
	}
	if total > 0 {
		log.Info("Catalog already seeded", "slots", total)
		return nil
	}

	return transaction.Execute(ctx, func(ctx context.Context, _ *gorm.DB) error {
		creators := make([]*User, 0, 3)
		for _, name := range []string{"mm_pick", "sackboy", "jam"} {
			user, err := repos.User.Create(ctx, &User{Username: name})
			if err != nil {
				return err
			}
			creators = append(creators, user)
		}

		for i, entry := range seedSlots() {
			location, err := repos.Location.Create(ctx, &Location{X: 100 * (i + 1), Y: 50 * (i + 1)})
			if err != nil {
				return err
			}

			slot := entry.slot
			slot.CreatorID = creators[i%len(creators)].UserID
			slot.LocationID = location.ID
			if _, err := repos.Slot.Create(ctx, &slot); err != nil {
				return err
			}

			for h := 0; h < entry.hearts; h++ {
				heart := &Heart{SlotID: slot.SlotID, UserID: creators[h%len(creators)].UserID}
				if _, err := repos.Heart.Create(ctx, heart); err != nil {
					return err
				}
			}

			for v, vote := range entry.votes {
				vote.SlotID = slot.SlotID
				vote.UserID = creators[v%len(creators)].UserID
				if _, err := repos.Rating.Create(ctx, &vote); err != nil {
					return err
				}
			}

			log.Info("Seeded slot", "slotID", slot.SlotID, "name", slot.Name)
		}

		return nil
	})
}

func seedSlots() []seedSlot {
	return []seedSlot{
		{
			slot: Slot{
				Name:            "The Gardens",
				Description:     "A gentle introduction",
				GameVersion:     LittleBigPlanet1,
				Resources:       ResourceList{"g1", "g2"},
				TeamPick:        true,
				MinimumPlayers:  1,
				MaximumPlayers:  4,
				FirstUploaded:   1224633600000,
				LastUpdated:     1224633600000,
				PlaysLBP1:       12,
				PlaysLBP1Unique: 7,
			},
			hearts: 3,
			votes: []RatedLevel{
				{Rating: ThumbsUp, RatingLBP1: 4},
				{Rating: ThumbsUp, RatingLBP1: 2},
			},
		},
		{
			slot: Slot{
				Name:           "Versus Arena",
				Description:    "Two player battle",
				GameVersion:    LittleBigPlanet2,
				LevelType:      "versus",
				Resources:      ResourceList{"v1"},
				MinimumPlayers: 2,
				MaximumPlayers: 4,
				FirstUploaded:  1295222400000,
				LastUpdated:    1295308800000,
				PlaysLBP2:      5,
			},
			hearts: 1,
			votes: []RatedLevel{
				{Rating: ThumbsDown},
			},
		},
		{
			slot: Slot{
				Name:           "Move Playground",
				Description:    "Bring a controller",
				GameVersion:    LittleBigPlanet3,
				MoveRequired:   true,
				TeamPick:       true,
				MinimumPlayers: 1,
				MaximumPlayers: 2,
				FirstUploaded:  1416355200000,
				LastUpdated:    1416355200000,
			},
		},
	}
}
