package controllers

import (
	"lighthouse/config"
	"lighthouse/internal/repositories"
	"lighthouse/internal/services"

	slotController "lighthouse/internal/controllers/slots"
)

type Controllers struct {
	Slot slotController.SlotControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	config config.Config,
) Controllers {
	return Controllers{
		Slot: slotController.New(repos, services, config),
	}
}
