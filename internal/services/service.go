package services

import (
	"lighthouse/internal/database"
	"lighthouse/internal/repositories"
)

type Service struct {
	Transaction    *TransactionService
	SlotStatistics SlotStatisticsService
}

func New(db database.DB, repos repositories.Repository) Service {
	return Service{
		Transaction:    NewTransactionService(db),
		SlotStatistics: NewSlotStatisticsService(repos),
	}
}
