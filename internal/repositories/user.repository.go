package repositories

import (
	"context"
	"errors"
	"lighthouse/internal/database"
	. "lighthouse/internal/models"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY = 24 * time.Hour
	USER_CACHE_PREFIX = "user"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID int) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

// GetByID resolves a creator. Missing users return nil without an error.
func (r *userRepository) GetByID(ctx context.Context, userID int) (*User, error) {
	log := r.log.Function("GetByID")

	if userID <= 0 {
		return nil, nil
	}

	var user User
	found, err := r.cacheBuilder(ctx, userID).Get(&user)
	if err != nil && !errors.Is(err, database.ErrCacheDisabled) {
		log.Warn("failed to read user from cache", "userID", userID, "error", err)
	}
	if found {
		return &user, nil
	}

	if err := r.db.Session(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get user by id", err, "userID", userID)
	}

	if err := r.cacheBuilder(ctx, userID).WithStruct(user).WithTTL(USER_CACHE_EXPIRY).Set(); err != nil &&
		!errors.Is(err, database.ErrCacheDisabled) {
		log.Warn("failed to add user to cache", "userID", userID, "error", err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) (*User, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(user).Error; err != nil {
		return nil, log.Err("failed to create user", err, "username", user.Username)
	}

	return user, nil
}

func (r *userRepository) cacheBuilder(ctx context.Context, userID int) *database.CacheBuilder {
	return database.NewCacheBuilder(r.db.Cache.User, userID).
		WithHash(USER_CACHE_PREFIX).
		WithContext(ctx)
}
