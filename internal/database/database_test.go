package database

import (
	"lighthouse/config"
	"testing"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCacheConstants(t *testing.T) {
	assert.Equal(t, 1, USER_CACHE_INDEX)
}

func TestDB_StructCreation(t *testing.T) {
	log := logger.New("test")

	db := &DB{
		log: log,
	}

	assert.NotNil(t, db)
	assert.Nil(t, db.SQL)
	assert.NoError(t, db.Close())
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DatabaseHost:     "localhost",
		DatabasePort:     5432,
		DatabaseUser:     "lighthouse",
		DatabasePassword: "secret",
		DatabaseName:     "catalog",
	})

	assert.Equal(t,
		"host=localhost port=5432 user=lighthouse password=secret dbname=catalog sslmode=disable TimeZone=UTC",
		dsn,
	)
}

func TestInitializeCacheDB_DisabledWithoutAddress(t *testing.T) {
	db := &DB{log: logger.New("test")}

	err := db.initializeCacheDB(config.Config{})

	assert.NoError(t, err)
	assert.Nil(t, db.Cache.User)
}

func TestCacheBuilder_DisabledCache(t *testing.T) {
	builder := NewCacheBuilder(nil, 42).WithHash("user")
	assert.Equal(t, "user:42", builder.Key())

	var out map[string]any
	found, err := builder.Get(&out)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrCacheDisabled)

	assert.ErrorIs(t, builder.WithValue("x").Set(), ErrCacheDisabled)
	assert.ErrorIs(t, builder.Delete(), ErrCacheDisabled)
}

func TestMigrateModels(t *testing.T) {
	sql, err := gorm.Open(sqlite.Open("file:migrate_models?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := sql.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := NewWithGorm(sql)
	require.NoError(t, db.MigrateModels())

	for _, table := range []string{"users", "locations", "slots", "hearted_levels", "rated_levels", "visited_levels"} {
		assert.True(t, db.SQL.Migrator().HasTable(table), table)
	}

	assert.True(t, db.SQL.Migrator().HasColumn("slots", "resource_collection"))
	assert.False(t, db.SQL.Migrator().HasColumn("slots", "plays"))
}
