package cmd

import (
	"fmt"

	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenStore connects the order record store selected by config.StoreDriver and
// returns its unit of work factory with a function releasing the connection.
func OpenStore(config Config) (ports.UnitOfWorkFactory, func() error, error) {
	switch config.StoreDriver {
	case StoreDriverMemory:
		store, err := memory.NewStore()
		if err != nil {
			return nil, nil, err
		}
		return memory.NewUnitOfWorkFactory(store), func() error { return nil }, nil

	case StoreDriverPostgres:
		db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)

		if err = orderrepo.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", config.StoreDriver)
	}
}
