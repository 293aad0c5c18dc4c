package seeders

import (
	"fmt"

	"github.com/shashiranjanraj/opsdash/app/models"
	"github.com/shashiranjanraj/opsdash/pkg/logger"
	"gorm.io/gorm"
)

// Reset hard-deletes every seeded row so the next run starts from an empty
// dataset instead of piling onto the previous one. Children go first so no
// foreign key dangles mid-reset.
func Reset(db *gorm.DB) error {
	tables := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Supplier{},
		&models.User{},
	}
	for _, table := range tables {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(table).Error
		if err != nil {
			return fmt.Errorf("reset %T: %w", table, err)
		}
	}
	logger.Info("seed: dataset reset")
	return nil
}
