package configs

import (
	"foodhub/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{}, &entity.Addon{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.LoyaltyTransaction{},
		&entity.Favorite{},
		&entity.Review{},
		&entity.Notification{},
	)
}
