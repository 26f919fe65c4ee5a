package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedStaff creates the staff account that drives status transitions.
func SeedStaff(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding staff: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Staff",
		Role:      "staff",
	}
	return db.Create(&staff).Error
}

// SeedProducts loads the default catalog into an empty products table.
func SeedProducts() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	withMilk := entity.ProductOptions{
		"consume location": {"take away", "in shop"},
		"milk":             {"whole", "semi", "skimmed", "oat"},
		"size":             {"small", "medium", "large"},
	}
	products := []entity.Product{
		{Name: "Espresso", Price: 250, Options: datatypes.NewJSONType(entity.DefaultProductOptions())},
		{Name: "Latte", Price: 400, Options: datatypes.NewJSONType(withMilk)},
		{Name: "Cappuccino", Price: 420, Options: datatypes.NewJSONType(withMilk)},
		{Name: "Hot Chocolate", Price: 380, Options: datatypes.NewJSONType(withMilk)},
		{Name: "Tea", Price: 300, Options: datatypes.NewJSONType(entity.DefaultProductOptions())},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Println("product catalog seeded")
	return nil
}
