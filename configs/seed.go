package configs

import (
	"log"

	"foodhub/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo สร้างข้อมูลตัวอย่างสำหรับ dev: ลูกค้า เจ้าของร้าน คนขับ ร้าน + เมนู
// รันเฉพาะตอน SEED_DEMO=true และยังไม่มีร้านในระบบ
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("skip demo seed: restaurants already exist")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	customer := entity.User{
		Email: "customer@demo.local", Password: string(hash),
		Name: "Demo Customer", Phone: "0800000001", Role: entity.RoleCustomer,
		Address: entity.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
	}
	owner := entity.User{
		Email: "owner@demo.local", Password: string(hash),
		Name: "Demo Owner", Phone: "0800000002", Role: entity.RoleRestaurant,
	}
	driver := entity.User{
		Email: "driver@demo.local", Password: string(hash),
		Name: "Demo Driver", Phone: "0800000003", Role: entity.RoleDriver,
	}
	for _, u := range []*entity.User{&customer, &owner, &driver} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	rest := entity.Restaurant{
		Name:        "Golden Wok",
		Description: "Family-run Chinese kitchen",
		Cuisine:     []string{"Chinese", "Noodles"},
		DeliveryTime: "25-35 min",
		DeliveryFee: 299, // 2.99
		MinOrder:    1000,
		Phone:       "0812345678",
		IsOpen:      true,
		OwnerID:     owner.ID,
		Address:     entity.Address{Street: "88 Market Rd", City: "Springfield", State: "IL", ZipCode: "62702"},
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{
			RestaurantID: rest.ID, Name: "Pad See Ew", Description: "Stir-fried flat noodles",
			Price: 1000, Category: "Noodles", IsAvailable: true, IsPopular: true, PreparationTime: 15,
			Addons: []entity.Addon{
				{Name: "Fried Egg", Price: 150},
				{Name: "Extra Chicken", Price: 250},
			},
		},
		{
			RestaurantID: rest.ID, Name: "Spring Rolls", Description: "Crispy vegetable rolls (4 pcs)",
			Price: 550, Category: "Starters", IsAvailable: true, PreparationTime: 10,
		},
		{
			RestaurantID: rest.ID, Name: "Thai Iced Tea", Description: "",
			Price: 350, Category: "Drinks", IsAvailable: true, PreparationTime: 5,
		},
	}
	for i := range menu {
		if err := db.Create(&menu[i]).Error; err != nil {
			return err
		}
	}

	log.Println("demo data seeded")
	return nil
}
