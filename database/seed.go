package database

import (
	"log"

	"store_manager/constants"
	"store_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates a demo store for local development. Safe to run twice.
func SeedData(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte("demo-password"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	owner := model.User{
		Email:    "owner@demo.local",
		Password: string(bytes),
		Name:     "Demo Owner",
		Phone:    "+5491100000000",
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Println("failed to seed owner:", err)
		return
	}

	store := model.Store{
		Name:      "Demo Market",
		Slug:      "demo-market",
		Phone:     "+5491100000001",
		Address:   "Av. Siempre Viva 742",
		Latitude:  -34.6037,
		Longitude: -58.3816,
		Currency:  "ARS",
		IsActive:  true,
		OwnerID:   owner.ID,
	}
	if err := db.Create(&store).Error; err != nil {
		log.Println("failed to seed store:", err)
		return
	}

	db.Create(&model.StoreSettings{
		StoreID:                store.ID,
		AcceptsCash:            true,
		AcceptsTransfer:        true,
		MinAdvanceHours:        2,
		MaxAdvanceDays:         7,
		ImmediateCancelMinutes: 10,
		ScheduledCancelHours:   2,
	})
	db.Create(&model.StoreMember{StoreID: store.ID, UserID: owner.ID, Role: constants.ROLE_OWNER, IsActive: true})

	zones := []model.DeliveryZone{
		{StoreID: store.ID, Name: "Near", MaxDistance: 3, DeliveryFee: 1.5, MinOrder: 8, IsActive: true},
		{StoreID: store.ID, Name: "Mid", MaxDistance: 5, DeliveryFee: 2, MinOrder: 10, IsActive: true},
		{StoreID: store.ID, Name: "Far", MaxDistance: 10, DeliveryFee: 4, MinOrder: 15, IsActive: true},
	}
	for _, zone := range zones {
		db.Create(&zone)
	}

	for day := 1; day <= 6; day++ {
		db.Create(&model.DeliverySlot{StoreID: store.ID, DayOfWeek: day, StartTime: "10:00", EndTime: "12:00", MaxOrdersPerHour: 2, IsActive: true})
		db.Create(&model.DeliverySlot{StoreID: store.ID, DayOfWeek: day, StartTime: "17:00", EndTime: "20:00", MaxOrdersPerHour: 3, IsActive: true})
	}

	category := model.Category{StoreID: store.ID, Name: "Groceries", SortOrder: 0, IsActive: true}
	db.Create(&category)

	products := []model.Product{
		{StoreID: store.ID, CategoryID: &category.ID, Name: "Milk 1L", Price: 2.5, IsAvailable: true, SortOrder: 0},
		{StoreID: store.ID, CategoryID: &category.ID, Name: "Bread", Price: 1.8, IsAvailable: true, SortOrder: 1},
		{StoreID: store.ID, CategoryID: &category.ID, Name: "Eggs x12", Price: 4.2, IsAvailable: true, SortOrder: 2},
	}
	for _, product := range products {
		db.Create(&product)
	}

	log.Println("Seeded demo store 'demo-market'")
}
