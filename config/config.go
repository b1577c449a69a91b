package config

import (
	"log"
	"os"

	"kanael-cafe/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs the admin session cookie and the cart cookie.
var JWTSecret []byte

// AdminPasswordHash is the bcrypt hash the admin login checks against.
var AdminPasswordHash []byte

// Load reads .env (if present) and resolves secrets from the environment.
func Load() {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "kanael_cafe_dev_secret"))

	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "kanael")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	AdminPasswordHash = hash
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "kanael.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = DB.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Message{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedMenu()

	log.Println("✅ Database connected and migrated successfully")
}

// seedMenu loads the demo catalog on first startup. An already-populated
// catalog is left alone.
func seedMenu() {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	demo := []models.MenuItem{
		// Desserts
		{Name: "Signature Chocolate Cake", Description: "Rich dark chocolate sponge layered with silky ganache.", Price: 7.99, Category: "Dessert"},
		{Name: "Strawberry Cheesecake", Description: "Creamy vanilla base with biscuit crust and fresh strawberry topping.", Price: 6.50, Category: "Dessert"},
		{Name: "Vanilla Ice Cream", Description: "Madagascan vanilla bean ice cream, smooth and classic.", Price: 3.50, Category: "Dessert"},
		{Name: "Luxury Chocolate Mousse", Description: "Light, airy chocolate mousse with a dark chocolate finish.", Price: 5.80, Category: "Dessert"},
		{Name: "Caramel Pudding", Description: "Soft, silky custard topped with warm caramel.", Price: 4.90, Category: "Dessert"},
		// Drinks
		{Name: "Iced Caramel Latte", Description: "Smooth espresso shaken with cold milk and caramel drizzle.", Price: 4.25, Category: "Drink"},
		{Name: "Caramel Latte (Hot)", Description: "Velvety espresso with steamed milk and caramel syrup.", Price: 4.10, Category: "Drink"},
		{Name: "Iced Vanilla Latte", Description: "Cold milk, espresso and vanilla syrup over ice.", Price: 4.30, Category: "Drink"},
		{Name: "Matcha Latte", Description: "Japanese matcha whisked with warm milk.", Price: 4.80, Category: "Drink"},
		{Name: "Hot Chocolate", Description: "Creamy cocoa topped with fresh whipped cream.", Price: 3.90, Category: "Drink"},
		{Name: "Berry Iced Tea", Description: "Refreshing iced tea infused with berry flavours.", Price: 3.20, Category: "Drink"},
		{Name: "Espresso Shot", Description: "Strong, bold, classic espresso.", Price: 2.20, Category: "Drink"},
		// Brunch
		{Name: "Kanael Brunch Waffle", Description: "Crispy golden waffle topped with fresh berries and maple syrup.", Price: 9.50, Category: "Brunch"},
		{Name: "Avocado Toast", Description: "Smashed avocado on toasted sourdough with chilli flakes.", Price: 7.50, Category: "Brunch"},
		{Name: "Breakfast Granola Cup", Description: "Honey granola layered with yogurt and seasonal berries.", Price: 5.00, Category: "Brunch"},
		{Name: "Croissant & Jam", Description: "Flaky butter croissant served with strawberry jam.", Price: 4.20, Category: "Brunch"},
		{Name: "Pancake Stack", Description: "Fluffy pancakes drizzled with maple syrup.", Price: 7.80, Category: "Brunch"},
		{Name: "Banana & Nutella Waffle", Description: "Warm waffle topped with sliced banana and Nutella drizzle.", Price: 8.90, Category: "Brunch"},
	}

	if err := DB.Create(&demo).Error; err != nil {
		log.Fatal("Failed to seed demo menu:", err)
	}
	log.Printf("Seeded %d demo menu items", len(demo))
}
