package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resort-backend/models"
	"resort-backend/utils"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "resort_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills the catalog tables on first run. Reference data only;
// bookings and payments are always created through the API.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.RoomOffering{}).Count(&roomCount)
	if roomCount == 0 {
		offerings := []models.RoomOffering{
			{Name: "Standard", BasePrice: 510, Currency: "THB", MaxGuests: 2,
				Amenities: []byte(`["wifi","air conditioning"]`)},
			{Name: "Superior", BasePrice: 780, Currency: "THB", MaxGuests: 3,
				Amenities: []byte(`["wifi","air conditioning","breakfast"]`)},
			{Name: "Deluxe", BasePrice: 1150, Currency: "THB", MaxGuests: 4,
				Amenities: []byte(`["wifi","air conditioning","breakfast","bathtub"]`)},
			{Name: "Family Suite", BasePrice: 1890, Currency: "THB", MaxGuests: 5,
				Amenities: []byte(`["wifi","air conditioning","breakfast","bathtub","living room"]`)},
		}
		if err := DB.Create(&offerings).Error; err != nil {
			log.Printf("warning: failed to seed room offerings: %v", err)
		} else {
			log.Println("Room offerings seeded")
		}
	}

	var eventCount int64
	DB.Model(&models.EventOffering{}).Count(&eventCount)
	if eventCount == 0 {
		offerings := []models.EventOffering{
			{Name: "Garden Pavilion", BasePrice: 2500, MaxCapacity: 200},
			{Name: "Grand Ballroom", BasePrice: 6000, MaxCapacity: 450},
			{Name: "Rooftop Terrace", BasePrice: 3200, MaxCapacity: 120},
		}
		if err := DB.Create(&offerings).Error; err != nil {
			log.Printf("warning: failed to seed event offerings: %v", err)
		} else {
			log.Println("Event offerings seeded")
		}
	}

	var menuCount int64
	DB.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := []models.MenuItem{
			{Name: "Tom Yum Goong", UnitPrice: 220, Category: "mains"},
			{Name: "Pad Thai", UnitPrice: 180, Category: "mains"},
			{Name: "Green Curry", UnitPrice: 195, Category: "mains"},
			{Name: "Mango Sticky Rice", UnitPrice: 120, Category: "desserts"},
			{Name: "Thai Iced Tea", UnitPrice: 65, Category: "drinks"},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Printf("warning: failed to seed menu items: %v", err)
		} else {
			log.Println("Menu items seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.RoomOffering{},
		&models.EventOffering{},
		&models.MenuItem{},
		&models.Booking{},
		&models.PaymentRecord{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
