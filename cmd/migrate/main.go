package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/jstittsworth/puckdata/internal/models"
	"github.com/jstittsworth/puckdata/pkg/config"
	"github.com/jstittsworth/puckdata/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db, cfg); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	if err := db.AutoMigrate(
		&models.Receipt{},
		&models.Spend{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_receipts_client_id ON receipts(client_id)",
		"CREATE INDEX IF NOT EXISTS idx_receipts_expires_at ON receipts(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_spends_receipt_id ON spends(receipt_id)",
		"CREATE INDEX IF NOT EXISTS idx_spends_operation ON spends(operation)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func dropTables(db *database.DB) error {
	// Drop spends before receipts
	tables := []string{
		"spends",
		"receipts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	return nil
}

// seedData creates a development receipt with a generous credit balance so
// the paid endpoints can be exercised without the purchase flow.
func seedData(db *database.DB, cfg *config.Config) error {
	receipt := &models.Receipt{
		ReceiptID: "dev-seed-receipt",
		ClientID:  "dev-client",
		Credits:   1000,
		Spent:     0,
		ExpiresAt: time.Now().Add(cfg.ReceiptTTL),
		Metadata:  datatypes.JSON(`{"source":"seed"}`),
	}

	if err := db.Create(receipt).Error; err != nil {
		logrus.Warnf("Failed to seed receipt (may already exist): %v", err)
		return nil
	}

	logrus.Infof("Seeded receipt %s with %d credits", receipt.ReceiptID, receipt.Credits)
	return nil
}
