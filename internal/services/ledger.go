package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jstittsworth/puckdata/internal/models"
	"github.com/jstittsworth/puckdata/pkg/database"
)

var (
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrReceiptExpired   = errors.New("receipt expired")
	ErrReceiptExhausted = errors.New("receipt has insufficient credits")
)

// LedgerService persists credit purchases and spends.
type LedgerService struct {
	db     *database.DB
	logger *logrus.Logger
}

func NewLedgerService(db *database.DB, logger *logrus.Logger) *LedgerService {
	return &LedgerService{db: db, logger: logger}
}

// Migrate creates the ledger tables.
func (s *LedgerService) Migrate() error {
	return s.db.AutoMigrate(&models.Receipt{}, &models.Spend{})
}

// CreatePurchase mints a new receipt row holding credits for a client.
func (s *LedgerService) CreatePurchase(clientID string, credits int64, ttl time.Duration, metadata map[string]interface{}) (*models.Receipt, error) {
	if credits <= 0 {
		return nil, fmt.Errorf("credits must be positive, got %d", credits)
	}
	receipt := &models.Receipt{
		ReceiptID: uuid.NewString(),
		ClientID:  clientID,
		Credits:   credits,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding purchase metadata: %w", err)
		}
		receipt.Metadata = datatypes.JSON(raw)
	}
	if err := s.db.Create(receipt).Error; err != nil {
		return nil, fmt.Errorf("creating receipt: %w", err)
	}
	s.logger.Infof("Issued receipt %s: %d credits for client %s", receipt.ReceiptID, credits, clientID)
	return receipt, nil
}

// Get fetches one receipt by its public ID.
func (s *LedgerService) Get(receiptID string) (*models.Receipt, error) {
	var receipt models.Receipt
	err := s.db.Where("receipt_id = ?", receiptID).First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Spend atomically debits price credits from a receipt and records the
// debit. The guarded UPDATE prevents double-spends under concurrent
// requests.
func (s *LedgerService) Spend(receiptID, operation string, price int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&models.Receipt{}).
			Where("receipt_id = ? AND credits - spent >= ? AND expires_at > ?", receiptID, price, now).
			Update("spent", gorm.Expr("spent + ?", price))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			receipt, err := s.Get(receiptID)
			if err != nil {
				return err
			}
			if receipt.Expired(now) {
				return ErrReceiptExpired
			}
			return ErrReceiptExhausted
		}
		return tx.Create(&models.Spend{
			ReceiptID: receiptID,
			Operation: operation,
			Credits:   price,
		}).Error
	})
}
