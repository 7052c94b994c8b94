package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/api/middleware"
	"github.com/jstittsworth/puckdata/internal/services"
	"github.com/jstittsworth/puckdata/pkg/config"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// CreditsHandler issues credit receipts. In development this is an
// open faucet; in production purchases arrive through the external
// payment processor, which calls the same ledger.
type CreditsHandler struct {
	ledger   *services.LedgerService
	receipts *services.ReceiptIssuer
	freeTier *services.FreeTierService
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewCreditsHandler(ledger *services.LedgerService, receipts *services.ReceiptIssuer, freeTier *services.FreeTierService, cfg *config.Config, logger *logrus.Logger) *CreditsHandler {
	return &CreditsHandler{
		ledger:   ledger,
		receipts: receipts,
		freeTier: freeTier,
		cfg:      cfg,
		logger:   logger,
	}
}

type purchaseRequest struct {
	Credits   int64  `json:"credits" binding:"required,min=1,max=10000"`
	InvoiceID string `json:"invoice_id"`
}

// Purchase mints a receipt and returns the signed token the buyer
// presents on paid requests.
func (h *CreditsHandler) Purchase(c *gin.Context) {
	if h.cfg.IsProduction() {
		utils.SendForbidden(c, "Direct purchase is disabled in production")
		return
	}

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid purchase request", err.Error())
		return
	}

	clientID := middleware.ClientID(c)
	metadata := map[string]interface{}{"source": "dev-faucet"}
	if req.InvoiceID != "" {
		metadata["invoice_id"] = req.InvoiceID
	}

	receipt, err := h.ledger.CreatePurchase(clientID, req.Credits, h.cfg.ReceiptTTL, metadata)
	if err != nil {
		h.logger.Errorf("Failed to create purchase: %v", err)
		utils.SendInternalError(c, "Failed to create purchase")
		return
	}

	token, err := h.receipts.Issue(receipt.ReceiptID, clientID, receipt.ExpiresAt)
	if err != nil {
		h.logger.Errorf("Failed to sign receipt %s: %v", receipt.ReceiptID, err)
		utils.SendInternalError(c, "Failed to issue receipt")
		return
	}

	utils.SendSuccess(c, gin.H{
		"receipt_id": receipt.ReceiptID,
		"credits":    receipt.Credits,
		"expires_at": receipt.ExpiresAt,
		"token":      token,
	})
}

// Balance reports a receipt's remaining credits and the caller's free
// allowance.
func (h *CreditsHandler) Balance(c *gin.Context) {
	clientID := middleware.ClientID(c)
	remaining, err := h.freeTier.Remaining(c.Request.Context(), clientID)
	if err != nil {
		h.logger.Warnf("Failed to read free allowance for %s: %v", clientID, err)
	}

	result := gin.H{"free_requests_remaining": remaining}

	if token := c.GetHeader(middleware.ReceiptHeader); token != "" {
		receiptID, _, err := h.receipts.Verify(token)
		if err != nil {
			utils.SendUnauthorized(c, "Invalid payment receipt")
			return
		}
		receipt, err := h.ledger.Get(receiptID)
		if err != nil {
			utils.SendNotFound(c, "Receipt not found")
			return
		}
		result["receipt_id"] = receipt.ReceiptID
		result["credits_remaining"] = receipt.Remaining()
		result["expires_at"] = receipt.ExpiresAt
	}

	utils.SendSuccess(c, result)
}
