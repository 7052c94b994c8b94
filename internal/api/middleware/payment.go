package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/puckdata/internal/services"
	"github.com/jstittsworth/puckdata/pkg/utils"
)

// ReceiptHeader carries the signed receipt token on paid requests.
const ReceiptHeader = "X-Payment-Receipt"

// PaymentDeps wires the gate to the credit services.
type PaymentDeps struct {
	FreeTier *services.FreeTierService
	Ledger   *services.LedgerService
	Receipts *services.ReceiptIssuer
	Logger   *logrus.Logger
}

// PaymentGate enforces the price of one operation. A request passes by
// presenting a receipt token with unspent credits, or by consuming the
// client's free-tier allowance. Everything else gets a 402 carrying
// the price and a fresh invoice ID.
func PaymentGate(deps *PaymentDeps, opKey string, price int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if price <= 0 {
			c.Next()
			return
		}

		if token := c.GetHeader(ReceiptHeader); token != "" {
			receiptID, clientID, err := deps.Receipts.Verify(token)
			if err != nil {
				utils.SendUnauthorized(c, "Invalid payment receipt")
				c.Abort()
				return
			}
			if err := deps.Ledger.Spend(receiptID, opKey, price); err != nil {
				switch {
				case errors.Is(err, services.ErrReceiptExhausted), errors.Is(err, services.ErrReceiptExpired), errors.Is(err, services.ErrReceiptNotFound):
					sendInvoice(c, opKey, price, "Receipt cannot cover this operation")
				default:
					deps.Logger.Errorf("Ledger spend failed for %s: %v", receiptID, err)
					utils.SendInternalError(c, "Failed to process payment")
				}
				c.Abort()
				return
			}
			c.Set("receipt_id", receiptID)
			c.Set("client_id", clientID)
			c.Next()
			return
		}

		clientID := ClientID(c)
		allowed, err := deps.FreeTier.Allow(c.Request.Context(), clientID)
		if err != nil {
			deps.Logger.Errorf("Free-tier check failed for %s: %v", clientID, err)
			utils.SendInternalError(c, "Failed to check request allowance")
			c.Abort()
			return
		}
		if !allowed {
			sendInvoice(c, opKey, price, "Free allowance spent; payment required")
			c.Abort()
			return
		}
		c.Set("client_id", clientID)
		c.Next()
	}
}

func sendInvoice(c *gin.Context, opKey string, price int64, message string) {
	utils.SendPaymentRequired(c, &utils.Payment{
		Operation: opKey,
		Price:     price,
		InvoiceID: uuid.NewString(),
	}, message)
}

// ClientID identifies the caller for metering: an explicit client
// header when present, the remote IP otherwise.
func ClientID(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return c.ClientIP()
}
