package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *AppError   `json:"error,omitempty"`
	Payment *Payment    `json:"payment,omitempty"`
}

// Payment describes what a caller must pay to run a gated operation.
// Returned alongside a 402 so clients can purchase and retry.
type Payment struct {
	Operation string `json:"operation"`
	Price     int64  `json:"price"`
	InvoiceID string `json:"invoice_id"`
}

func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SendError(c *gin.Context, statusCode int, err *AppError) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   err,
	})
}

func SendValidationError(c *gin.Context, message string, details string) {
	SendError(c, http.StatusBadRequest, NewAppError(ErrCodeValidation, message, details))
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, NewAppError(ErrCodeNotFound, message))
}

func SendUnauthorized(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, NewAppError(ErrCodeUnauthorized, message))
}

func SendForbidden(c *gin.Context, message string) {
	SendError(c, http.StatusForbidden, NewAppError(ErrCodeForbidden, message))
}

func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, NewAppError(ErrCodeInternal, message))
}

// SendUpstreamError reports a failed upstream fetch, carrying the
// upstream status code in the details.
func SendUpstreamError(c *gin.Context, message string, details string) {
	SendError(c, http.StatusBadGateway, NewAppError(ErrCodeUpstream, message, details))
}

// SendPaymentRequired returns a 402 with the operation's price and a
// fresh invoice ID the caller can pay against.
func SendPaymentRequired(c *gin.Context, payment *Payment, message string) {
	c.JSON(http.StatusPaymentRequired, Response{
		Success: false,
		Error:   NewAppError(ErrCodePaymentRequired, message),
		Payment: payment,
	})
}
