package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ReceiptIssuer signs and verifies receipt tokens. The token only
// proves possession of a receipt ID; the ledger decides whether that
// receipt still has credits.
type ReceiptIssuer struct {
	secret []byte
}

func NewReceiptIssuer(secret string) *ReceiptIssuer {
	return &ReceiptIssuer{secret: []byte(secret)}
}

type receiptClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// Issue signs a token for a receipt.
func (i *ReceiptIssuer) Issue(receiptID, clientID string, expiresAt time.Time) (string, error) {
	claims := receiptClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        receiptID,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the receipt and
// client IDs.
func (i *ReceiptIssuer) Verify(tokenString string) (receiptID, clientID string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &receiptClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parsing receipt token: %w", err)
	}
	claims, ok := token.Claims.(*receiptClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid receipt token")
	}
	return claims.ID, claims.ClientID, nil
}
