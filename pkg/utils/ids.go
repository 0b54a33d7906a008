package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// GenerateCode builds a short human-readable code like "TXN-3F2A91BC".
// Codes only need to be unique within a session; the random token makes
// collisions practically impossible.
func GenerateCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateTransactionID generates a sale transaction id
func GenerateTransactionID() string {
	return GenerateCode("TXN")
}

// GenerateDamageID generates a shrinkage record id
func GenerateDamageID() string {
	return GenerateCode("DMG")
}
