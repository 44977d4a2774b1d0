package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReferenceNo generates a unique reference number
func GenerateReferenceNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
