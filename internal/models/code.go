package models

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCode produces a short asset code of the form "AST-3F9A2C".
// Codes are suggestions only; the user can overwrite them in the form.
func GenerateCode() string {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "AST-" + hex[:6]
}
