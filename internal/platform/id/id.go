// Package id generates opaque identifiers.
package id

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a random UUIDv4 as 32 lowercase hex characters.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return hex.EncodeToString(value[:]), nil
}
