package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. It backs user ids and
// request trace ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. If the v7 source fails it falls back to
// a random v4.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
