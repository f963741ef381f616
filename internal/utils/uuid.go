package utils

import "github.com/google/uuid"

// IDGenerator produces request-scoped identifiers such as trace ids.
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator of time-ordered UUIDv7 strings.
// A random v4 id is returned if the v7 clock source fails.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
