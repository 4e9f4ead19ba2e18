package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used to tag a conversion run
func GenerateID() string {
	return uuid.New().String()
}
