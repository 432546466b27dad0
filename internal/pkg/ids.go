package pkg

import "github.com/google/uuid"

// GeneratePlayerID returns an id for a roster entry that has none configured.
func GeneratePlayerID() string {
	return uuid.NewString()
}
