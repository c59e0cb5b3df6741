/*
Package randx provides cryptographically secure identifiers.

Appointment room ids are random (version 4) UUIDs: 122 random bits make a collision between
two allocations practically impossible without any registry lookup.
*/
package randx

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RoomID generates a fresh appointment room identifier.
// It returns an error only when the system random source fails.
func RoomID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate room id: %w", err)
	}
	return id.String(), nil
}

// ConnectionID generates an identifier for a single real-time connection, used in logs.
func ConnectionID() string {
	return uuid.New().String()
}

// UploadKey generates a unique object key for an uploaded file with the given extension.
// The extension is lower-cased and a missing leading dot is added.
func UploadKey(prefix, ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	key := uuid.New().String() + ext
	if prefix == "" {
		return key
	}
	return strings.TrimSuffix(prefix, "/") + "/" + key
}
