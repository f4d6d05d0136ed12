package utils

import (
	"strings"

	"github.com/google/uuid"
)

// FileHash returns a fresh permanent file identifier. It is generated
// server-side so the client-chosen upload id never names stored files.
func FileHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
