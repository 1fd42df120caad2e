package tool

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// GenerateOrderID returns a gateway-visible order reference. UUIDv7 keeps
// references time-ordered; dashes are dropped to stay within gateway limits.
func GenerateOrderID() string {
	return "GEM-" + strings.ToUpper(strings.ReplaceAll(GenerateUUIDV7(), "-", ""))
}
