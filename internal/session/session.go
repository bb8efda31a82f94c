package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the opaque per-load identity token scoping which private
// facts this client can see and mutate. Minted once at startup and never
// mutated afterwards; collision is negligible within a demo's lifetime.
type Session struct {
	ID string
}

// New mints a fresh session token from the current timestamp and a random
// suffix. No server round-trip is involved.
func New() Session {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return Session{ID: fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)}
}
