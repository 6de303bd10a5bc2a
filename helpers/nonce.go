// Package helpers contains small request-scoped helpers shared by the
// handlers, including the anti-forgery nonce used by every button callback.
package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Nonce lifetime is two ticks; a nonce issued late in one tick stays valid
// through the next, mirroring how page-embedded checkout tokens behave.
const nonceTick = 12 * time.Hour

// NonceService issues and verifies time-windowed HMAC tokens bound to an
// action string (the checkout action, or the product id for buy now and
// subscription buttons). Stateless, so any instance of the service can verify
// a nonce another instance issued.
type NonceService struct {
	Secret string

	// now is swapped out by tests.
	now func() time.Time
}

// NewNonceService returns a NonceService signing with the given secret.
func NewNonceService(secret string) *NonceService {
	return &NonceService{Secret: secret, now: time.Now}
}

// Generate returns a nonce for the given action in the current tick.
func (n *NonceService) Generate(action string) string {
	return n.tokenFor(action, n.tick())
}

// Verify checks a nonce against the current and previous tick. A stale nonce
// usually means the storefront page was cached; callers report that rather
// than a generic failure.
func (n *NonceService) Verify(nonce, action string) bool {
	if nonce == "" {
		return false
	}
	tick := n.tick()
	for _, t := range []int64{tick, tick - 1} {
		if hmac.Equal([]byte(nonce), []byte(n.tokenFor(action, t))) {
			return true
		}
	}
	return false
}

func (n *NonceService) tick() int64 {
	return n.now().UnixNano() / int64(nonceTick)
}

func (n *NonceService) tokenFor(action string, tick int64) string {
	mac := hmac.New(sha256.New, []byte(n.Secret))
	fmt.Fprintf(mac, "%s|%d", action, tick)
	return hex.EncodeToString(mac.Sum(nil))[:16]
}
