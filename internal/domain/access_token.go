package domain

import (
	"strings"
	"time"
)

// AccessToken authenticates an API caller and carries the subscription tier
// that gates template visibility. Abilities is a comma-separated claim list;
// the tier claim has the form "tier:paid".
type AccessToken struct {
	ID        int64
	TokenHash string
	UserID    int64
	Abilities string
	ExpiresAt *time.Time
}

// Tier extracts the subscription tier claim, defaulting to "free" when the
// token carries none.
func (t AccessToken) Tier() string {
	for _, ability := range strings.Split(t.Abilities, ",") {
		ability = strings.TrimSpace(ability)
		if rest, ok := strings.CutPrefix(ability, "tier:"); ok && rest != "" {
			return rest
		}
	}
	return "free"
}

// Expired reports whether the token has an expiry in the past.
func (t AccessToken) Expired() bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(time.Now())
}
