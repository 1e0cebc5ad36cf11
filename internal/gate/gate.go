// Package gate tracks temporary unavailability of the generative-service
// integration. Classified failures disable the provider for a cooldown
// window; expiry is lazy, checked against the wall clock on read.
package gate

import (
	"strings"
	"sync"
	"time"
)

// FailureKind labels a classified provider failure.
type FailureKind string

const (
	FailureQuota FailureKind = "quota_exceeded"
	FailureAuth  FailureKind = "auth_invalid"
	FailureOther FailureKind = "other"
)

// Cooldown windows per failure kind. Quota errors clear on billing-cycle
// granularity, auth errors need operator action, so auth waits longer.
const (
	QuotaCooldown = 30 * time.Minute
	AuthCooldown  = 60 * time.Minute
)

// classificationRule maps reason substrings to a failure kind.
// Rules are evaluated in order; first match wins.
type classificationRule struct {
	substrings []string
	kind       FailureKind
}

// defaultRules is the classification table. Kept as data rather than
// conditionals so the heuristic is independently testable.
var defaultRules = []classificationRule{
	{
		substrings: []string{"insufficient_quota", "quota", "billing"},
		kind:       FailureQuota,
	},
	{
		substrings: []string{"auth", "api key", "unauthorized", "invalid_api_key", "401", "403"},
		kind:       FailureAuth,
	},
}

// Gate is a circuit breaker for one provider integration.
// Methods are safe for concurrent use.
type Gate struct {
	mu            sync.Mutex
	disabledUntil time.Time
	lastKind      FailureKind
	lastReason    string
	now           func() time.Time
}

// New creates a Gate using the real clock.
func New() *Gate {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Gate with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Gate {
	return &Gate{now: now}
}

// Classify maps a failure reason to a FailureKind using the rule table.
// Matching is case-insensitive substring search.
func Classify(reason string) FailureKind {
	lower := strings.ToLower(reason)
	for _, rule := range defaultRules {
		for _, s := range rule.substrings {
			if strings.Contains(lower, s) {
				return rule.kind
			}
		}
	}
	return FailureOther
}

// RecordFailure classifies reason and, for quota or auth failures,
// disables the provider for the corresponding cooldown window.
// Other failures leave the gate open so the next request retries.
func (g *Gate) RecordFailure(reason string) FailureKind {
	kind := Classify(reason)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastKind = kind
	g.lastReason = reason

	switch kind {
	case FailureQuota:
		g.disabledUntil = g.now().Add(QuotaCooldown)
	case FailureAuth:
		g.disabledUntil = g.now().Add(AuthCooldown)
	}
	return kind
}

// IsAvailable reports whether the provider may be called. A gate whose
// cooldown has passed self-resets on this check.
func (g *Gate) IsAvailable() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.disabledUntil.IsZero() {
		return true
	}
	if g.now().Before(g.disabledUntil) {
		return false
	}

	// Cooldown elapsed: reset lazily.
	g.disabledUntil = time.Time{}
	g.lastKind = ""
	g.lastReason = ""
	return true
}

// Status reports the current disablement, if any, for diagnostics.
func (g *Gate) Status() (disabled bool, until time.Time, kind FailureKind) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.disabledUntil.IsZero() || !g.now().Before(g.disabledUntil) {
		return false, time.Time{}, ""
	}
	return true, g.disabledUntil, g.lastKind
}
