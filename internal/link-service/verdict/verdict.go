// Package verdict decides whether a resource's link is broken from its latest
// link check result.
package verdict

import (
	"time"

	"VCS_Link_Checker/internal/link-service/model"
)

type Verdict int

const (
	// NotBroken is returned when there is no result at all for a resource.
	NotBroken Verdict = iota
	// Unknown: never checked successfully, so neither flagged nor credited.
	Unknown
	Alive
	Broken
)

func (v Verdict) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case Alive:
		return "alive"
	case Broken:
		return "broken"
	default:
		return "not_broken"
	}
}

// Broken reports the tri-state "broken" value exposed by the API: nil for
// Unknown, otherwise whether the verdict is Broken.
func (v Verdict) Broken() *bool {
	if v == Unknown {
		return nil
	}
	b := v == Broken
	return &b
}

// Policy marks a link broken once it has failed at least MinFails consecutive
// checks and has not succeeded within MinAge.
type Policy struct {
	MinFails int
	MinAge   time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MinFails: 3,
		MinAge:   36 * time.Hour,
	}
}

func (p Policy) Classify(result *model.LinkCheckResult, now time.Time) Verdict {
	if result == nil {
		return NotBroken
	}
	if result.LastSuccessful == nil {
		return Unknown
	}
	if result.NumFails >= p.MinFails {
		if result.LastSuccessful == nil || result.LastSuccessful.Before(now.Add(-p.MinAge)) {
			return Broken
		}
	}
	return Alive
}

func (p Policy) IsBroken(result *model.LinkCheckResult, now time.Time) bool {
	return p.Classify(result, now) == Broken
}
