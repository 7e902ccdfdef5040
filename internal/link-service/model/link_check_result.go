package model

import "time"

// CheckState is the position of a resource in the check lifecycle.
type CheckState int

const (
	// CheckStateUnchecked: no completed check and none in flight.
	CheckStateUnchecked CheckState = iota
	// CheckStatePending: a check was handed out and no result came back yet.
	CheckStatePending
	// CheckStateAlive: the latest completed check succeeded.
	CheckStateAlive
	// CheckStateFailing: the latest completed check failed.
	CheckStateFailing
)

func (s CheckState) String() string {
	switch s {
	case CheckStatePending:
		return "pending"
	case CheckStateAlive:
		return "alive"
	case CheckStateFailing:
		return "failing"
	default:
		return "unchecked"
	}
}

// LinkCheckResult is the latest link check state of one resource. Pending is
// not stored: a result is pending exactly when PendingSince is set.
//
// Fields are only changed through NewPendingResult, NewCompletedResult,
// MarkPending and RecordResult so the invariants between them hold.
type LinkCheckResult struct {
	ResourceID     string `gorm:"primaryKey"`
	Alive          *bool
	LastChecked    *time.Time `gorm:"index"`
	LastSuccessful *time.Time
	NumFails       int        `gorm:"not null"`
	PendingSince   *time.Time `gorm:"index"`
	Status         *int
	Reason         *string
}

func (LinkCheckResult) TableName() string {
	return "link_checker_results"
}

// NewPendingResult is the row created when a never-checked resource is handed
// out for checking.
func NewPendingResult(resourceID string, now time.Time) LinkCheckResult {
	return LinkCheckResult{
		ResourceID:   resourceID,
		PendingSince: &now,
	}
}

// NewCompletedResult is the row created when a result arrives for a resource
// that has no row yet.
func NewCompletedResult(resourceID string, alive bool, status *int, reason *string, now time.Time) LinkCheckResult {
	r := LinkCheckResult{ResourceID: resourceID}
	r.RecordResult(alive, status, reason, now)
	return r
}

// MarkPending starts a new check cycle. The check history is kept.
func (r *LinkCheckResult) MarkPending(now time.Time) {
	r.PendingSince = &now
}

// RecordResult folds a completed check into the row. It is not idempotent:
// every failed result adds one to NumFails.
func (r *LinkCheckResult) RecordResult(alive bool, status *int, reason *string, now time.Time) {
	r.Alive = &alive
	r.Status = status
	r.Reason = reason
	r.LastChecked = &now
	if alive {
		r.LastSuccessful = &now
		r.NumFails = 0
	} else {
		r.NumFails++
	}
	r.PendingSince = nil
}

func (r *LinkCheckResult) Pending() bool {
	return r.PendingSince != nil
}

func (r *LinkCheckResult) State() CheckState {
	switch {
	case r.Pending():
		return CheckStatePending
	case r.Alive == nil:
		return CheckStateUnchecked
	case *r.Alive:
		return CheckStateAlive
	default:
		return CheckStateFailing
	}
}
