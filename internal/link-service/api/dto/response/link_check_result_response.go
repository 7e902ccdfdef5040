package response

import "time"

type LinkCheckResultResponse struct {
	ResourceID     string     `json:"resource_id"`
	Alive          *bool      `json:"alive"`
	LastChecked    *time.Time `json:"last_checked"`
	LastSuccessful *time.Time `json:"last_successful"`
	NumFails       int        `json:"num_fails"`
	Pending        bool       `json:"pending"`
	PendingSince   *time.Time `json:"pending_since"`
	Status         *int       `json:"status"`
	Reason         *string    `json:"reason"`
	State          string     `json:"state"`
	Broken         *bool      `json:"broken"`
}
