package request

// GetResourcesToCheckRequest intervals are whole hours, at most ten years.
type GetResourcesToCheckRequest struct {
	N                 *int `json:"n"`
	SinceHours        *int `json:"since_hours" binding:"omitempty,gt=0,lte=87600"`
	PendingSinceHours *int `json:"pending_since_hours" binding:"omitempty,gt=0,lte=87600"`
}

type UpsertResultRequest struct {
	ResourceID string  `json:"resource_id" binding:"required"`
	Alive      *bool   `json:"alive" binding:"required"`
	Status     *int    `json:"status" binding:"omitempty,gte=0"`
	Reason     *string `json:"reason"`
}
