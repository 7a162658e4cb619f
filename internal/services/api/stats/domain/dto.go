// Package domain holds DTOs for stats http and service contracts
package domain

// SummaryInput selects the window, since_hours defaults to 24
type SummaryInput struct {
	SinceHours int `json:"since_hours,omitempty" validate:"omitempty,min=1,max=8760" example:"24"`
}

// KindSummary aggregates search events of one kind
type KindSummary struct {
	Kind          string  `json:"kind" example:"substring"`
	Total         int64   `json:"total" example:"120"`
	Found         int64   `json:"found" example:"90"`
	HitRate       float64 `json:"hit_rate" example:"0.75"`
	MeanElapsedUS float64 `json:"mean_elapsed_us" example:"4.2"`
}
