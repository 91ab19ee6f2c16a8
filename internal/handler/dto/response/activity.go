package response

import (
	"time"

	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ActivityResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	DurationMinutes int32     `json:"durationMinutes"`
	Price           float64   `json:"price"`
	Capacity        int32     `json:"capacity"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromActivityView(view *queries.ActivityView) *ActivityResponse {
	var resp ActivityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromActivityViews(views []*queries.ActivityView) []*ActivityResponse {
	result := make([]*ActivityResponse, len(views))
	for i, v := range views {
		result[i] = FromActivityView(v)
	}
	return result
}
