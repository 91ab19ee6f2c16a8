package request

type CreateActivityRequest struct {
	Name            string  `json:"name" binding:"required"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	Capacity        int     `json:"capacity" binding:"required,gt=0"`
}

type UpdateActivityRequest struct {
	Name            string  `json:"name" binding:"required"`
	Slug            *string `json:"slug,omitempty"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	Capacity        int     `json:"capacity" binding:"required,gt=0"`
}
