package response

import (
	"time"

	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	SensitiveSaved bool      `json:"sensitiveSaved"`
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ActivityID    uuid.UUID `json:"activityId"`
	ActivityName  string    `json:"activityName"`
	ActivitySlug  string    `json:"activitySlug"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	StartsAt      time.Time `json:"startsAt"`
	Participants  int32     `json:"participants"`
	TotalPrice    int64     `json:"totalPrice"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ActivityID    uuid.UUID `json:"activityId"`
	ActivityName  string    `json:"activityName"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerEmail string    `json:"customerEmail"`
	StartsAt      time.Time `json:"startsAt"`
	Participants  int32     `json:"participants"`
	TotalPrice    int64     `json:"totalPrice"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	mapped := make([]*BookingListItemResponse, len(items))
	for i, item := range items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		mapped[i] = &resp
	}

	result := &BookingListResponse{Items: mapped}
	if next != nil {
		encoded := next.Encode()
		result.NextCursor = &encoded
	}
	return result
}
