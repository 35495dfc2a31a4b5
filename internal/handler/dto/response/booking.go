package response

import (
	"time"

	"hotel-booking-engine/internal/usecase/queries"
)

type BookingResponse struct {
	BookingID     int64     `json:"booking_id"`
	ClientID      int64     `json:"client_id"`
	ClientName    string    `json:"client_name"`
	RoomID        int       `json:"room_id"`
	RoomType      string    `json:"room_type"`
	BookingDate   time.Time `json:"booking_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		BookingID:     v.ID,
		ClientID:      v.ClientID,
		ClientName:    v.ClientName,
		RoomID:        v.RoomID,
		RoomType:      v.RoomType,
		BookingDate:   v.BookingDate,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
	}
}

func FromBookingViews(views []*queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *FromBookingView(v))
	}
	return out
}
