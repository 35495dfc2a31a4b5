package response

import (
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	RoomID      int             `json:"room_id"`
	RoomType    string          `json:"room_type"`
	Price       decimal.Decimal `json:"price"`
	BedCount    int             `json:"bed_count"`
	Level       int             `json:"level"`
	Available   bool            `json:"availability"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		RoomID:      v.ID,
		RoomType:    v.RoomType,
		Price:       v.Price,
		BedCount:    v.BedCount,
		Level:       v.Level,
		Available:   v.Available,
		Category:    v.Category,
		Description: v.Description,
	}
}

func FromRoomViews(views []*queries.RoomView) []RoomResponse {
	out := make([]RoomResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *FromRoomView(v))
	}
	return out
}
