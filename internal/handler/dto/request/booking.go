package request

type CreateBookingRequest struct {
	RoomID int `json:"room_id" binding:"required,min=1"`
}
