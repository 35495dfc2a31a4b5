package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type RoomView struct {
	ID          int             `json:"room_id"`
	RoomType    string          `json:"room_type"`
	Price       decimal.Decimal `json:"price"`
	BedCount    int             `json:"bed_count"`
	Level       int             `json:"level"`
	Available   bool            `json:"availability"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

type ClientView struct {
	ID    int64  `json:"client_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingView joins the booking row with the client name and room type the
// way the administrative console displays it.
type BookingView struct {
	ID            int64     `json:"booking_id"`
	ClientID      int64     `json:"client_id"`
	ClientName    string    `json:"client_name"`
	RoomID        int       `json:"room_id"`
	RoomType      string    `json:"room_type"`
	BookingDate   time.Time `json:"booking_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}
