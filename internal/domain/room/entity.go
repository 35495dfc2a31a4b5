package room

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomType = errors.New("room type cannot be empty")
	ErrNegativePrice = errors.New("room price cannot be negative")
	ErrInvalidBeds   = errors.New("bed count must be positive")
)

// Room is provisioned at seed time and never deleted. Availability is
// derived state: true iff no active booking references the room, and only
// the booking engine may flip it.
type Room struct {
	id          int
	roomType    string
	price       decimal.Decimal
	bedCount    int
	level       int
	available   bool
	category    string
	description string
}

func NewRoom(id int, roomType string, price decimal.Decimal, bedCount, level int, available bool, category, description string) (*Room, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if bedCount <= 0 {
		return nil, ErrInvalidBeds
	}

	return &Room{
		id:          id,
		roomType:    roomType,
		price:       price,
		bedCount:    bedCount,
		level:       level,
		available:   available,
		category:    category,
		description: description,
	}, nil
}

func (r *Room) ID() int                { return r.id }
func (r *Room) RoomType() string       { return r.roomType }
func (r *Room) Price() decimal.Decimal { return r.price }
func (r *Room) BedCount() int          { return r.bedCount }
func (r *Room) Level() int             { return r.level }
func (r *Room) Available() bool        { return r.available }
func (r *Room) Category() string       { return r.category }
func (r *Room) Description() string    { return r.description }
