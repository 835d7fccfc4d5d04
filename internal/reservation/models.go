package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator gera o identificador de uma nova reserva.
type IDGenerator func() (uuid.UUID, error)

type Room struct {
	Number int     `json:"number"`
	Type   string  `json:"type"` // Single, Double, Suite...
	Rate   float64 `json:"rate"` // diária
}

func (r Room) String() string {
	return fmt.Sprintf("Room %d - %s - $%g", r.Number, r.Type, r.Rate)
}

type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Reservation struct {
	ID        uuid.UUID `json:"id"`
	Room      Room      `json:"room"`
	Guest     Guest     `json:"guest"`
	CheckIn   Date      `json:"check_in"`
	CheckOut  Date      `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Reservation) Range() DateRange {
	return DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

func (r Reservation) Nights() int {
	return r.Range().Nights()
}

// Total é a diária fixa do quarto vezes o número de noites.
func (r Reservation) Total() float64 {
	return float64(r.Nights()) * r.Room.Rate
}

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidDate      = errors.New("invalid date")
	ErrDuplicateRoom    = errors.New("duplicate room number")
	ErrInvalidRate      = errors.New("invalid room rate")
)
