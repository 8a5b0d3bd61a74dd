package domain

import (
	"math"
	"time"
)

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	FlightID int64
	Row      int
	Seat     int
	OrderID  int64

	// Flight is filled by order listings.
	Flight Flight
}

// SeatKey identifies a physical seat on a flight.
type SeatKey struct {
	FlightID int64
	Row      int
	Seat     int
}

func (t Ticket) SeatKey() SeatKey {
	return SeatKey{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
}

type Page struct {
	Number int
	Size   int
}

// InRange reports whether the page is positive and its offset fits in an int.
func (p Page) InRange() bool {
	return p.Number >= 1 && p.Size >= 1 && p.Number <= math.MaxInt/p.Size
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

type OrderPage struct {
	Orders []Order
	Total  int
	Page   Page
}

func (p OrderPage) HasNext() bool {
	return p.Page.Number*p.Page.Size < p.Total
}

func (p OrderPage) HasPrevious() bool {
	return p.Page.Number > 1
}
