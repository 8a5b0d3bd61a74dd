package domain

import (
	"fmt"
	"strings"
)

type AirplaneType struct {
	ID   int64
	Name string
}

func (t *AirplaneType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("name", "This field may not be blank.")
	}
	return nil
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64

	// Type is filled by read queries only.
	Type AirplaneType
}

func (a *Airplane) Validate() error {
	v := &ValidationError{}
	if strings.TrimSpace(a.Name) == "" {
		v.Add("name", "This field may not be blank.")
	}
	if a.Rows < 1 {
		v.Add("rows", "Ensure this value is greater than or equal to 1.")
	}
	if a.SeatsInRow < 1 {
		v.Add("seats_in_row", "Ensure this value is greater than or equal to 1.")
	}
	if a.AirplaneTypeID <= 0 {
		v.Add("air_plane_type", "This field is required.")
	}
	return v.OrNil()
}

func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a Airplane) Layout() SeatLayout {
	return SeatLayout{Rows: a.Rows, SeatsInRow: a.SeatsInRow}
}

type AirplaneFilter struct {
	Name         string
	AirplaneType string
}

// SeatLayout is the part of an airplane a ticket is checked against.
type SeatLayout struct {
	Rows       int
	SeatsInRow int
}

func (l SeatLayout) Capacity() int {
	return l.Rows * l.SeatsInRow
}

// ValidateTicket checks 1 <= row <= Rows and 1 <= seat <= SeatsInRow.
func ValidateTicket(row, seat int, layout SeatLayout) error {
	v := &ValidationError{}
	if row < 1 || row > layout.Rows {
		v.Add("row", fmt.Sprintf("row must be in range (1, %d)", layout.Rows))
	}
	if seat < 1 || seat > layout.SeatsInRow {
		v.Add("seat", fmt.Sprintf("seat must be in range (1, %d)", layout.SeatsInRow))
	}
	return v.OrNil()
}
