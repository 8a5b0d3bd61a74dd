package domain

import "time"

type Flight struct {
	ID            int64
	RouteID       int64
	AirplaneID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time

	// Filled by read queries. TicketsAvailable is computed on every read.
	Route            Route
	Airplane         Airplane
	TicketsAvailable int
}

// Validate rejects flights that do not arrive strictly after departure.
func (f *Flight) Validate() error {
	v := &ValidationError{}
	if f.RouteID <= 0 {
		v.Add("route", "This field is required.")
	}
	if f.AirplaneID <= 0 {
		v.Add("airplane", "This field is required.")
	}
	if f.DepartureTime.IsZero() {
		v.Add("departure_time", "This field is required.")
	}
	if f.ArrivalTime.IsZero() {
		v.Add("arrival_time", "This field is required.")
	}
	if !f.DepartureTime.IsZero() && !f.ArrivalTime.IsZero() && !f.ArrivalTime.After(f.DepartureTime) {
		v.Add(NonFieldErrors, "Arrival time must be later than departure time.")
	}
	return v.OrNil()
}

func (f Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}

// Availability is capacity minus the tickets booked at read time.
type Availability struct {
	FlightID  int64
	Capacity  int
	Booked    int
	Available int
}

func NewAvailability(flightID int64, layout SeatLayout, booked int) Availability {
	capacity := layout.Capacity()
	return Availability{
		FlightID:  flightID,
		Capacity:  capacity,
		Booked:    booked,
		Available: capacity - booked,
	}
}

type FlightFilter struct {
	// Date matches the UTC calendar day of departure.
	Date        *time.Time
	Airplane    string
	Source      string
	Destination string
}
