package api

import (
	"time"

	"github.com/Domenick1991/airport/internal/domain"
)

// Each entity has up to three shapes: a compact list item, an expanded
// detail and the write model echoed after create/update.

type airportResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func airportView(a domain.Airport) airportResponse {
	return airportResponse{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

type routeWriteResponse struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

type routeListResponse struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type routeDetailResponse struct {
	ID          int64           `json:"id"`
	Source      airportResponse `json:"source"`
	Destination airportResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

func routeWriteView(r domain.Route) routeWriteResponse {
	return routeWriteResponse{ID: r.ID, Source: r.SourceID, Destination: r.DestinationID, Distance: r.Distance}
}

func routeListView(r domain.Route) routeListResponse {
	return routeListResponse{ID: r.ID, Source: r.Source.Name, Destination: r.Destination.Name, Distance: r.Distance}
}

func routeDetailView(r domain.Route) routeDetailResponse {
	return routeDetailResponse{
		ID:          r.ID,
		Source:      airportView(r.Source),
		Destination: airportView(r.Destination),
		Distance:    r.Distance,
	}
}

type crewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func crewView(c domain.Crew) crewResponse {
	return crewResponse{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
}

type airplaneTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func airplaneTypeView(t domain.AirplaneType) airplaneTypeResponse {
	return airplaneTypeResponse{ID: t.ID, Name: t.Name}
}

type airplaneWriteResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"air_plane_type"`
	Capacity     int    `json:"capacity"`
}

type airplaneListResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"air_plane_type"`
	Capacity     int    `json:"capacity"`
}

type airplaneDetailResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Rows         int                  `json:"rows"`
	SeatsInRow   int                  `json:"seats_in_row"`
	AirplaneType airplaneTypeResponse `json:"air_plane_type"`
	Capacity     int                  `json:"capacity"`
}

func airplaneWriteView(a domain.Airplane) airplaneWriteResponse {
	return airplaneWriteResponse{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: a.AirplaneTypeID,
		Capacity:     a.Capacity(),
	}
}

func airplaneListView(a domain.Airplane) airplaneListResponse {
	return airplaneListResponse{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: a.Type.Name,
		Capacity:     a.Capacity(),
	}
}

func airplaneDetailView(a domain.Airplane) airplaneDetailResponse {
	return airplaneDetailResponse{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: airplaneTypeView(a.Type),
		Capacity:     a.Capacity(),
	}
}

type flightWriteResponse struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type flightListResponse struct {
	ID               int64     `json:"id"`
	Route            string    `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	TicketsAvailable int       `json:"tickets_available"`
}

type flightDetailResponse struct {
	ID               int64                `json:"id"`
	Route            routeDetailResponse  `json:"route"`
	Airplane         airplaneListResponse `json:"airplane"`
	DepartureTime    time.Time            `json:"departure_time"`
	ArrivalTime      time.Time            `json:"arrival_time"`
	Duration         string               `json:"duration"`
	TicketsAvailable int                  `json:"tickets_available"`
}

func flightWriteView(f domain.Flight) flightWriteResponse {
	return flightWriteResponse{
		ID:            f.ID,
		Route:         f.RouteID,
		Airplane:      f.AirplaneID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
}

func flightListView(f domain.Flight) flightListResponse {
	return flightListResponse{
		ID:               f.ID,
		Route:            f.Route.Label(),
		Airplane:         f.Airplane.Name,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		AirplaneCapacity: f.Airplane.Capacity(),
		TicketsAvailable: f.TicketsAvailable,
	}
}

func flightDetailView(f domain.Flight) flightDetailResponse {
	return flightDetailResponse{
		ID:               f.ID,
		Route:            routeDetailView(f.Route),
		Airplane:         airplaneListView(f.Airplane),
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Duration:         f.Duration().String(),
		TicketsAvailable: f.TicketsAvailable,
	}
}

type availabilityResponse struct {
	Flight    int64 `json:"flight"`
	Capacity  int   `json:"capacity"`
	Booked    int   `json:"booked"`
	Available int   `json:"tickets_available"`
}

func availabilityView(a domain.Availability) availabilityResponse {
	return availabilityResponse{Flight: a.FlightID, Capacity: a.Capacity, Booked: a.Booked, Available: a.Available}
}

type ticketWriteResponse struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type ticketFlightResponse struct {
	ID            int64     `json:"id"`
	Route         string    `json:"route"`
	Airplane      string    `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

type ticketListResponse struct {
	ID     int64                `json:"id"`
	Row    int                  `json:"row"`
	Seat   int                  `json:"seat"`
	Flight ticketFlightResponse `json:"flight"`
}

type orderWriteResponse struct {
	ID        int64                 `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Tickets   []ticketWriteResponse `json:"tickets"`
}

type orderListResponse struct {
	ID        int64                `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Tickets   []ticketListResponse `json:"tickets"`
}

func orderWriteView(o domain.Order) orderWriteResponse {
	resp := orderWriteResponse{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: make([]ticketWriteResponse, 0, len(o.Tickets))}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticketWriteResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID})
	}
	return resp
}

func orderListView(o domain.Order) orderListResponse {
	resp := orderListResponse{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: make([]ticketListResponse, 0, len(o.Tickets))}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, ticketListResponse{
			ID:   t.ID,
			Row:  t.Row,
			Seat: t.Seat,
			Flight: ticketFlightResponse{
				ID:            t.FlightID,
				Route:         t.Flight.Route.Label(),
				Airplane:      t.Flight.Airplane.Name,
				DepartureTime: t.Flight.DepartureTime,
				ArrivalTime:   t.Flight.ArrivalTime,
			},
		})
	}
	return resp
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

func userView(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, IsStaff: u.IsStaff}
}

// mapSlice applies a projection to every element.
func mapSlice[T, R any](items []T, view func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}
	return out
}
