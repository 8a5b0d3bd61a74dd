package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// SeatLayouts returns the airplane layout of each existing flight in ids.
	SeatLayouts(ctx context.Context, ids []int64) (map[int64]domain.SeatLayout, error)
	Availability(ctx context.Context, id int64) (*domain.Availability, error)
}

type PGFlightRepository struct {
	db DBTX
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// tickets_available is derived from a single aggregate join on every read.
const flightSelect = `SELECT f.id, f.departure_time, f.arrival_time,
	r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city,
	a.id, a.name, a.rows, a.seats_in_row,
	t.id, t.name,
	a.rows * a.seats_in_row - COUNT(tk.id) AS tickets_available
FROM flights f
JOIN routes r ON r.id = f.route_id
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
JOIN airplane_types t ON t.id = a.airplane_type_id
LEFT JOIN tickets tk ON tk.flight_id = f.id`

const flightGroupBy = ` GROUP BY f.id, r.id, s.id, d.id, a.id, t.id`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).Scan(&flight.ID)
	if err != nil {
		return fmt.Errorf("insert flight: %w", mapError(err))
	}
	return nil
}

// updateFlight refuses to move a flight onto an airplane whose layout does
// not hold the tickets already booked on it.
const updateFlight = `UPDATE flights SET route_id = $1, airplane_id = $2, departure_time = $3, arrival_time = $4
WHERE id = $5 AND NOT EXISTS (
	SELECT 1 FROM tickets tk
	JOIN airplanes a ON a.id = $2
	WHERE tk.flight_id = $5 AND (tk.seat_row > a.rows OR tk.seat > a.seats_in_row)
)
RETURNING id`

const errAirplaneTooSmall = "Airplane layout does not fit the tickets already booked on this flight."

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	if err := flight.Validate(); err != nil {
		return err
	}
	db := conn(ctx, r.db)
	var id int64
	err := db.QueryRow(ctx, updateFlight,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id = $1)`, flight.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check flight: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.NewValidationError("airplane", errAirplaneTooSmall)
	}
	if err != nil {
		return fmt.Errorf("update flight: %w", mapError(err))
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildFlightListQuery(filter domain.FlightFilter) (string, []any) {
	var where whereBuilder
	if filter.Date != nil {
		day := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		where.add("f.departure_time >= $%d", day)
		where.add("f.departure_time < $%d", day.AddDate(0, 0, 1))
	}
	if filter.Airplane != "" {
		where.add("a.name ILIKE $%d", containsPattern(filter.Airplane))
	}
	if filter.Source != "" {
		where.add("s.name ILIKE $%d", containsPattern(filter.Source))
	}
	if filter.Destination != "" {
		where.add("d.name ILIKE $%d", containsPattern(filter.Destination))
	}
	return flightSelect + where.String() + flightGroupBy + " ORDER BY f.departure_time, f.id", where.args
}

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	query, args := buildFlightListQuery(filter)
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(conn(ctx, r.db).QueryRow(ctx, flightSelect+` WHERE f.id = $1`+flightGroupBy, id))
	if err != nil {
		return nil, mapError(err)
	}
	return f, nil
}

func (r *PGFlightRepository) SeatLayouts(ctx context.Context, ids []int64) (map[int64]domain.SeatLayout, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT f.id, a.rows, a.seats_in_row FROM flights f JOIN airplanes a ON a.id = f.airplane_id WHERE f.id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	layouts := make(map[int64]domain.SeatLayout, len(ids))
	for rows.Next() {
		var (
			id     int64
			layout domain.SeatLayout
		)
		if err := rows.Scan(&id, &layout.Rows, &layout.SeatsInRow); err != nil {
			return nil, err
		}
		layouts[id] = layout
	}
	return layouts, rows.Err()
}

func (r *PGFlightRepository) Availability(ctx context.Context, id int64) (*domain.Availability, error) {
	var (
		layout domain.SeatLayout
		booked int
	)
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT a.rows, a.seats_in_row, COUNT(tk.id)
FROM flights f
JOIN airplanes a ON a.id = f.airplane_id
LEFT JOIN tickets tk ON tk.flight_id = f.id
WHERE f.id = $1
GROUP BY a.id`, id).Scan(&layout.Rows, &layout.SeatsInRow, &booked)
	if err != nil {
		return nil, mapError(err)
	}
	av := domain.NewAvailability(id, layout, booked)
	return &av, nil
}

func scanFlight(row scanner) (*domain.Flight, error) {
	var f domain.Flight
	route := &f.Route
	plane := &f.Airplane
	if err := row.Scan(&f.ID, &f.DepartureTime, &f.ArrivalTime,
		&route.ID, &route.Distance,
		&route.Source.ID, &route.Source.Name, &route.Source.ClosestBigCity,
		&route.Destination.ID, &route.Destination.Name, &route.Destination.ClosestBigCity,
		&plane.ID, &plane.Name, &plane.Rows, &plane.SeatsInRow,
		&plane.Type.ID, &plane.Type.Name,
		&f.TicketsAvailable); err != nil {
		return nil, err
	}
	route.SourceID = route.Source.ID
	route.DestinationID = route.Destination.ID
	plane.AirplaneTypeID = plane.Type.ID
	f.RouteID = route.ID
	f.AirplaneID = plane.ID
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
