package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// Create inserts the order row only; tickets are added with AddTicket
	// inside the same transaction.
	Create(ctx context.Context, order *domain.Order) error
	AddTicket(ctx context.Context, ticket *domain.Ticket) error
	ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.Order, int, error)
}

type PGOrderRepository struct {
	db DBTX
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", mapError(err))
	}
	return nil
}

// insertTicket only inserts when the seat lies inside the flight's airplane
// layout, so the bounds hold even for writers that skip the service checks.
const insertTicket = `INSERT INTO tickets (flight_id, seat_row, seat, order_id)
SELECT f.id, $2::int, $3::int, $4
FROM flights f
JOIN airplanes a ON a.id = f.airplane_id
WHERE f.id = $1 AND $2::int BETWEEN 1 AND a.rows AND $3::int BETWEEN 1 AND a.seats_in_row
RETURNING id`

func (r *PGOrderRepository) AddTicket(ctx context.Context, ticket *domain.Ticket) error {
	err := conn(ctx, r.db).QueryRow(ctx, insertTicket, ticket.FlightID, ticket.Row, ticket.Seat, ticket.OrderID).Scan(&ticket.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewValidationError(domain.NonFieldErrors, "Ticket does not fit the flight's seat layout or the flight does not exist.")
	}
	if err != nil {
		return fmt.Errorf("insert ticket: %w", mapError(err))
	}
	return nil
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.Order, int, error) {
	db := conn(ctx, r.db)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx, `SELECT id, user_id, created_at FROM orders WHERE user_id = $1
ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, page.Size)
	index := make(map[int64]int)
	ids := make([]int64, 0, page.Size)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		o.Tickets = make([]domain.Ticket, 0)
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return orders, total, nil
	}

	tickets, err := r.ticketsForOrders(ctx, db, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, t := range tickets {
		i := index[t.OrderID]
		orders[i].Tickets = append(orders[i].Tickets, t)
	}
	return orders, total, nil
}

func (r *PGOrderRepository) ticketsForOrders(ctx context.Context, db DBTX, orderIDs []int64) ([]domain.Ticket, error) {
	rows, err := db.Query(ctx, `SELECT tk.id, tk.flight_id, tk.seat_row, tk.seat, tk.order_id,
	f.departure_time, f.arrival_time,
	s.name, d.name,
	a.id, a.name, a.rows, a.seats_in_row
FROM tickets tk
JOIN flights f ON f.id = tk.flight_id
JOIN routes r ON r.id = f.route_id
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
WHERE tk.order_id = ANY($1)
ORDER BY tk.seat_row, tk.seat`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		f := &t.Flight
		if err := rows.Scan(&t.ID, &t.FlightID, &t.Row, &t.Seat, &t.OrderID,
			&f.DepartureTime, &f.ArrivalTime,
			&f.Route.Source.Name, &f.Route.Destination.Name,
			&f.Airplane.ID, &f.Airplane.Name, &f.Airplane.Rows, &f.Airplane.SeatsInRow); err != nil {
			return nil, err
		}
		f.ID = t.FlightID
		f.AirplaneID = f.Airplane.ID
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
