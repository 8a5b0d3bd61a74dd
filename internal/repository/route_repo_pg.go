package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

type PGRouteRepository struct {
	db DBTX
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city
FROM routes r
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id`

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	if err != nil {
		return fmt.Errorf("insert route: %w", mapError(err))
	}
	return nil
}

func buildRouteListQuery(filter domain.RouteFilter) (string, []any) {
	var where whereBuilder
	if filter.Source != "" {
		where.add("s.name ILIKE $%d", containsPattern(filter.Source))
	}
	if filter.Destination != "" {
		where.add("d.name ILIKE $%d", containsPattern(filter.Destination))
	}
	return routeSelect + where.String() + " ORDER BY r.id", where.args
}

func (r *PGRouteRepository) List(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	query, args := buildRouteListQuery(filter)
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *route)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := scanRoute(conn(ctx, r.db).QueryRow(ctx, routeSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return route, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoute(row scanner) (*domain.Route, error) {
	var route domain.Route
	if err := row.Scan(&route.ID, &route.Distance,
		&route.Source.ID, &route.Source.Name, &route.Source.ClosestBigCity,
		&route.Destination.ID, &route.Destination.Name, &route.Destination.ClosestBigCity); err != nil {
		return nil, err
	}
	route.SourceID = route.Source.ID
	route.DestinationID = route.Destination.ID
	return &route, nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
