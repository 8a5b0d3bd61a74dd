package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, t *domain.AirplaneType) error
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Update(ctx context.Context, t *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *domain.Airplane) error
	List(ctx context.Context, filter domain.AirplaneFilter) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
}

type PGAirplaneTypeRepository struct {
	db DBTX
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert airplane type: %w", mapError(err))
	}
	return nil
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id = $1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	var id int64
	if err := conn(ctx, r.db).QueryRow(ctx, `UPDATE airplane_types SET name = $1 WHERE id = $2 RETURNING id`, t.Name, t.ID).Scan(&id); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type PGAirplaneRepository struct {
	db DBTX
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneSelect = `SELECT a.id, a.name, a.rows, a.seats_in_row, t.id, t.name
FROM airplanes a
JOIN airplane_types t ON t.id = a.airplane_type_id`

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	if err := airplane.Validate(); err != nil {
		return err
	}
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID).Scan(&airplane.ID)
	if err != nil {
		return fmt.Errorf("insert airplane: %w", mapError(err))
	}
	return nil
}

func buildAirplaneListQuery(filter domain.AirplaneFilter) (string, []any) {
	var where whereBuilder
	if filter.Name != "" {
		where.add("a.name = $%d", filter.Name)
	}
	if filter.AirplaneType != "" {
		where.add("t.name ILIKE $%d", containsPattern(filter.AirplaneType))
	}
	return airplaneSelect + where.String() + " ORDER BY a.id", where.args
}

func (r *PGAirplaneRepository) List(ctx context.Context, filter domain.AirplaneFilter) ([]domain.Airplane, error) {
	query, args := buildAirplaneListQuery(filter)
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		a, err := scanAirplane(rows)
		if err != nil {
			return nil, err
		}
		airplanes = append(airplanes, *a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	a, err := scanAirplane(conn(ctx, r.db).QueryRow(ctx, airplaneSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func scanAirplane(row scanner) (*domain.Airplane, error) {
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.Type.ID, &a.Type.Name); err != nil {
		return nil, err
	}
	a.AirplaneTypeID = a.Type.ID
	return &a, nil
}

var (
	_ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
	_ AirplaneRepository     = (*PGAirplaneRepository)(nil)
)
