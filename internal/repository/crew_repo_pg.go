package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) error
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Update(ctx context.Context, crew *domain.Crew) error
	Delete(ctx context.Context, id int64) error
	// ExistsByName reports whether another crew (id != excludeID) has exactly this name.
	ExistsByName(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error)
}

type PGCrewRepository struct {
	db DBTX
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	if err := crew.Validate(); err != nil {
		return err
	}
	err := conn(ctx, r.db).QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
	if err != nil {
		return fmt.Errorf("insert crew: %w", mapError(err))
	}
	return nil
}

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, first_name, last_name FROM crews ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT id, first_name, last_name FROM crews WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *PGCrewRepository) Update(ctx context.Context, crew *domain.Crew) error {
	if err := crew.Validate(); err != nil {
		return err
	}
	var id int64
	err := conn(ctx, r.db).QueryRow(ctx, `UPDATE crews SET first_name = $1, last_name = $2 WHERE id = $3 RETURNING id`,
		crew.FirstName, crew.LastName, crew.ID).Scan(&id)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCrewRepository) ExistsByName(ctx context.Context, firstName, lastName string, excludeID int64) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM crews WHERE first_name = $1 AND last_name = $2 AND id <> $3)`,
		firstName, lastName, excludeID).Scan(&exists)
	return exists, err
}

var _ CrewRepository = (*PGCrewRepository)(nil)
