package repository

import (
	"errors"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

type constraintInfo struct {
	field   string
	message string
}

var constraints = map[string]constraintInfo{
	"unique_route":                    {domain.NonFieldErrors, "Route with this source and destination already exists."},
	"route_distinct_endpoints":        {domain.NonFieldErrors, "Source and destination cannot be the same."},
	"route_positive_distance":         {"distance", "Ensure this value is greater than 0."},
	"airplane_types_name_key":         {"name", "airplane type with this name already exists."},
	"airplanes_name_key":              {"name", "airplane with this name already exists."},
	"airplane_positive_layout":        {domain.NonFieldErrors, "Rows and seats in row must be positive."},
	"users_email_key":                 {"email", "user with this email already exists."},
	"unique_ticket_seat":              {domain.NonFieldErrors, "The fields flight, row, seat must make a unique set."},
	"ticket_positive_seat":            {domain.NonFieldErrors, "Row and seat must be positive."},
	"flight_arrival_after_departure":  {domain.NonFieldErrors, "Arrival time must be later than departure time."},
	"routes_source_id_fkey":           {"source", invalidPK},
	"routes_destination_id_fkey":      {"destination", invalidPK},
	"airplanes_airplane_type_id_fkey": {"air_plane_type", invalidPK},
	"flights_route_id_fkey":           {"route", invalidPK},
	"flights_airplane_id_fkey":        {"airplane", invalidPK},
	"tickets_flight_id_fkey":          {"flight", invalidPK},
	"tickets_order_id_fkey":           {"order", invalidPK},
	"orders_user_id_fkey":             {"user", invalidPK},
}

const invalidPK = "Invalid pk - object does not exist."

// mapError turns driver errors into domain errors. Unknown errors pass through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	info, known := constraints[pgErr.ConstraintName]
	if !known {
		info = constraintInfo{field: domain.NonFieldErrors, message: pgErr.Message}
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return &domain.ConflictError{Field: info.field, Message: info.message}
	case pgForeignKeyViolation, pgCheckViolation:
		return domain.NewValidationError(info.field, info.message)
	}
	return err
}
