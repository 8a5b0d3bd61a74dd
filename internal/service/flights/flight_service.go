package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, patch FlightPatch) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	Availability(ctx context.Context, id int64) (*domain.Availability, error)
}

type FlightInput struct {
	RouteID       int64     `json:"route"`
	AirplaneID    int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// FlightPatch carries only the fields to change; nil keeps the stored value.
type FlightPatch struct {
	RouteID       *int64     `json:"route"`
	AirplaneID    *int64     `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
}

type FlightService struct {
	repo repository.FlightRepository
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

// List and GetByID always hit the store: tickets_available must reflect the
// tickets committed at read time.
func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	return s.repo.List(ctx, filter)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	flight := &domain.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, patch FlightPatch) (*domain.Flight, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := domain.Flight{
		ID:            id,
		RouteID:       current.RouteID,
		AirplaneID:    current.AirplaneID,
		DepartureTime: current.DepartureTime,
		ArrivalTime:   current.ArrivalTime,
	}
	if patch.RouteID != nil {
		updated.RouteID = *patch.RouteID
	}
	if patch.AirplaneID != nil {
		updated.AirplaneID = *patch.AirplaneID
	}
	if patch.DepartureTime != nil {
		updated.DepartureTime = *patch.DepartureTime
	}
	if patch.ArrivalTime != nil {
		updated.ArrivalTime = *patch.ArrivalTime
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *FlightService) Availability(ctx context.Context, id int64) (*domain.Availability, error) {
	return s.repo.Availability(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
