package airports

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type AirportUseCase interface {
	CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error)
	ListRoutes(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
}

type AirportInput struct {
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type RouteInput struct {
	SourceID      int64 `json:"source"`
	DestinationID int64 `json:"destination"`
	Distance      int   `json:"distance"`
}

type AirportService struct {
	airports repository.AirportRepository
	routes   repository.RouteRepository
}

func NewAirportService(airports repository.AirportRepository, routes repository.RouteRepository) *AirportService {
	return &AirportService{airports: airports, routes: routes}
}

func (s *AirportService) CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	airport := &domain.Airport{Name: input.Name, ClosestBigCity: input.ClosestBigCity}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *AirportService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *AirportService) CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error) {
	route := &domain.Route{
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
		Distance:      input.Distance,
	}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *AirportService) ListRoutes(ctx context.Context, filter domain.RouteFilter) ([]domain.Route, error) {
	return s.routes.List(ctx, filter)
}

func (s *AirportService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

var _ AirportUseCase = (*AirportService)(nil)
