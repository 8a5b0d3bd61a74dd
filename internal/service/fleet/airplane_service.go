package fleet

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type AirplaneUseCase interface {
	ListTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateType(ctx context.Context, input AirplaneTypeInput) (*domain.AirplaneType, error)
	UpdateType(ctx context.Context, id int64, patch AirplaneTypePatch) (*domain.AirplaneType, error)
	DeleteType(ctx context.Context, id int64) error

	List(ctx context.Context, filter domain.AirplaneFilter) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
}

type AirplaneTypeInput struct {
	Name string `json:"name"`
}

type AirplaneTypePatch struct {
	Name *string `json:"name"`
}

type AirplaneInput struct {
	Name           string `json:"name"`
	Rows           int    `json:"rows"`
	SeatsInRow     int    `json:"seats_in_row"`
	AirplaneTypeID int64  `json:"air_plane_type"`
}

type AirplaneService struct {
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
}

func NewAirplaneService(types repository.AirplaneTypeRepository, airplanes repository.AirplaneRepository) *AirplaneService {
	return &AirplaneService{types: types, airplanes: airplanes}
}

func (s *AirplaneService) ListTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.types.List(ctx)
}

func (s *AirplaneService) GetType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *AirplaneService) CreateType(ctx context.Context, input AirplaneTypeInput) (*domain.AirplaneType, error) {
	t := &domain.AirplaneType{Name: input.Name}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AirplaneService) UpdateType(ctx context.Context, id int64, patch AirplaneTypePatch) (*domain.AirplaneType, error) {
	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if err := s.types.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AirplaneService) DeleteType(ctx context.Context, id int64) error {
	return s.types.Delete(ctx, id)
}

func (s *AirplaneService) List(ctx context.Context, filter domain.AirplaneFilter) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx, filter)
}

func (s *AirplaneService) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *AirplaneService) Create(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	airplane := &domain.Airplane{
		Name:           input.Name,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

var _ AirplaneUseCase = (*AirplaneService)(nil)
