package fleet

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type CrewUseCase interface {
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, input CrewInput) (*domain.Crew, error)
	Update(ctx context.Context, id int64, patch CrewPatch) (*domain.Crew, error)
	Delete(ctx context.Context, id int64) error
}

type CrewInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CrewPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type CrewService struct {
	repo repository.CrewRepository
}

func NewCrewService(repo repository.CrewRepository) *CrewService {
	return &CrewService{repo: repo}
}

func (s *CrewService) List(ctx context.Context) ([]domain.Crew, error) {
	return s.repo.List(ctx)
}

func (s *CrewService) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CrewService) Create(ctx context.Context, input CrewInput) (*domain.Crew, error) {
	crew := &domain.Crew{FirstName: input.FirstName, LastName: input.LastName}
	if err := s.checkDuplicate(ctx, crew); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (s *CrewService) Update(ctx context.Context, id int64, patch CrewPatch) (*domain.Crew, error) {
	crew, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		crew.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		crew.LastName = *patch.LastName
	}

	if err := s.checkDuplicate(ctx, crew); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (s *CrewService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkDuplicate is a read-then-write check with no storage constraint behind
// it: two concurrent writes of the same name can both pass.
func (s *CrewService) checkDuplicate(ctx context.Context, crew *domain.Crew) error {
	if err := crew.Validate(); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByName(ctx, crew.FirstName, crew.LastName, crew.ID)
	if err != nil {
		return fmt.Errorf("check crew name: %w", err)
	}
	if exists {
		return domain.NewValidationError(domain.NonFieldErrors, domain.ErrDuplicateCrewMessage)
	}
	return nil
}

var _ CrewUseCase = (*CrewService)(nil)
