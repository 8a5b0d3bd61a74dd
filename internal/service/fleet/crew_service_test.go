package fleet

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCrewService_Create(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)
	ctx := context.Background()

	repo.On("ExistsByName", ctx, "John", "Doe", int64(0)).Return(false, nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Crew")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Crew).ID = 1
	}).Return(nil).Once()

	crew, err := service.Create(ctx, CrewInput{FirstName: "John", LastName: "Doe"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), crew.ID)
	assert.Equal(t, "John Doe", crew.FullName())
	repo.AssertExpectations(t)
}

func TestCrewService_Create_Duplicate(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)
	ctx := context.Background()

	repo.On("ExistsByName", ctx, "John", "Doe", int64(0)).Return(true, nil).Once()

	crew, err := service.Create(ctx, CrewInput{FirstName: "John", LastName: "Doe"})

	assert.Nil(t, crew)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{domain.ErrDuplicateCrewMessage}, verr.Fields[domain.NonFieldErrors])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrewService_Create_BlankName(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)

	_, err := service.Create(context.Background(), CrewInput{FirstName: " ", LastName: "Doe"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "first_name")
	repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCrewService_Update_ExcludesSelf(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(4)).Return(&domain.Crew{ID: 4, FirstName: "John", LastName: "Doe"}, nil).Once()
	repo.On("ExistsByName", ctx, "John", "Smith", int64(4)).Return(false, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(c *domain.Crew) bool {
		return c.ID == 4 && c.LastName == "Smith"
	})).Return(nil).Once()

	last := "Smith"
	crew, err := service.Update(ctx, 4, CrewPatch{LastName: &last})

	require.NoError(t, err)
	assert.Equal(t, "John Smith", crew.FullName())
	repo.AssertExpectations(t)
}

func TestCrewService_Update_DuplicateOfAnother(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(&domain.Crew{ID: 5, FirstName: "Jane", LastName: "Doe"}, nil).Once()
	repo.On("ExistsByName", ctx, "John", "Doe", int64(5)).Return(true, nil).Once()

	first := "John"
	_, err := service.Update(ctx, 5, CrewPatch{FirstName: &first})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCrewService_Delete_NotFound(t *testing.T) {
	repo := &MockCrewRepository{}
	service := NewCrewService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(9)).Return(domain.ErrNotFound).Once()

	assert.ErrorIs(t, service.Delete(ctx, 9), domain.ErrNotFound)
}
