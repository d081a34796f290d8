package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "modelmatrix/internal/errors"
	"modelmatrix/internal/model"
)

func TestUserService_SignIn(t *testing.T) {
	firstSeen := time.Now().Add(-30 * 24 * time.Hour)
	repo := new(MockUserRepository)
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.User{
		ID:        7,
		Email:     "buyer@example.com",
		Name:      "Buyer",
		Role:      model.RoleUser,
		CreatedAt: firstSeen,
		LastLogin: time.Now(),
	}, nil)

	svc := NewUserService(repo, nil)
	user, err := svc.SignIn(context.Background(), &model.User{
		Email: "buyer@example.com",
		Name:  "Buyer",
	})

	assert.NoError(t, err)
	// createdAt keeps its insert-time value across sign-ins
	assert.Equal(t, firstSeen, user.CreatedAt)
	assert.WithinDuration(t, time.Now(), user.LastLogin, time.Minute)

	// a missing role defaults before the upsert
	sent := repo.Calls[0].Arguments.Get(1).(*model.User)
	assert.Equal(t, model.RoleUser, sent.Role)
	repo.AssertExpectations(t)
}

func TestUserService_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "buyer@example.com").Return(&model.User{Email: "buyer@example.com"}, nil)

		svc := NewUserService(repo, nil)
		user, err := svc.GetByEmail(context.Background(), "buyer@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "buyer@example.com", user.Email)
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		user, err := svc.GetByEmail(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_RoleFor(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "admin@example.com").Return(&model.User{Email: "admin@example.com", Role: model.RoleAdmin}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(repo, nil)

	role, err := svc.RoleFor(context.Background(), "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	// unknown callers get the empty role, not an error
	role, err = svc.RoleFor(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Empty(t, role)
}

func TestUserService_UpdateProfile(t *testing.T) {
	newName := "Buyer Renamed"

	t.Run("updates mutable fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateProfile", mock.Anything, "buyer@example.com", map[string]interface{}{"name": newName}).Return(nil)
		repo.On("FindByEmail", mock.Anything, "buyer@example.com").Return(&model.User{Email: "buyer@example.com", Name: newName}, nil)

		svc := NewUserService(repo, nil)
		user, err := svc.UpdateProfile(context.Background(), "buyer@example.com", ProfileUpdate{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, newName, user.Name)
		repo.AssertExpectations(t)
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateProfile", mock.Anything, "ghost@example.com", mock.Anything).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		user, err := svc.UpdateProfile(context.Background(), "ghost@example.com", ProfileUpdate{Name: &newName})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes by record id", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "buyer@example.com"}, nil)
		repo.On("Delete", mock.Anything, uint(7)).Return(nil)

		svc := NewUserService(repo, nil)
		assert.NoError(t, svc.Delete(context.Background(), 7))
		repo.AssertExpectations(t)
	})

	t.Run("absent record maps to not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo, nil)
		assert.ErrorIs(t, svc.Delete(context.Background(), 404), apperrors.ErrUserNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
