package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "homehub/internal/errors"
	"homehub/internal/model"
)

func newAdminService(users *MockUserRepository, posts *MockPostRepository, properties *MockPropertyRepository) AdminService {
	return NewAdminService(users, posts, properties, nil, zap.NewNop())
}

func TestAdminService_PropertyModeration(t *testing.T) {
	tests := []struct {
		name          string
		run           func(AdminService) error
		setupMock     func(*MockPropertyRepository)
		expectedError error
	}{
		{
			name: "approve pending listing",
			run: func(s AdminService) error {
				return s.ApproveProperty(context.Background(), 5)
			},
			setupMock: func(m *MockPropertyRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Property{ID: 5, Status: model.PropertyStatusPending}, nil)
				m.On("UpdateStatus", mock.Anything, uint(5), model.PropertyStatusApproved).Return(nil)
			},
		},
		{
			name: "decline overwrites an earlier approval",
			run: func(s AdminService) error {
				return s.DeclineProperty(context.Background(), 5)
			},
			setupMock: func(m *MockPropertyRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Property{ID: 5, Status: model.PropertyStatusApproved}, nil)
				m.On("UpdateStatus", mock.Anything, uint(5), model.PropertyStatusDeclined).Return(nil)
			},
		},
		{
			name: "approve missing listing",
			run: func(s AdminService) error {
				return s.ApproveProperty(context.Background(), 5)
			},
			setupMock: func(m *MockPropertyRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPropertyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProps := new(MockPropertyRepository)
			tt.setupMock(mockProps)

			service := newAdminService(new(MockUserRepository), new(MockPostRepository), mockProps)
			err := tt.run(service)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
			mockProps.AssertExpectations(t)
		})
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("cascades through the repository", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9}, nil)
		mockUsers.On("Delete", mock.Anything, uint(9)).Return(nil)

		service := newAdminService(mockUsers, new(MockPostRepository), new(MockPropertyRepository))
		assert.NoError(t, service.DeleteUser(context.Background(), 9))
		mockUsers.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := newAdminService(mockUsers, new(MockPostRepository), new(MockPropertyRepository))
		assert.Equal(t, apperrors.ErrUserNotFound, service.DeleteUser(context.Background(), 9))
		mockUsers.AssertExpectations(t)
	})
}

func TestAdminService_ListProperties(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProps := new(MockPropertyRepository)

	mockProps.On("ListAll", mock.Anything).Return([]model.Property{
		{ID: 1, UserID: 4, Title: "House", Status: model.PropertyStatusPending},
		{ID: 2, UserID: 77, Title: "Flat", Status: model.PropertyStatusApproved},
	}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4, Name: "Dana"}, nil)
	mockUsers.On("FindByID", mock.Anything, uint(77)).Return(nil, gorm.ErrRecordNotFound)

	service := newAdminService(mockUsers, new(MockPostRepository), mockProps)
	views, err := service.ListProperties(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Dana", views[0].UserName)
	assert.Equal(t, "Unknown", views[1].UserName)
	mockProps.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestAdminService_Stats(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockPosts := new(MockPostRepository)
	mockProps := new(MockPropertyRepository)

	mockUsers.On("Count", mock.Anything).Return(int64(12), nil)
	mockPosts.On("Count", mock.Anything).Return(int64(30), nil)
	mockProps.On("Count", mock.Anything).Return(int64(8), nil)
	mockProps.On("CountByStatus", mock.Anything, model.PropertyStatusPending).Return(int64(2), nil)
	mockProps.On("CountByStatus", mock.Anything, model.PropertyStatusApproved).Return(int64(5), nil)

	service := newAdminService(mockUsers, mockPosts, mockProps)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(30), stats.TotalPosts)
	assert.Equal(t, int64(8), stats.TotalProperties)
	assert.Equal(t, int64(2), stats.PendingProperties)
	assert.Equal(t, int64(5), stats.ApprovedProperties)
	mockUsers.AssertExpectations(t)
	mockPosts.AssertExpectations(t)
	mockProps.AssertExpectations(t)
}
