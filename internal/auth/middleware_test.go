package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homehub/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTokenErrorHandler(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		expectedBody  string
	}{
		{
			name:          "no header means token missing",
			authorization: "",
			expectedBody:  `{"error":"Token missing"}`,
		},
		{
			name:          "non-bearer header means token missing",
			authorization: "Basic dXNlcjpwYXNz",
			expectedBody:  `{"error":"Token missing"}`,
		},
		{
			name:          "bearer token that failed verification",
			authorization: "Bearer bad-token",
			expectedBody:  `{"error":"Invalid or expired token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(tt.authorization)
			err := TokenErrorHandler(c, nil)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestResolveUser(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("loads the user behind the claims", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Name: "Alice"}, nil)

		c, rec := newTestContext("Bearer whatever")
		c.Set(ClaimsContextKey, &Claims{UserID: 7})

		err := ResolveUser(repo, zap.NewNop())(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		user := CurrentUser(c)
		assert.NotNil(t, user)
		assert.Equal(t, uint(7), user.ID)
		repo.AssertExpectations(t)
	})

	t.Run("token for a deleted user is rejected", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

		c, rec := newTestContext("Bearer whatever")
		c.Set(ClaimsContextKey, &Claims{UserID: 7})

		err := ResolveUser(repo, zap.NewNop())(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
		assert.Nil(t, CurrentUser(c))
		repo.AssertExpectations(t)
	})

	t.Run("missing claims are rejected", func(t *testing.T) {
		c, rec := newTestContext("Bearer whatever")

		err := ResolveUser(new(mockUserRepo), zap.NewNop())(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminRequired(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newTestContext("Bearer whatever")
		c.Set(UserContextKey, &model.User{ID: 1, IsAdmin: true})

		err := AdminRequired()(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is refused", func(t *testing.T) {
		c, rec := newTestContext("Bearer whatever")
		c.Set(UserContextKey, &model.User{ID: 1})

		err := AdminRequired()(next)(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Admin access required"}`, rec.Body.String())
	})
}
