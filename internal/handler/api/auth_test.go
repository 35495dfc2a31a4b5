//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-booking-engine/internal/handler/api"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/tests/common/builder"
	"hotel-booking-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAuthCommands struct {
	mock.Mock
}

func (m *MockAuthCommands) Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthCommands) Login(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.LoginResult), args.Error(1)
}

type MockClientQueries struct {
	mock.Mock
}

func (m *MockClientQueries) GetCurrent(ctx context.Context, clientID int64) (*queries.ClientView, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ClientView), args.Error(1)
}

func (m *MockClientQueries) ListAll(ctx context.Context) ([]*queries.ClientView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ClientView), args.Error(1)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *MockAuthCommands
	mockQueries  *MockClientQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = new(MockAuthCommands)
	s.mockQueries = new(MockClientQueries)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			c.Set("client_id", int64(1))
		}
		s.handler.Me(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewClientBuilder().BuildRegisterRequest()

	s.Run("success: returns 201 with new id", func() {
		s.mockCommands.On("Register", mock.Anything, reqBody).Return(int64(1), nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(1), response.ClientID)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "a@b.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on domain validation failure", func() {
		bad := builder.NewClientBuilder().WithPhone("123").BuildRegisterRequest()
		s.mockCommands.On("Register", mock.Anything, bad).
			Return(int64(0), commands.ErrDomainValidation).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 on duplicate identity", func() {
		s.mockCommands.On("Register", mock.Anything, reqBody).
			Return(int64(0), commands.ErrDuplicateIdentity).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	b := builder.NewClientBuilder()
	reqBody := b.BuildLoginRequest()

	s.Run("success: returns 200 with token", func() {
		s.mockCommands.On("Login", mock.Anything, reqBody).
			Return(&commands.LoginResult{Client: b.BuildView(1), AccessToken: "test-jwt-token"}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(b.Email, response.Client.Email)
	})

	s.Run("error: unknown email and wrong password look identical", func() {
		s.mockCommands.On("Login", mock.Anything, reqBody).
			Return(nil, commands.ErrClientNotFound).Once()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")

		s.mockCommands.On("Login", mock.Anything, reqBody).
			Return(nil, commands.ErrInvalidCredentials).Once()
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current client", func() {
		s.mockQueries.On("GetCurrent", mock.Anything, int64(1)).
			Return(builder.NewClientBuilder().BuildView(1), nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.ClientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ClientID)
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
