//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/handler/api"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/cookie"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/common/testutil"
	commandsmock "resort-booking/tests/mock/commands"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockStaffQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStaffQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", fakeAuth(staff.RoleViewer), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       testutil.Mutation
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewStaffBuilder().LoginDTO("lakeside-2026")
	returnStaff := builder.NewStaffBuilder().BuildReadModel()
	result := &commands.LoginResult{
		StaffID:     returnStaff.ID,
		AccessToken: "test-jwt-token",
		ExpiresIn:   time.Hour,
		Staff:       returnStaff,
	}

	s.Run("success: token in body and cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("test-jwt-token", body.AccessToken)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Equal(returnStaff.ID.String(), body.Staff.ID)
		s.Equal("operator", body.Staff.Role)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	validation := []testCaseAuth{
		{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest, expectInBody: "email"},
		{name: "malformed email", mutate: testutil.Field("email", "frontdesk"), expectCode: http.StatusBadRequest, expectInBody: "valid email"},
		{name: "short password", mutate: testutil.Field("password", "short"), expectCode: http.StatusBadRequest, expectInBody: "at least 8"},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			s.Contains(rec.Body.String(), tc.expectInBody)
		})
	}

	failures := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "bad credentials", err: commands.ErrInvalidCredentials, expectCode: http.StatusUnauthorized, expectMsg: "Invalid email or password"},
		{name: "inactive", err: commands.ErrStaffInactive, expectCode: http.StatusForbidden, expectMsg: "inactive"},
		{name: "token failure", err: commands.ErrTokenGeneration, expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.True(c.MaxAge < 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success", func() {
		view := &queries.AuthorizedStaffView{ID: testStaffID, Email: "frontdesk@example.com", Name: "Front Desk", Role: "viewer", IsActive: true}
		s.mockQueries.EXPECT().GetCurrentStaff(gomock.Any(), testStaffID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		var body resdto.StaffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(testStaffID.String(), body.ID)
		s.Equal("Front Desk", body.Name)
	})

	s.Run("error: deactivated since login", func() {
		s.mockQueries.EXPECT().GetCurrentStaff(gomock.Any(), gomock.Any()).Return(nil, queries.ErrStaffInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
