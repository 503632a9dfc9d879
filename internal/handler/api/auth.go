package api

import (
	"net/http"

	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/handler/httperr"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/cookie"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.StaffQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.StaffQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		q:    q,
		cfg:  cfg,
	}
}

// @Summary Staff login
// @Description Login with email and password. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromLoginResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, response)
}

// @Summary Staff logout
// @Description Clears the access token cookie. Tokens are stateless and expire on their own.
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current staff
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := requireStaff(c)
	if !ok {
		return
	}

	view, err := h.q.GetCurrentStaff(c.Request.Context(), staffID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	response, err := resdto.FromStaffView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
