package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"relecloud-backend/internal/domains/user/model"
	"relecloud-backend/internal/domains/user/service"
	"relecloud-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates an account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login authenticates and issues a token pair
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) mapError(c *gin.Context, err error) {
	var userErr *model.UserError
	if errors.As(err, &userErr) {
		switch {
		case errors.Is(userErr.Err, model.ErrInvalidCredentials):
			response.ErrorResponse(c, http.StatusUnauthorized, userErr.Code, userErr.Message)
		case errors.Is(userErr.Err, model.ErrAccountLocked):
			response.ErrorResponse(c, http.StatusTooManyRequests, userErr.Code, userErr.Message)
		case errors.Is(userErr.Err, model.ErrUsernameTaken), errors.Is(userErr.Err, model.ErrEmailTaken):
			response.ErrorResponse(c, http.StatusConflict, userErr.Code, userErr.Message)
		case errors.Is(userErr.Err, model.ErrUserNotFound):
			response.ErrorResponse(c, http.StatusNotFound, userErr.Code, userErr.Message)
		default:
			response.ErrorResponse(c, http.StatusInternalServerError, userErr.Code, userErr.Message)
		}
		return
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", vErrs)
		return
	}

	response.InternalServerError(c, "Internal server error")
}
