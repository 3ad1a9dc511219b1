package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	crumodel "relecloud-backend/internal/domains/cruise/model"
	"relecloud-backend/internal/domains/inforequest/model"
	"relecloud-backend/internal/domains/inforequest/service"
	"relecloud-backend/internal/shared/response"
)

type InfoRequestHandler struct {
	infoRequestService service.ServiceInterface
}

func NewInfoRequestHandler(infoRequestService service.ServiceInterface) *InfoRequestHandler {
	return &InfoRequestHandler{
		infoRequestService: infoRequestService,
	}
}

// Create submits an info request about a cruise
// POST /api/v1/info-requests
func (h *InfoRequestHandler) Create(c *gin.Context) {
	var req model.CreateInfoRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.infoRequestService.CreateInfoRequest(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List lists all info requests for operators
// GET /api/v1/admin/info-requests
func (h *InfoRequestHandler) List(c *gin.Context) {
	resp, err := h.infoRequestService.ListInfoRequests(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list info requests")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *InfoRequestHandler) mapError(c *gin.Context, err error) {
	var cruErr *crumodel.CruiseError
	if errors.As(err, &cruErr) {
		if errors.Is(cruErr.Err, crumodel.ErrCruiseNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, cruErr.Code, cruErr.Message)
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, cruErr.Code, cruErr.Message)
		return
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", vErrs)
		return
	}

	response.InternalServerError(c, "Internal server error")
}
