package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"relecloud-backend/internal/domains/cruise/model"
	"relecloud-backend/internal/domains/cruise/service"
	"relecloud-backend/internal/shared/response"
)

type CruiseHandler struct {
	cruiseService service.ServiceInterface
}

func NewCruiseHandler(cruiseService service.ServiceInterface) *CruiseHandler {
	return &CruiseHandler{
		cruiseService: cruiseService,
	}
}

// List lists all cruises
// GET /api/v1/cruises
func (h *CruiseHandler) List(c *gin.Context) {
	cruises, err := h.cruiseService.ListCruises(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list cruises")
		return
	}

	response.Success(c, http.StatusOK, cruises)
}

// Get returns a cruise with its covered destinations
// GET /api/v1/cruises/:id
func (h *CruiseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cruise ID")
		return
	}

	resp, err := h.cruiseService.GetCruise(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create creates a cruise
// POST /api/v1/admin/cruises
func (h *CruiseHandler) Create(c *gin.Context) {
	var req model.CreateCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cruiseService.CreateCruise(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Update updates a cruise
// PUT /api/v1/admin/cruises/:id
func (h *CruiseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cruise ID")
		return
	}

	var req model.UpdateCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.cruiseService.UpdateCruise(c.Request.Context(), id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete removes a cruise unless info requests protect it
// DELETE /api/v1/admin/cruises/:id
func (h *CruiseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cruise ID")
		return
	}

	if err := h.cruiseService.DeleteCruise(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}

func (h *CruiseHandler) mapError(c *gin.Context, err error) {
	var domainErr *model.CruiseError
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr.Err, model.ErrCruiseNotFound):
			response.ErrorResponse(c, http.StatusNotFound, domainErr.Code, domainErr.Message)
		case errors.Is(domainErr.Err, model.ErrNameTaken), errors.Is(domainErr.Err, model.ErrCruiseInUse):
			response.ErrorResponse(c, http.StatusConflict, domainErr.Code, domainErr.Message)
		default:
			response.ErrorResponse(c, http.StatusInternalServerError, domainErr.Code, domainErr.Message)
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
