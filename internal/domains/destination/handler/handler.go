package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"relecloud-backend/internal/domains/destination/model"
	"relecloud-backend/internal/domains/destination/service"
	"relecloud-backend/internal/shared/response"
)

type DestinationHandler struct {
	destinationService service.ServiceInterface
}

func NewDestinationHandler(destinationService service.ServiceInterface) *DestinationHandler {
	return &DestinationHandler{
		destinationService: destinationService,
	}
}

// List returns the ranked destination listing
// GET /api/v1/destinations
func (h *DestinationHandler) List(c *gin.Context) {
	resp, err := h.destinationService.ListRanked(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list destinations")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get returns a destination with derived statistics
// GET /api/v1/destinations/:id
func (h *DestinationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination ID")
		return
	}

	resp, err := h.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Create creates a destination
// POST /api/v1/admin/destinations
func (h *DestinationHandler) Create(c *gin.Context) {
	var req model.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, destination)
}

// Update updates a destination
// PUT /api/v1/admin/destinations/:id
func (h *DestinationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination ID")
		return
	}

	var req model.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	destination, err := h.destinationService.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, destination)
}

// Delete removes a destination and its reviews
// DELETE /api/v1/admin/destinations/:id
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination ID")
		return
	}

	if err := h.destinationService.DeleteDestination(c.Request.Context(), id); err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusNoContent, nil)
}

func (h *DestinationHandler) mapError(c *gin.Context, err error) {
	var domainErr *model.DestinationError
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr.Err, model.ErrDestinationNotFound):
			response.ErrorResponse(c, http.StatusNotFound, domainErr.Code, domainErr.Message)
		case errors.Is(domainErr.Err, model.ErrNameTaken):
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
