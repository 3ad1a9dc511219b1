package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dstmodel "relecloud-backend/internal/domains/destination/model"
	"relecloud-backend/internal/domains/review/model"
	"relecloud-backend/internal/domains/review/service"
	"relecloud-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create creates a review for a destination
// POST /api/v1/destinations/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination ID")
		return
	}

	reviewer, ok := reviewerFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), reviewer, destinationID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// List lists a destination's reviews, newest first
// GET /api/v1/destinations/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid destination ID")
		return
	}

	reviews, err := h.reviewService.ListByDestination(c.Request.Context(), destinationID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

func reviewerFromContext(c *gin.Context) (service.Reviewer, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return service.Reviewer{}, false
	}
	return service.Reviewer{
		ID:       userID,
		Email:    c.GetString("user_email"),
		Username: c.GetString("username"),
	}, true
}

func (h *ReviewHandler) mapError(c *gin.Context, err error) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		switch {
		case errors.Is(reviewErr.Err, model.ErrInvalidRating),
			errors.Is(reviewErr.Err, model.ErrCommentTooLong):
			response.ErrorResponse(c, http.StatusBadRequest, reviewErr.Code, reviewErr.Message)
		case errors.Is(reviewErr.Err, model.ErrDuplicateReview):
			response.ErrorResponse(c, http.StatusConflict, reviewErr.Code, reviewErr.Message)
		case errors.Is(reviewErr.Err, model.ErrNotEntitled):
			response.ErrorResponse(c, http.StatusForbidden, reviewErr.Code, reviewErr.Message)
		default:
			response.ErrorResponse(c, http.StatusInternalServerError, reviewErr.Code, reviewErr.Message)
		}
		return
	}

	var dstErr *dstmodel.DestinationError
	if errors.As(err, &dstErr) {
		if errors.Is(dstErr.Err, dstmodel.ErrDestinationNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, dstErr.Code, dstErr.Message)
			return
		}
		response.ErrorResponse(c, http.StatusInternalServerError, dstErr.Code, dstErr.Message)
		return
	}

	response.InternalServerError(c, "Internal server error")
}
