package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	crumodel "relecloud-backend/internal/domains/cruise/model"
	crurepository "relecloud-backend/internal/domains/cruise/repository"
	"relecloud-backend/internal/domains/inforequest/model"
	"relecloud-backend/internal/domains/inforequest/repository"
	"relecloud-backend/internal/infrastructure/email"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type infoRequestService struct {
	infoRequestRepo repository.InfoRequestRepository
	cruiseRepo      crurepository.CruiseRepository
	emailService    email.EmailService
}

func NewInfoRequestService(
	infoRequestRepo repository.InfoRequestRepository,
	cruiseRepo crurepository.CruiseRepository,
	emailService email.EmailService,
) ServiceInterface {
	return &infoRequestService{
		infoRequestRepo: infoRequestRepo,
		cruiseRepo:      cruiseRepo,
		emailService:    emailService,
	}
}

// =====================================================
// SUBMISSION
// =====================================================

func (s *infoRequestService) CreateInfoRequest(
	ctx context.Context,
	req model.CreateInfoRequestRequest,
) (*model.InfoRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cruise, err := s.cruiseRepo.GetByID(ctx, req.CruiseID)
	if err != nil {
		if errors.Is(err, crumodel.ErrCruiseNotFound) {
			return nil, crumodel.NewCruiseNotFoundError()
		}
		return nil, fmt.Errorf("failed to check cruise: %w", err)
	}

	request := &model.InfoRequest{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Notes:     req.Notes,
		CruiseID:  req.CruiseID,
		CreatedAt: time.Now(),
	}

	// Persist first. The stored email address is what grants review
	// entitlement later, so it must survive any notification failure.
	if err := s.infoRequestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create info request: %w", err)
	}

	emailSent := s.sendEmails(ctx, request, cruise.Name)

	log.Info().
		Str("info_request_id", request.ID.String()).
		Str("cruise_id", request.CruiseID.String()).
		Bool("email_sent", emailSent).
		Msg("Info request created")

	return &model.InfoRequestResponse{
		ID:        request.ID,
		Name:      request.Name,
		Email:     request.Email,
		Notes:     request.Notes,
		CruiseID:  request.CruiseID,
		CreatedAt: request.CreatedAt,
		EmailSent: emailSent,
	}, nil
}

func (s *infoRequestService) sendEmails(ctx context.Context, request *model.InfoRequest, cruiseName string) bool {
	data := email.InfoRequestEmailData{
		Name:       request.Name,
		Email:      request.Email,
		CruiseName: cruiseName,
		Notes:      request.Notes,
	}

	sent := true
	if err := s.emailService.SendInfoRequestNotification(ctx, data); err != nil {
		log.Warn().Err(err).
			Str("info_request_id", request.ID.String()).
			Msg("Failed to send operator notification")
		sent = false
	}
	if err := s.emailService.SendInfoRequestConfirmation(ctx, data); err != nil {
		log.Warn().Err(err).
			Str("info_request_id", request.ID.String()).
			Msg("Failed to send requester confirmation")
		sent = false
	}
	return sent
}

// =====================================================
// ADMIN LISTING
// =====================================================

func (s *infoRequestService) ListInfoRequests(ctx context.Context) (*model.ListInfoRequestsResponse, error) {
	items, err := s.infoRequestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list info requests: %w", err)
	}

	if items == nil {
		items = []model.InfoRequestListItem{}
	}

	return &model.ListInfoRequestsResponse{InfoRequests: items}, nil
}
