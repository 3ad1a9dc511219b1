package service

import (
	"context"

	"relecloud-backend/internal/domains/inforequest/model"
)

type ServiceInterface interface {
	// CreateInfoRequest validates and persists an info request, then sends
	// the operator notification and requester confirmation. Email failures
	// never undo persistence; they only flip the advisory EmailSent flag.
	CreateInfoRequest(ctx context.Context, req model.CreateInfoRequestRequest) (*model.InfoRequestResponse, error)

	// ListInfoRequests lists all info requests for operators, newest first
	ListInfoRequests(ctx context.Context) (*model.ListInfoRequestsResponse, error)
}
