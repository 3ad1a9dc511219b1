package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crumodel "relecloud-backend/internal/domains/cruise/model"
	"relecloud-backend/internal/domains/inforequest/model"
	"relecloud-backend/internal/infrastructure/email"
)

// =====================================================
// FAKES
// =====================================================

type fakeInfoRequestRepo struct {
	requests  []*model.InfoRequest
	createErr error
}

func (f *fakeInfoRequestRepo) Create(ctx context.Context, request *model.InfoRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeInfoRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.InfoRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, model.ErrInfoRequestNotFound
}

func (f *fakeInfoRequestRepo) List(ctx context.Context) ([]model.InfoRequestListItem, error) {
	items := make([]model.InfoRequestListItem, 0, len(f.requests))
	for i := len(f.requests) - 1; i >= 0; i-- {
		r := f.requests[i]
		items = append(items, model.InfoRequestListItem{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Notes:     r.Notes,
			CruiseID:  r.CruiseID,
			CreatedAt: r.CreatedAt,
		})
	}
	return items, nil
}

type stubCruiseRepo struct {
	cruises map[uuid.UUID]crumodel.Cruise
}

func newStubCruiseRepo(ids ...uuid.UUID) *stubCruiseRepo {
	s := &stubCruiseRepo{cruises: map[uuid.UUID]crumodel.Cruise{}}
	for _, id := range ids {
		s.cruises[id] = crumodel.Cruise{ID: id, Name: "Grand Tour"}
	}
	return s
}

func (s *stubCruiseRepo) Create(ctx context.Context, cruise *crumodel.Cruise, destinationIDs []uuid.UUID) error {
	return nil
}

func (s *stubCruiseRepo) GetByID(ctx context.Context, id uuid.UUID) (*crumodel.Cruise, error) {
	if c, ok := s.cruises[id]; ok {
		return &c, nil
	}
	return nil, crumodel.ErrCruiseNotFound
}

func (s *stubCruiseRepo) GetDestinations(ctx context.Context, cruiseID uuid.UUID) ([]crumodel.CruiseDestination, error) {
	return nil, nil
}

func (s *stubCruiseRepo) List(ctx context.Context) ([]crumodel.Cruise, error) { return nil, nil }

func (s *stubCruiseRepo) Update(ctx context.Context, cruise *crumodel.Cruise, destinationIDs *[]uuid.UUID) error {
	return nil
}

func (s *stubCruiseRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeEmailService struct {
	notifications []email.InfoRequestEmailData
	confirmations []email.InfoRequestEmailData

	notifyErr  error
	confirmErr error
}

func (f *fakeEmailService) SendInfoRequestNotification(ctx context.Context, data email.InfoRequestEmailData) error {
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.notifications = append(f.notifications, data)
	return nil
}

func (f *fakeEmailService) SendInfoRequestConfirmation(ctx context.Context, data email.InfoRequestEmailData) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmations = append(f.confirmations, data)
	return nil
}

// =====================================================
// TESTS
// =====================================================

func validRequest(cruiseID uuid.UUID) model.CreateInfoRequestRequest {
	return model.CreateInfoRequestRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Notes:    "Window cabin if possible",
		CruiseID: cruiseID,
	}
}

func TestCreateInfoRequest_PersistsAndNotifies(t *testing.T) {
	cruiseID := uuid.New()
	repo := &fakeInfoRequestRepo{}
	mailer := &fakeEmailService{}
	svc := NewInfoRequestService(repo, newStubCruiseRepo(cruiseID), mailer)

	resp, err := svc.CreateInfoRequest(context.Background(), validRequest(cruiseID))
	require.NoError(t, err)

	assert.True(t, resp.EmailSent)
	require.Len(t, repo.requests, 1)
	assert.Equal(t, "ada@example.com", repo.requests[0].Email)

	require.Len(t, mailer.notifications, 1)
	require.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "Grand Tour", mailer.notifications[0].CruiseName)
}

func TestCreateInfoRequest_PersistedWhenEmailFails(t *testing.T) {
	cruiseID := uuid.New()
	repo := &fakeInfoRequestRepo{}
	mailer := &fakeEmailService{notifyErr: errors.New("smtp unreachable")}
	svc := NewInfoRequestService(repo, newStubCruiseRepo(cruiseID), mailer)

	resp, err := svc.CreateInfoRequest(context.Background(), validRequest(cruiseID))
	require.NoError(t, err)

	assert.False(t, resp.EmailSent)
	assert.Len(t, repo.requests, 1, "request must survive notification failure")
	// The confirmation is still attempted.
	assert.Len(t, mailer.confirmations, 1)
}

func TestCreateInfoRequest_UnknownCruise(t *testing.T) {
	repo := &fakeInfoRequestRepo{}
	svc := NewInfoRequestService(repo, newStubCruiseRepo(), &fakeEmailService{})

	_, err := svc.CreateInfoRequest(context.Background(), validRequest(uuid.New()))

	var cruErr *crumodel.CruiseError
	require.ErrorAs(t, err, &cruErr)
	assert.Equal(t, crumodel.ErrCodeCruiseNotFound, cruErr.Code)
	assert.Empty(t, repo.requests)
}

func TestCreateInfoRequest_Validation(t *testing.T) {
	cruiseID := uuid.New()
	repo := &fakeInfoRequestRepo{}
	mailer := &fakeEmailService{}
	svc := NewInfoRequestService(repo, newStubCruiseRepo(cruiseID), mailer)

	cases := []struct {
		name string
		req  model.CreateInfoRequestRequest
	}{
		{"missing name", model.CreateInfoRequestRequest{Email: "a@b.com", CruiseID: cruiseID}},
		{"name too long", model.CreateInfoRequestRequest{
			Name: strings.Repeat("a", model.MaxNameLength+1), Email: "a@b.com", CruiseID: cruiseID,
		}},
		{"invalid email", model.CreateInfoRequestRequest{Name: "Ada", Email: "not-an-email", CruiseID: cruiseID}},
		{"notes too long", model.CreateInfoRequestRequest{
			Name: "Ada", Email: "a@b.com", Notes: strings.Repeat("a", model.MaxNotesLength+1), CruiseID: cruiseID,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateInfoRequest(context.Background(), tc.req)
			require.Error(t, err)
			assert.Empty(t, repo.requests)
			assert.Empty(t, mailer.notifications)
		})
	}
}

func TestListInfoRequests_EmptyIsNotNil(t *testing.T) {
	svc := NewInfoRequestService(&fakeInfoRequestRepo{}, newStubCruiseRepo(), &fakeEmailService{})

	resp, err := svc.ListInfoRequests(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.InfoRequests)
	assert.Empty(t, resp.InfoRequests)
}

func TestListInfoRequests_NewestFirst(t *testing.T) {
	cruiseID := uuid.New()
	repo := &fakeInfoRequestRepo{}
	svc := NewInfoRequestService(repo, newStubCruiseRepo(cruiseID), &fakeEmailService{})

	first, err := svc.CreateInfoRequest(context.Background(), validRequest(cruiseID))
	require.NoError(t, err)
	second, err := svc.CreateInfoRequest(context.Background(), model.CreateInfoRequestRequest{
		Name: "Grace", Email: "grace@example.com", CruiseID: cruiseID,
	})
	require.NoError(t, err)

	resp, err := svc.ListInfoRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.InfoRequests, 2)
	assert.Equal(t, second.ID, resp.InfoRequests[0].ID)
	assert.Equal(t, first.ID, resp.InfoRequests[1].ID)
}
