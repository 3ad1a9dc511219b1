package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relecloud-backend/internal/domains/destination/model"
)

// =====================================================
// FAKE REPOSITORY
// =====================================================

type fakeDestinationRepo struct {
	items     []model.DestinationWithStats
	reviews   map[uuid.UUID][]model.DestinationReview
	statsErr  error
	listErr   error
	created   []*model.Destination
	deletedID uuid.UUID
}

func (f *fakeDestinationRepo) Create(ctx context.Context, d *model.Destination) error {
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	for _, item := range f.items {
		if item.Destination.ID == id {
			d := item.Destination
			return &d, nil
		}
	}
	return nil, model.ErrDestinationNotFound
}

func (f *fakeDestinationRepo) GetWithStats(ctx context.Context, id uuid.UUID) (*model.DestinationWithStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	for _, item := range f.items {
		if item.Destination.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, model.ErrDestinationNotFound
}

func (f *fakeDestinationRepo) List(ctx context.Context) ([]model.Destination, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	destinations := make([]model.Destination, 0, len(f.items))
	for _, item := range f.items {
		destinations = append(destinations, item.Destination)
	}
	return destinations, nil
}

func (f *fakeDestinationRepo) ListWithStats(ctx context.Context) ([]model.DestinationWithStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.items, nil
}

func (f *fakeDestinationRepo) ListReviews(ctx context.Context, destinationID uuid.UUID) ([]model.DestinationReview, error) {
	return f.reviews[destinationID], nil
}

func (f *fakeDestinationRepo) Update(ctx context.Context, d *model.Destination) error {
	return nil
}

func (f *fakeDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deletedID = id
	return nil
}

// =====================================================
// HELPERS
// =====================================================

func newStats(name string, reviewCount int, avgRating *float64) model.DestinationWithStats {
	return model.DestinationWithStats{
		Destination: model.Destination{
			ID:          uuid.New(),
			Name:        name,
			Description: "about " + name,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
		ReviewCount: reviewCount,
		AvgRating:   avgRating,
	}
}

func rating(v float64) *float64 {
	return &v
}

// =====================================================
// RANKING RULE
// =====================================================

func TestRankByPopularity_CountThenRating(t *testing.T) {
	items := []model.DestinationWithStats{
		newStats("Mars", 0, nil),
		newStats("Titan", 200, rating(4.6)),
		newStats("Europa", 250, rating(4.7)),
		newStats("Callisto", 200, rating(4.9)),
	}

	ranked := rankByPopularity(items)

	names := make([]string, 0, len(ranked))
	for _, item := range ranked {
		names = append(names, item.Destination.Name)
	}

	// More reviews always outranks a better rating with fewer reviews;
	// zero-review destinations sort last.
	assert.Equal(t, []string{"Europa", "Callisto", "Titan", "Mars"}, names)
}

func TestRankByPopularity_AbsentRatingSortsBelowAnyValue(t *testing.T) {
	items := []model.DestinationWithStats{
		newStats("Io", 2, nil),
		newStats("Ganymede", 2, rating(1.0)),
	}

	ranked := rankByPopularity(items)

	assert.Equal(t, "Ganymede", ranked[0].Destination.Name)
	assert.Equal(t, "Io", ranked[1].Destination.Name)
}

func TestRankByPopularity_TiesKeepInsertionOrder(t *testing.T) {
	items := []model.DestinationWithStats{
		newStats("First", 3, rating(4.0)),
		newStats("Second", 3, rating(4.0)),
		newStats("Third", 3, rating(4.0)),
	}

	ranked := rankByPopularity(items)

	assert.Equal(t, "First", ranked[0].Destination.Name)
	assert.Equal(t, "Second", ranked[1].Destination.Name)
	assert.Equal(t, "Third", ranked[2].Destination.Name)
}

func TestRankByPopularity_EmptySet(t *testing.T) {
	ranked := rankByPopularity(nil)
	assert.Empty(t, ranked)
}

func TestRankByPopularity_DoesNotMutateInput(t *testing.T) {
	items := []model.DestinationWithStats{
		newStats("Low", 1, rating(2.0)),
		newStats("High", 5, rating(5.0)),
	}

	_ = rankByPopularity(items)

	assert.Equal(t, "Low", items[0].Destination.Name)
	assert.Equal(t, "High", items[1].Destination.Name)
}

// =====================================================
// ROUNDING
// =====================================================

func TestRoundRating(t *testing.T) {
	// Mean of [5,4,3] is 4.0; of [5,4] is 4.5
	assert.Equal(t, 4.0, roundRating((5.0+4.0+3.0)/3.0))
	assert.Equal(t, 4.5, roundRating((5.0+4.0)/2.0))
	assert.Equal(t, 4.7, roundRating(4.666666666))
	assert.Equal(t, 3.3, roundRating(10.0/3.0))
}

func TestRoundRatingPtr_PreservesAbsence(t *testing.T) {
	assert.Nil(t, roundRatingPtr(nil))
	assert.Equal(t, 4.5, *roundRatingPtr(rating(4.45)))
}

// =====================================================
// LIST RANKED (SERVICE)
// =====================================================

func TestListRanked_OrdersAndRounds(t *testing.T) {
	repo := &fakeDestinationRepo{
		items: []model.DestinationWithStats{
			newStats("Quiet", 0, nil),
			newStats("Popular", 3, rating(4.333333333)),
			newStats("Loved", 3, rating(4.666666666)),
		},
	}
	svc := NewDestinationService(repo)

	resp, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Destinations, 3)
	assert.False(t, resp.Degraded)

	assert.Equal(t, "Loved", resp.Destinations[0].Name)
	assert.Equal(t, 4.7, *resp.Destinations[0].AvgRating)
	assert.Equal(t, 3, *resp.Destinations[0].ReviewCount)

	assert.Equal(t, "Popular", resp.Destinations[1].Name)
	assert.Equal(t, 4.3, *resp.Destinations[1].AvgRating)

	assert.Equal(t, "Quiet", resp.Destinations[2].Name)
	assert.Equal(t, 0, *resp.Destinations[2].ReviewCount)
	assert.Nil(t, resp.Destinations[2].AvgRating)
}

func TestListRanked_SingleReviewExactRating(t *testing.T) {
	repo := &fakeDestinationRepo{
		items: []model.DestinationWithStats{newStats("Solo", 1, rating(4.0))},
	}
	svc := NewDestinationService(repo)

	resp, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Destinations, 1)
	assert.Equal(t, 4.0, *resp.Destinations[0].AvgRating)
}

func TestListRanked_EmptySet(t *testing.T) {
	svc := NewDestinationService(&fakeDestinationRepo{})

	resp, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Destinations)
}

func TestListRanked_Idempotent(t *testing.T) {
	repo := &fakeDestinationRepo{
		items: []model.DestinationWithStats{
			newStats("A", 2, rating(3.0)),
			newStats("B", 2, rating(3.0)),
			newStats("C", 5, rating(1.0)),
		},
	}
	svc := NewDestinationService(repo)

	first, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	second, err := svc.ListRanked(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListRanked_DegradesWhenStatsUnavailable(t *testing.T) {
	repo := &fakeDestinationRepo{
		items: []model.DestinationWithStats{
			newStats("A", 10, rating(4.0)),
			newStats("B", 20, rating(5.0)),
		},
		statsErr: errors.New("aggregation unavailable"),
	}
	svc := NewDestinationService(repo)

	resp, err := svc.ListRanked(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Destinations, 2)

	// Degraded path serves the plain set with absent derived fields
	assert.Equal(t, "A", resp.Destinations[0].Name)
	assert.Nil(t, resp.Destinations[0].ReviewCount)
	assert.Nil(t, resp.Destinations[0].AvgRating)
}

func TestGetDestination_IncludesReviewsAndRoundedRating(t *testing.T) {
	item := newStats("Europa", 2, rating(4.666))
	repo := &fakeDestinationRepo{
		items: []model.DestinationWithStats{item},
		reviews: map[uuid.UUID][]model.DestinationReview{
			item.Destination.ID: {
				{ID: uuid.New(), Rating: 5, Comment: "Stunning ice plains", Username: "alice", CreatedAt: time.Now()},
				{ID: uuid.New(), Rating: 4, Username: "bob", CreatedAt: time.Now().Add(-time.Hour)},
			},
		},
	}
	svc := NewDestinationService(repo)

	resp, err := svc.GetDestination(context.Background(), item.Destination.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ReviewCount)
	require.NotNil(t, resp.AvgRating)
	assert.InDelta(t, 4.7, *resp.AvgRating, 0.0001)
	require.Len(t, resp.Reviews, 2)
	assert.Equal(t, "alice", resp.Reviews[0].Username)
}

func TestGetDestination_NoReviewsIsEmptyNotNil(t *testing.T) {
	item := newStats("Mars", 0, nil)
	repo := &fakeDestinationRepo{items: []model.DestinationWithStats{item}}
	svc := NewDestinationService(repo)

	resp, err := svc.GetDestination(context.Background(), item.Destination.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.AvgRating)
	assert.NotNil(t, resp.Reviews)
	assert.Empty(t, resp.Reviews)
}

func TestGetDestination_Unknown(t *testing.T) {
	svc := NewDestinationService(&fakeDestinationRepo{})

	_, err := svc.GetDestination(context.Background(), uuid.New())

	var dstErr *model.DestinationError
	require.ErrorAs(t, err, &dstErr)
	assert.Equal(t, model.ErrCodeDestinationNotFound, dstErr.Code)
}

func TestListRanked_FailsWhenStoreFullyUnavailable(t *testing.T) {
	repo := &fakeDestinationRepo{
		statsErr: errors.New("aggregation unavailable"),
		listErr:  errors.New("store unreachable"),
	}
	svc := NewDestinationService(repo)

	_, err := svc.ListRanked(context.Background())
	assert.Error(t, err)
}
