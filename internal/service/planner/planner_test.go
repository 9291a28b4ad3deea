package planner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/store"
)

// mockWordStore is a testify mock of store.WordStore.
type mockWordStore struct {
	mock.Mock
}

var _ store.WordStore = (*mockWordStore)(nil)

func (m *mockWordStore) Create(ctx context.Context, word *domain.Word, state *domain.LearningState) error {
	args := m.Called(ctx, word, state)
	return args.Error(0)
}

func (m *mockWordStore) CreateMultiple(ctx context.Context, words []*domain.Word, states []*domain.LearningState) error {
	args := m.Called(ctx, words, states)
	return args.Error(0)
}

func (m *mockWordStore) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if word := args.Get(0); word != nil {
		return word.(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) GetByTerm(ctx context.Context, term string) (*domain.Word, error) {
	args := m.Called(ctx, term)
	if word := args.Get(0); word != nil {
		return word.(*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) UpdateWord(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *mockWordStore) GetState(ctx context.Context, id uuid.UUID) (*domain.LearningState, error) {
	args := m.Called(ctx, id)
	if state := args.Get(0); state != nil {
		return state.(*domain.LearningState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) DueBefore(ctx context.Context, t time.Time, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, t, limit)
	if ids := args.Get(0); ids != nil {
		return ids.([]uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) FavoritesDueBefore(ctx context.Context, t time.Time, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, t, limit)
	if ids := args.Get(0); ids != nil {
		return ids.([]uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) NewCandidates(ctx context.Context, limit, minDifficulty, maxDifficulty int) ([]uuid.UUID, error) {
	args := m.Called(ctx, limit, minDifficulty, maxDifficulty)
	if ids := args.Get(0); ids != nil {
		return ids.([]uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	args := m.Called(ctx, id, favorite)
	return args.Error(0)
}

func (m *mockWordStore) Favorites(ctx context.Context) ([]*domain.Word, error) {
	args := m.Called(ctx)
	if words := args.Get(0); words != nil {
		return words.([]*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) Search(ctx context.Context, query string, limit int) ([]*domain.Word, error) {
	args := m.Called(ctx, query, limit)
	if words := args.Get(0); words != nil {
		return words.([]*domain.Word), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWordStore) Apply(ctx context.Context, state *domain.LearningState, record *domain.ReviewRecord) error {
	args := m.Called(ctx, state, record)
	return args.Error(0)
}

func (m *mockWordStore) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockWordStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockWordStore) WithTx(tx *sqlx.Tx) store.WordStore {
	args := m.Called(tx)
	return args.Get(0).(store.WordStore)
}

func newIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPlanRespectsQuotas(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	due := newIDs(3)
	fresh := newIDs(5)

	wordStore := new(mockWordStore)
	wordStore.On("DueBefore", ctx, now, 10).Return(due, nil)
	wordStore.On("NewCandidates", ctx, 5, 0, 0).Return(fresh, nil)

	service := NewService(wordStore, nil)
	plan, err := service.Plan(ctx, now, PlanConfig{ReviewQuota: 10, NewWordQuota: 5})
	require.NoError(t, err)

	require.Len(t, plan, 8)
	for i, id := range due {
		assert.Equal(t, PlanEntry{WordID: id, Intent: IntentReview}, plan[i], "reviews come first")
	}
	for i, id := range fresh {
		assert.Equal(t, PlanEntry{WordID: id, Intent: IntentNew}, plan[len(due)+i])
	}
	wordStore.AssertExpectations(t)
}

func TestPlanZeroQuotasSkipCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("zero review quota never queries due words", func(t *testing.T) {
		t.Parallel()
		wordStore := new(mockWordStore)
		wordStore.On("NewCandidates", ctx, 3, 0, 0).Return(newIDs(3), nil)

		service := NewService(wordStore, nil)
		plan, err := service.Plan(ctx, now, PlanConfig{NewWordQuota: 3})
		require.NoError(t, err)
		require.Len(t, plan, 3)
		for _, entry := range plan {
			assert.Equal(t, IntentNew, entry.Intent)
		}
		wordStore.AssertNotCalled(t, "DueBefore", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero quotas produce an empty plan", func(t *testing.T) {
		t.Parallel()
		wordStore := new(mockWordStore)

		service := NewService(wordStore, nil)
		plan, err := service.Plan(ctx, now, PlanConfig{})
		require.NoError(t, err)
		assert.Empty(t, plan)
		wordStore.AssertNotCalled(t, "DueBefore", mock.Anything, mock.Anything, mock.Anything)
		wordStore.AssertNotCalled(t, "NewCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlanInterleaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	due := newIDs(2)
	fresh := newIDs(4)

	wordStore := new(mockWordStore)
	wordStore.On("DueBefore", ctx, now, 10).Return(due, nil)
	wordStore.On("NewCandidates", ctx, 10, 0, 0).Return(fresh, nil)

	service := NewService(wordStore, nil)
	plan, err := service.Plan(ctx, now, PlanConfig{ReviewQuota: 10, NewWordQuota: 10, Interleave: true})
	require.NoError(t, err)

	require.Len(t, plan, 6)
	expected := []PlanEntry{
		{WordID: due[0], Intent: IntentReview},
		{WordID: fresh[0], Intent: IntentNew},
		{WordID: due[1], Intent: IntentReview},
		{WordID: fresh[1], Intent: IntentNew},
		{WordID: fresh[2], Intent: IntentNew},
		{WordID: fresh[3], Intent: IntentNew},
	}
	assert.Equal(t, expected, plan, "alternate, then drain the longer category")
}

func TestPlanIsDeterministic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	due := newIDs(2)
	fresh := newIDs(2)

	wordStore := new(mockWordStore)
	wordStore.On("DueBefore", ctx, now, 5).Return(due, nil).Twice()
	wordStore.On("NewCandidates", ctx, 5, 0, 0).Return(fresh, nil).Twice()

	service := NewService(wordStore, nil)
	cfg := PlanConfig{ReviewQuota: 5, NewWordQuota: 5}

	first, err := service.Plan(ctx, now, cfg)
	require.NoError(t, err)
	second, err := service.Plan(ctx, now, cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second, "planning is read-only and repeatable")
}

func TestPlanDifficultyBand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	fresh := newIDs(2)

	wordStore := new(mockWordStore)
	wordStore.On("NewCandidates", ctx, 4, 2, 3).Return(fresh, nil)

	service := NewService(wordStore, nil)
	plan, err := service.Plan(ctx, now, PlanConfig{NewWordQuota: 4, DifficultyMin: 2, DifficultyMax: 3})
	require.NoError(t, err)

	require.Len(t, plan, 2)
	wordStore.AssertExpectations(t)
}

func TestPlanFavoritesOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	due := newIDs(2)

	wordStore := new(mockWordStore)
	wordStore.On("FavoritesDueBefore", ctx, now, 5).Return(due, nil)

	service := NewService(wordStore, nil)
	plan, err := service.Plan(ctx, now, PlanConfig{ReviewQuota: 5, FavoritesOnly: true})
	require.NoError(t, err)

	require.Len(t, plan, 2)
	for _, entry := range plan {
		assert.Equal(t, IntentReview, entry.Intent)
	}
	wordStore.AssertNotCalled(t, "DueBefore", mock.Anything, mock.Anything, mock.Anything)
	wordStore.AssertExpectations(t)
}

func TestPlanPropagatesStoreErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Now().UTC()

	wordStore := new(mockWordStore)
	wordStore.On("DueBefore", ctx, now, 5).Return(nil, assert.AnError)

	service := NewService(wordStore, nil)
	_, err := service.Plan(ctx, now, PlanConfig{ReviewQuota: 5, NewWordQuota: 5})
	assert.ErrorIs(t, err, assert.AnError)
}
