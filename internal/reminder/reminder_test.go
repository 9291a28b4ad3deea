package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylex/daylex/internal/platform/sqlite"
	"github.com/daylex/daylex/internal/service/planner"
)

func newPlannerService(t *testing.T) *planner.Service {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	require.NoError(t, sqlite.Migrate(db, nil))

	return planner.NewService(sqlite.NewSQLiteWordStore(db, nil), nil)
}

func TestNewValidatesTime(t *testing.T) {
	plannerService := newPlannerService(t)
	cfg := planner.PlanConfig{NewWordQuota: 10, ReviewQuota: 50}

	r, err := New(plannerService, cfg, "08:00", nil)
	require.NoError(t, err)
	assert.NotNil(t, r)

	tests := []string{"8am", "25:00", "08:60", ""}
	for _, at := range tests {
		_, err := New(plannerService, cfg, at, nil)
		assert.Error(t, err, "time %q should be rejected", at)
	}
}

func TestStartAndStop(t *testing.T) {
	r, err := New(newPlannerService(t), planner.PlanConfig{ReviewQuota: 1}, "23:59", nil)
	require.NoError(t, err)

	require.NoError(t, r.Start())
	r.Stop()
}
