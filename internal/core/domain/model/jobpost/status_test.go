package jobpost_test

import (
	"testing"

	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[jobpost.Status]string{
		jobpost.Unknown:   "unknown",
		jobpost.Draft:     "draft",
		jobpost.Open:      "open",
		jobpost.Assigned:  "assigned",
		jobpost.Upcoming:  "upcoming",
		jobpost.CheckedIn: "checkedIn",
		jobpost.Completed: "completed",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
	assert.Equal(t, "unknown", jobpost.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []jobpost.Status{
			jobpost.Draft, jobpost.Open, jobpost.Assigned,
			jobpost.Upcoming, jobpost.CheckedIn, jobpost.Completed,
		} {
			parsed, err := jobpost.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := jobpost.StatusFromString("cancelled")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, jobpost.Open.Validate())
	require.Error(t, jobpost.Unknown.Validate())
	require.Error(t, jobpost.Status(99).Validate())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("open can be accepted", func(t *testing.T) {
		next, err := jobpost.Open.Accept()
		require.NoError(t, err)
		assert.Equal(t, jobpost.Upcoming, next)
	})

	t.Run("every other status conflicts", func(t *testing.T) {
		for _, s := range []jobpost.Status{
			jobpost.Draft, jobpost.Assigned, jobpost.Upcoming,
			jobpost.CheckedIn, jobpost.Completed,
		} {
			_, err := s.Accept()
			require.Error(t, err, "status %s", s)
			assert.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	})
}

func TestStatus_CheckIn(t *testing.T) {
	t.Run("upcoming can check in", func(t *testing.T) {
		next, err := jobpost.Upcoming.CheckIn()
		require.NoError(t, err)
		assert.Equal(t, jobpost.CheckedIn, next)
	})

	t.Run("every other status conflicts", func(t *testing.T) {
		for _, s := range []jobpost.Status{
			jobpost.Draft, jobpost.Open, jobpost.Assigned, jobpost.CheckedIn, jobpost.Completed,
		} {
			_, err := s.CheckIn()
			require.Error(t, err, "status %s", s)
			assert.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	})
}

func TestStatus_CheckOut(t *testing.T) {
	t.Run("any valid status can be checked out", func(t *testing.T) {
		for _, s := range []jobpost.Status{
			jobpost.Draft, jobpost.Open, jobpost.Assigned,
			jobpost.Upcoming, jobpost.CheckedIn, jobpost.Completed,
		} {
			next, err := s.CheckOut()
			require.NoError(t, err, "status %s", s)
			assert.Equal(t, jobpost.Completed, next)
		}
	})

	t.Run("unknown cannot", func(t *testing.T) {
		_, err := jobpost.Unknown.CheckOut()
		require.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to jobpost.Status }{
		{jobpost.Draft, jobpost.Open},
		{jobpost.Open, jobpost.Assigned},
		{jobpost.Open, jobpost.Upcoming},
		{jobpost.Assigned, jobpost.Upcoming},
		{jobpost.Upcoming, jobpost.CheckedIn},
		{jobpost.CheckedIn, jobpost.Completed},
	}
	for _, tc := range allowed {
		assert.NoError(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	t.Run("same status is a no-op", func(t *testing.T) {
		assert.NoError(t, jobpost.Open.CanTransitionTo(jobpost.Open))
		assert.NoError(t, jobpost.Completed.CanTransitionTo(jobpost.Completed))
	})

	t.Run("backward and skipping edges conflict", func(t *testing.T) {
		forbidden := []struct{ from, to jobpost.Status }{
			{jobpost.Open, jobpost.Draft},
			{jobpost.Upcoming, jobpost.Open},
			{jobpost.Open, jobpost.Completed},
			{jobpost.Completed, jobpost.Open},
			{jobpost.Draft, jobpost.CheckedIn},
		}
		for _, tc := range forbidden {
			err := tc.from.CanTransitionTo(tc.to)
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
			assert.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	})

	t.Run("invalid target rejected", func(t *testing.T) {
		err := jobpost.Open.CanTransitionTo(jobpost.Unknown)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
