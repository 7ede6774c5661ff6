package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

var (
	start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end   = time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
)

func newRecruitment(t *testing.T, recruitable bool) *Recruitment {
	t.Helper()
	r, err := NewRecruitment(id.RecruitmentID(uuid.New()), "Backend course", start, end, recruitable, false, id.TermID(uuid.New()))
	require.NoError(t, err)
	return r
}

func TestNewRecruitmentInvariants(t *testing.T) {
	termID := id.TermID(uuid.New())
	recruitmentID := id.RecruitmentID(uuid.New())

	t.Run("blank title", func(t *testing.T) {
		_, err := NewRecruitment(recruitmentID, "   ", start, end, true, false, termID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
	t.Run("end before start", func(t *testing.T) {
		_, err := NewRecruitment(recruitmentID, "title", end, start, true, false, termID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
	t.Run("title is trimmed", func(t *testing.T) {
		r, err := NewRecruitment(recruitmentID, "  title ", start, end, true, false, termID)
		require.NoError(t, err)
		assert.Equal(t, "title", r.Title)
	})
}

func TestIsOpenForApplication(t *testing.T) {
	open := newRecruitment(t, true)
	closed := newRecruitment(t, false)

	tests := []struct {
		name   string
		r      *Recruitment
		now    time.Time
		want   bool
		status Status
	}{
		{"before start", open, start.Add(-time.Second), false, StatusRecruitable},
		{"exactly at start", open, start, true, StatusRecruiting},
		{"inside window", open, start.Add(24 * time.Hour), true, StatusRecruiting},
		{"exactly at end", open, end, true, StatusRecruiting},
		{"after end", open, end.Add(time.Second), false, StatusEnded},
		{"not recruitable inside window", closed, start.Add(time.Hour), false, StatusUnrecruitable},
		{"not recruitable after end", closed, end.Add(time.Hour), false, StatusEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IsOpenForApplication(tt.now))
			assert.Equal(t, tt.status, tt.r.Status(tt.now))
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.Error(t, newRecruitment(t, true).CanDelete())
	assert.NoError(t, newRecruitment(t, false).CanDelete())
}

func TestCatalog(t *testing.T) {
	recruitmentID := id.RecruitmentID(uuid.New())
	item := func(pos, max int) RecruitmentItem {
		i, err := NewRecruitmentItem(id.RecruitmentItemID(uuid.New()), recruitmentID, "question", pos, max, "")
		require.NoError(t, err)
		return *i
	}

	t.Run("orders items by position", func(t *testing.T) {
		second, first := item(2, 10), item(1, 5)
		c, err := NewCatalog([]RecruitmentItem{second, first})
		require.NoError(t, err)

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, first.ID, items[0].ID)
		assert.Equal(t, second.ID, items[1].ID)

		got, ok := c.Lookup(second.ID)
		assert.True(t, ok)
		assert.Equal(t, 10, got.MaximumLength)
	})

	t.Run("rejects duplicate positions", func(t *testing.T) {
		_, err := NewCatalog([]RecruitmentItem{item(1, 5), item(1, 5)})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		a := item(1, 5)
		b := a
		b.Position = 2
		_, err := NewCatalog([]RecruitmentItem{a, b})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("unknown item", func(t *testing.T) {
		c, err := NewCatalog(nil)
		require.NoError(t, err)
		_, ok := c.Lookup(id.RecruitmentItemID(uuid.New()))
		assert.False(t, ok)
		assert.Zero(t, c.Len())
	})

	t.Run("item requires positive maximum length", func(t *testing.T) {
		_, err := NewRecruitmentItem(id.RecruitmentItemID(uuid.New()), recruitmentID, "q", 0, 0, "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}
