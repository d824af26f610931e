package registry

import (
	"errors"
	"testing"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NextID(t *testing.T) {
	r := New()
	assert.Equal(t, 1, r.NextID())
	assert.Equal(t, 1, r.NextID(), "NextID must not consume the id")

	require.NoError(t, r.Add(&domain.Customer{ID: 3, Name: "A", SkiLevel: domain.SkiLevelBeginner}))
	require.NoError(t, r.Add(&domain.Customer{ID: 7, Name: "B", SkiLevel: domain.SkiLevelExpert}))
	require.NoError(t, r.Add(&domain.Customer{ID: 2, Name: "C", SkiLevel: domain.SkiLevelExpert}))

	assert.Equal(t, 8, r.NextID())
}

func TestRegistry_Add_DuplicateID(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(&domain.Customer{ID: 1, Name: "DJ", SkiLevel: domain.SkiLevelBeginner}))

	err := r.Add(&domain.Customer{ID: 1, Name: "Other", SkiLevel: domain.SkiLevelExpert})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateID))
	assert.Equal(t, 1, r.Len())

	assert.True(t, errors.Is(r.Add(nil), domain.ErrInvalidArgument))
}

func TestRegistry_Exists(t *testing.T) {
	r := New()
	dj := &domain.Customer{ID: 1, Name: "DJ", SkiLevel: domain.SkiLevelBeginner}
	require.NoError(t, r.Add(dj))

	testCases := []struct {
		name      string
		candidate *domain.Customer
		want      bool
	}{
		{name: "same id", candidate: &domain.Customer{ID: 1, Name: "Zed", SkiLevel: domain.SkiLevelExpert}, want: true},
		{name: "name and level ignoring case", candidate: &domain.Customer{ID: 5, Name: "dj", SkiLevel: "beginner"}, want: true},
		{name: "name only", candidate: &domain.Customer{ID: 5, Name: "DJ", SkiLevel: domain.SkiLevelExpert}, want: false},
		{name: "stranger", candidate: &domain.Customer{ID: 5, Name: "Erica", SkiLevel: domain.SkiLevelExpert}, want: false},
		{name: "nil", candidate: nil, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Exists(tc.candidate))
		})
	}

	found, ok := r.Find(&domain.Customer{ID: 42, Name: "Dj", SkiLevel: domain.SkiLevelBeginner})
	require.True(t, ok)
	assert.Same(t, dj, found)
}

func TestRegistry_Reset(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(&domain.Customer{ID: 4, Name: "A", SkiLevel: domain.SkiLevelBeginner}))
	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, r.NextID())
}
