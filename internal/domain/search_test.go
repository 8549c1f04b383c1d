package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_Validate(t *testing.T) {
	validQuery := func() *SearchQuery {
		return &SearchQuery{Origin: "DEN", Date: "2025-06-01"}
	}

	tests := []struct {
		name        string
		modify      func(*SearchQuery)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid query passes",
			modify:  func(q *SearchQuery) {},
			wantErr: false,
		},
		{
			name:    "valid query with destination passes",
			modify:  func(q *SearchQuery) { q.Destination = "MCO" },
			wantErr: false,
		},
		{
			name:        "empty origin fails",
			modify:      func(q *SearchQuery) { q.Origin = "" },
			wantErr:     true,
			errContains: "origin is required",
		},
		{
			name:        "invalid origin fails",
			modify:      func(q *SearchQuery) { q.Origin = "DENV" },
			wantErr:     true,
			errContains: "IATA code",
		},
		{
			name:        "same origin and destination fails",
			modify:      func(q *SearchQuery) { q.Destination = "DEN" },
			wantErr:     true,
			errContains: "must be different",
		},
		{
			name:        "missing date fails",
			modify:      func(q *SearchQuery) { q.Date = "" },
			wantErr:     true,
			errContains: "date is required",
		},
		{
			name:        "non padded date fails",
			modify:      func(q *SearchQuery) { q.Date = "2025-6-1" },
			wantErr:     true,
			errContains: "YYYY-MM-DD",
		},
		{
			name:        "impossible date fails",
			modify:      func(q *SearchQuery) { q.Date = "2025-02-30" },
			wantErr:     true,
			errContains: "YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.modify(q)

			err := q.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchQuery_Normalize(t *testing.T) {
	q := SearchQuery{Origin: " den ", Destination: "mco", Date: " 2025-06-01 "}
	q.Normalize()

	assert.Equal(t, "DEN", q.Origin)
	assert.Equal(t, "MCO", q.Destination)
	assert.Equal(t, "2025-06-01", q.Date)
	assert.NoError(t, q.Validate())
}

func TestIsIATACode(t *testing.T) {
	assert.True(t, IsIATACode("ORD"))
	assert.False(t, IsIATACode("ord"))
	assert.False(t, IsIATACode("KORD"))
	assert.False(t, IsIATACode(""))
}
