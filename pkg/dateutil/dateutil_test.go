package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("01/09/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", FormatDate(d))
}

func TestSameOrBefore(t *testing.T) {
	a, _ := ParseDate("2026-01-01")
	b, _ := ParseDate("2026-01-02")

	assert.True(t, SameOrBefore(a, b))
	assert.True(t, SameOrBefore(a, a))
	assert.False(t, SameOrBefore(b, a))
}

func TestNextAfter(t *testing.T) {
	jan5, _ := ParseDate("2026-01-05")
	jan10, _ := ParseDate("2026-01-10")
	jan15, _ := ParseDate("2026-01-15")
	jan20, _ := ParseDate("2026-01-20")

	tests := []struct {
		name      string
		dates     []time.Time
		cutoff    time.Time
		want      time.Time
		wantFound bool
	}{
		{
			name:      "earliest strictly after cutoff",
			dates:     []time.Time{jan20, jan15, jan5},
			cutoff:    jan10,
			want:      jan15,
			wantFound: true,
		},
		{
			name:      "cutoff date itself is excluded",
			dates:     []time.Time{jan10},
			cutoff:    jan10,
			wantFound: false,
		},
		{
			name:      "no dates",
			dates:     nil,
			cutoff:    jan10,
			wantFound: false,
		},
		{
			name:      "all before cutoff",
			dates:     []time.Time{jan5, jan10},
			cutoff:    jan15,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := NextAfter(tt.dates, tt.cutoff)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
