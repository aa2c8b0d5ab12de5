package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnPeriodKey(t *testing.T) {
	p := ReturnPeriod{Month: 4, Year: 2025}
	assert.Equal(t, "042025", p.Key())

	p = ReturnPeriod{Month: 12, Year: 2024}
	assert.Equal(t, "122024", p.Key())
}

func TestReturnPeriodValid(t *testing.T) {
	assert.True(t, ReturnPeriod{Month: 1, Year: 2025}.Valid())
	assert.True(t, ReturnPeriod{Month: 12, Year: 2025}.Valid())
	assert.False(t, ReturnPeriod{Month: 0, Year: 2025}.Valid())
	assert.False(t, ReturnPeriod{Month: 13, Year: 2025}.Valid())
	assert.False(t, ReturnPeriod{Month: 6, Year: 25}.Valid())
}

func TestParsePeriod(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p, err := ParsePeriod("072025")
		require.NoError(t, err)
		assert.Equal(t, ReturnPeriod{Month: 7, Year: 2025}, p)
		assert.Equal(t, "072025", p.Key())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, key := range []string{"", "132025", "002025", "7-2025", "2025-07", "07202", "0720255"} {
			_, err := ParsePeriod(key)
			assert.ErrorIs(t, err, ErrInvalidPeriod, "key %q", key)
		}
	})
}
