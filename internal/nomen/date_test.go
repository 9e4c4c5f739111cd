package nomen_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mikrolab/nomen/internal/nomen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	valid := []struct {
		in   string
		want time.Time
	}{
		{in: "200517", want: time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)},
		{in: "200229", want: time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)}, // 2020 is a leap year
		{in: "991231", want: time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := nomen.ParseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{
		"200231", // no 31st of February
		"209913", // month 99 does not exist
		"210229", // 2021 is not a leap year
		"2020517",
		"20051",
		"2005ab",
		"",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := nomen.ParseDate(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, nomen.ErrBadDate))

			var de *nomen.DateError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, in, de.Value)
			assert.Contains(t, de.Error(), "expected YYMMDD format")
		})
	}
}
