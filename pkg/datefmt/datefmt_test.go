package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docbridge/pkg/errors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr bool
	}{
		{
			name:    "iso date",
			pattern: "yyyy-MM-dd",
			want:    "2006-01-02",
		},
		{
			name:    "iso datetime with quoted T",
			pattern: "yyyy-MM-dd'T'HH:mm:ss",
			want:    "2006-01-02T15:04:05",
		},
		{
			name:    "milliseconds after dot",
			pattern: "yyyy-MM-dd HH:mm:ss.SSS",
			want:    "2006-01-02 15:04:05.000",
		},
		{
			name:    "month and weekday names",
			pattern: "EEEE, MMMM d",
			want:    "Monday, January 2",
		},
		{
			name:    "abbreviated month",
			pattern: "MMM d, yyyy",
			want:    "Jan 2, 2006",
		},
		{
			name:    "twelve hour clock",
			pattern: "hh:mm a",
			want:    "03:04 PM",
		},
		{
			name:    "iso zone offset",
			pattern: "yyyy-MM-dd'T'HH:mm:ssXXX",
			want:    "2006-01-02T15:04:05Z07:00",
		},
		{
			name:    "rfc822 zone offset",
			pattern: "yyyyMMdd HHmmss Z",
			want:    "20060102 150405 -0700",
		},
		{
			name:    "short year unpadded fields",
			pattern: "yy/M/d",
			want:    "06/1/2",
		},
		{
			name:    "escaped quote",
			pattern: "hh''mm",
			want:    "03'04",
		},
		{
			name:    "unknown pattern letter",
			pattern: "yyyy-QQ-dd",
			wantErr: true,
		},
		{
			name:    "fractional seconds without dot",
			pattern: "HHmmssSSS",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			pattern: "yyyy-'MM-dd",
			wantErr: true,
		},
		{
			name:    "quoted digits",
			pattern: "yyyy 'v1'",
			wantErr: true,
		},
		{
			name:    "literal digits",
			pattern: "mm12ss",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	f, err := New("yyyy-MM-dd")
	require.NoError(t, err)
	assert.Equal(t, "yyyy-MM-dd", f.Pattern())
	assert.Equal(t, "2006-01-02", f.Layout())

	ts := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", f.Format(ts))

	parsed, err := f.Parse("2024-03-07")
	require.NoError(t, err)
	assert.Equal(t, ts, parsed)
}

func TestFormatParseMismatch(t *testing.T) {
	f, err := New("yyyy-MM-dd")
	require.NoError(t, err)

	_, err = f.Parse("07/03/2024")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := New("yyyy-bb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported pattern letter")
}
