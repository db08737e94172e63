package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *string
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"whitespace", "   ", nil},
		{"zero serial", 0, nil},
		{"known serial", 44197, strPtr("2021-01-01")},
		{"serial as string", "44197", strPtr("2021-01-01")},
		{"serial as float cell", 44197.0, strPtr("2021-01-01")},
		{"epoch boundary", 25569, strPtr("1970-01-01")},
		{"non-numeric passes through", "2023-05-10", strPtr("2023-05-10")},
		{"free text passes through", "ASAP", strPtr("ASAP")},
		{"NaN text passes through", "NaN", strPtr("NaN")},
		{"positive infinity passes through", "+Inf", strPtr("+Inf")},
		{"negative infinity passes through", "-Inf", strPtr("-Inf")},
		{"overflowing serial", 1e15, nil},
		{"far future serial", 1e9, nil},
		{"negative serial", -50000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SerialDate(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
