package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input  string
		want   Format
		wantOK bool
	}{
		{"api", APIKey, true},
		{"API", APIKey, true},
		{"A P I", APIKey, true},
		{"Api (125)", APIKey, true},
		{" geo ", GeographicName, true},
		{"GEO(21)", GeographicName, true},
		{"geo\t(21)", GeographicName, true},
		{"uuid", UUID, true},
		{"uuid7", UUIDv7, true},
		{"UUID7 (62)", UUIDv7, true},
		{"url", URLSafe, true},
		{"constellation", ConstellationName, true},
		{"sports", SportsReference, true},

		{"uuid (62)", 0, false},
		{"geo (22)", 0, false},
		{"uuid-7", 0, false},
		{"doesnotexist", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve_EveryFormatByLabelAndName(t *testing.T) {
	for _, f := range All() {
		got, ok := Resolve(f.Label())
		assert.True(t, ok, f.Label())
		assert.Equal(t, f, got)

		got, ok = Resolve(f.DisplayName())
		assert.True(t, ok, f.DisplayName())
		assert.Equal(t, f, got)
	}
}
