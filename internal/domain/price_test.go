package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
		wantErr bool
	}{
		{
			name:    "comma-grouped decimal",
			display: "$1,234.56",
			want:    1234.56,
		},
		{
			name:    "zero",
			display: "$0",
			want:    0,
		},
		{
			name:    "no decimal part",
			display: "$450",
			want:    450,
		},
		{
			name:    "multiple thousands groups",
			display: "$12,345,678.90",
			want:    12345678.90,
		},
		{
			name:    "surrounding whitespace",
			display: " $99.99 ",
			want:    99.99,
		},
		{
			name:    "missing currency symbol",
			display: "1234.56",
			wantErr: true,
		},
		{
			name:    "empty string",
			display: "",
			wantErr: true,
		},
		{
			name:    "symbol only",
			display: "$",
			wantErr: true,
		},
		{
			name:    "non-numeric amount",
			display: "$abc",
			wantErr: true,
		},
		{
			name:    "negative amount",
			display: "$-50",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayPrice(tt.display)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
