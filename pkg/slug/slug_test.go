package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"Ann", "Lee", "ann-lee"},
		{"  Ann  ", "Lee", "ann-lee"},
		{"Mary Jane", "O'Connor", "mary-jane-o-connor"},
		{"JEAN-LUC", "Picard", "jean-luc-picard"},
		{"Ann", "", "ann"},
		{"", "", ""},
		{"!!!", "???", ""},
		{"Bob3", "King", "bob3-king"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.first, tt.last), "Make(%q, %q)", tt.first, tt.last)
	}
}
