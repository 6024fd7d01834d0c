package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody(t *testing.T) {
	decls := NewCSSParser("width: 50%; Height:100px;background-color: rgb(1, 2, 3)").Body()
	assert.Equal(t, []Declaration{
		{Property: "width", Value: "50%"},
		{Property: "height", Value: "100px"},
		{Property: "background-color", Value: "rgb(1, 2, 3)"},
	}, decls)
}

func TestBodySkipsMalformed(t *testing.T) {
	decls := NewCSSParser("width 50%; :oops; margin: 1px 2px; top:").Body()
	assert.Equal(t, []Declaration{{Property: "margin", Value: "1px 2px"}}, decls)
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  string
	}{
		{"12px", 12, "px"},
		{"2.5pt", 2.5, "pt"},
		{"50%", 50, "%"},
		{"auto", 0, "auto"},
		{"7", 7, "px"},
		{" 3PX ", 3, "px"},
	}
	for _, tt := range tests {
		v, unit, err := ParseLength(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.value, v, tt.input)
		assert.Equal(t, tt.unit, unit, tt.input)
	}

	_, _, err := ParseLength("wide")
	assert.Error(t, err)
}
