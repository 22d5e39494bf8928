package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "control characters and non-breaking space",
			input: "a\tb\nc\u00a0d",
			want:  "a b c d",
		},
		{
			name:  "plain text is untouched",
			input: "lugar donde se vive",
			want:  "lugar donde se vive",
		},
		{
			name:  "double space is collapsed",
			input: "casa  grande",
			want:  "casa grande",
		},
		{
			name:  "newline next to a space becomes a single space",
			input: "casa \ngrande",
			want:  "casa grande",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "non-ascii characters are kept",
			input: "construcción\u00a0destinada",
			want:  "construcción destinada",
		},
		// Single pass: three spaces become two, four become two.
		{
			name:  "three spaces are only partially collapsed",
			input: "a   b",
			want:  "a  b",
		},
		{
			name:  "four spaces are only partially collapsed",
			input: "a    b",
			want:  "a  b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_IsNotIdempotentOnLongSpaceRuns(t *testing.T) {
	once := Normalize("a\t\t\tb")
	twice := Normalize(once)

	assert.Equal(t, "a  b", once)
	assert.Equal(t, "a b", twice)
	assert.NotEqual(t, once, twice)
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "three spaces", input: "a   b", want: "a b"},
		{name: "several runs", input: "a  b     c", want: "a b c"},
		{name: "single spaces", input: "a b c", want: "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollapseSpaces(tt.input))
		})
	}
}
