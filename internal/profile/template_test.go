package profile

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Segment
	}{
		{
			name:     "empty",
			template: "",
			want:     nil,
		},
		{
			name:     "literal only",
			template: "a",
			want:     []Segment{{Kind: Literal, Text: "a"}},
		},
		{
			name:     "immediate byte",
			template: "b,${0:02X}",
			want: []Segment{
				{Kind: Literal, Text: "b,$"},
				{Kind: Byte, Index: 0, Digits: 2},
			},
		},
		{
			name:     "little endian word",
			template: "${1:02X}{0:02X}",
			want: []Segment{
				{Kind: Literal, Text: "$"},
				{Kind: Byte, Index: 1, Digits: 2},
				{Kind: Byte, Index: 0, Digits: 2},
			},
		},
		{
			name:     "indexed suffix",
			template: "${0:02X},x",
			want: []Segment{
				{Kind: Literal, Text: "$"},
				{Kind: Byte, Index: 0, Digits: 2},
				{Kind: Literal, Text: ",x"},
			},
		},
		{
			name:     "target",
			template: "${0:04X}",
			want: []Segment{
				{Kind: Literal, Text: "$"},
				{Kind: Target, Index: 0, Digits: TargetDigits},
			},
		},
		{
			name:     "nibble and escaped braces",
			template: "{{r{0:1X}}}",
			want: []Segment{
				{Kind: Literal, Text: "{r"},
				{Kind: Byte, Index: 0, Digits: 1},
				{Kind: Literal, Text: "}"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.template)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, tmpl.Segments)
			assert.Equal(t, tt.template, tmpl.String())
		})
	}
}

func TestParseTemplateErrors(t *testing.T) {
	tests := []string{
		"${0:02X",
		"$0:02X}",
		"${0}",
		"${x:02X}",
		"${-1:02X}",
		"${0:08b}",
	}

	for _, template := range tests {
		t.Run(template, func(t *testing.T) {
			_, err := ParseTemplate(template)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedProfile))
		})
	}
}

func TestTemplateMaxIndex(t *testing.T) {
	tmpl, err := ParseTemplate("#${0:02X}{1:02X}")
	assert.NoError(t, err)
	assert.Equal(t, 1, tmpl.MaxIndex())
	assert.False(t, tmpl.HasTarget())

	tmpl, err = ParseTemplate("")
	assert.NoError(t, err)
	assert.Equal(t, -1, tmpl.MaxIndex())

	tmpl, err = ParseTemplate("${0:04X}")
	assert.NoError(t, err)
	assert.Equal(t, -1, tmpl.MaxIndex())
	assert.True(t, tmpl.HasTarget())
}
