package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind defines the type of a template segment.
type SegmentKind uint8

// template segment kinds.
const (
	Literal SegmentKind = iota // literal text
	Byte                       // operand byte selected by index
	Target                     // resolved relative target address
)

// TargetDigits is the number of hex digits used to render a resolved target address.
const TargetDigits = 4

// Segment is a single part of an operand template.
type Segment struct {
	Kind   SegmentKind
	Text   string // literal text for Literal segments
	Index  int    // operand byte index for Byte segments
	Digits int    // number of rendered hex digits, 1 renders the low nibble
}

// Template is a parsed operand format. It is an ordered list of literal text and
// placeholders that reference operand bytes in the order they were read from the stream.
type Template struct {
	source   string
	Segments []Segment
}

// String returns the template in its authoring syntax.
func (t Template) String() string {
	return t.source
}

// MaxIndex returns the highest operand byte index referenced or -1 if none is.
func (t Template) MaxIndex() int {
	highest := -1
	for _, seg := range t.Segments {
		if seg.Kind == Byte && seg.Index > highest {
			highest = seg.Index
		}
	}
	return highest
}

// HasTarget returns whether the template renders a resolved relative target.
func (t Template) HasTarget() bool {
	for _, seg := range t.Segments {
		if seg.Kind == Target {
			return true
		}
	}
	return false
}

// ParseTemplate parses an operand template.
//
// Placeholders are written as {index:format}:
//
//	{0:02X}  operand byte 0 as 2 hex digits
//	{1:1X}   low nibble of operand byte 1 as 1 hex digit
//	{0:04X}  resolved target address of a relative instruction
//
// Two byte values are written as two adjacent byte placeholders in the order the
// architecture stores them, for example ${1:02X}{0:02X} for little endian words.
// A literal brace is written as {{ or }}.
func ParseTemplate(s string) (Template, error) {
	t := Template{source: s}
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			t.Segments = append(t.Segments, Segment{Kind: Literal, Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{' && i+1 < len(s) && s[i+1] == '{', c == '}' && i+1 < len(s) && s[i+1] == '}':
			literal.WriteByte(c)
			i++

		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return Template{}, fmt.Errorf("%w: unterminated placeholder in template '%s'", ErrMalformedProfile, s)
			}
			seg, err := parsePlaceholder(s[i+1 : i+end])
			if err != nil {
				return Template{}, fmt.Errorf("%w: template '%s': %w", ErrMalformedProfile, s, err)
			}
			flush()
			t.Segments = append(t.Segments, seg)
			i += end

		case c == '}':
			return Template{}, fmt.Errorf("%w: unmatched '}' in template '%s'", ErrMalformedProfile, s)

		default:
			literal.WriteByte(c)
		}
	}

	flush()
	return t, nil
}

func parsePlaceholder(s string) (Segment, error) {
	index, format, ok := strings.Cut(s, ":")
	if !ok {
		return Segment{}, fmt.Errorf("placeholder '{%s}' has no format", s)
	}

	idx, err := strconv.Atoi(index)
	if err != nil || idx < 0 {
		return Segment{}, fmt.Errorf("invalid placeholder index '%s'", index)
	}

	switch strings.ToUpper(format) {
	case "02X":
		return Segment{Kind: Byte, Index: idx, Digits: 2}, nil
	case "1X", "X":
		return Segment{Kind: Byte, Index: idx, Digits: 1}, nil
	case "04X":
		return Segment{Kind: Target, Index: idx, Digits: TargetDigits}, nil
	default:
		return Segment{}, fmt.Errorf("unsupported placeholder format '%s'", format)
	}
}
