package style

import "strings"

// TitleAlignment is the horizontal placement of a title in the border.
type TitleAlignment int

const (
	// TitleCenter centers the title (default).
	TitleCenter TitleAlignment = iota
	// TitleStart places the title at the left edge.
	TitleStart
	// TitleEnd places the title at the right edge.
	TitleEnd
)

// TitlePosition is the vertical placement of a title.
type TitlePosition int

const (
	// TitleTop puts the title in the top border row (default).
	TitleTop TitlePosition = iota
	// TitleBottom puts the title in the bottom border row.
	TitleBottom
)

// TitleStyle fakes font variants by remapping ASCII letters and digits to
// the Unicode Mathematical Alphanumeric block. Characters without a
// variant (punctuation, non-ASCII) pass through unchanged; some variants
// have no digit forms.
type TitleStyle int

const (
	// TitleNormal applies no transformation (default).
	TitleNormal TitleStyle = iota
	TitleBold
	TitleItalic
	TitleBoldItalic
	TitleScript
	TitleBoldScript
	TitleSansSerif
	TitleBoldSansSerif
	TitleItalicSansSerif
	TitleMonospace
)

// fontBases holds the base codepoints for 'A', 'a' and '0' per style.
// A zero digit base means the style has no digit variants.
var fontBases = map[TitleStyle]struct{ upper, lower, digit rune }{
	TitleBold:            {0x1D400, 0x1D41A, 0x1D7CE},
	TitleItalic:          {0x1D434, 0x1D44E, 0},
	TitleBoldItalic:      {0x1D468, 0x1D482, 0},
	TitleScript:          {0x1D49C, 0x1D4B6, 0},
	TitleBoldScript:      {0x1D4D0, 0x1D4EA, 0},
	TitleSansSerif:       {0x1D5A0, 0x1D5BA, 0x1D7E2},
	TitleBoldSansSerif:   {0x1D5D4, 0x1D5EE, 0x1D7EC},
	TitleItalicSansSerif: {0x1D608, 0x1D622, 0},
	TitleMonospace:       {0x1D670, 0x1D68A, 0x1D7F6},
}

// Apply transforms text into the style's Unicode variant.
func (s TitleStyle) Apply(text string) string {
	bases, ok := fontBases[s]
	if !ok {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) * 4)
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(bases.upper + (r - 'A'))
		case r >= 'a' && r <= 'z':
			sb.WriteRune(bases.lower + (r - 'a'))
		case r >= '0' && r <= '9' && bases.digit != 0:
			sb.WriteRune(bases.digit + (r - '0'))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
