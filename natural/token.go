package natural

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Token. The declaration order is also the
// order used when tokens of different kinds meet at the same position:
// numbers sort before sizes, sizes before text.
type Kind uint8

const (
	KindNumber Kind = iota + 1
	KindSize
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindSize:
		return "Size"
	case KindText:
		return "Text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is one classified fragment of an input string. Raw is a slice of the
// input (or, for a size phrase whose words were separated by more than one
// whitespace byte, the phrase re-joined with a single space).
type Token struct {
	kind   Kind
	raw    string
	start  int
	end    int
	number Number
	size   SizeRank
}

func textToken(raw string, start int) Token {
	return Token{kind: KindText, raw: raw, start: start, end: start + len(raw)}
}

func numberToken(raw string, value Number, start int) Token {
	return Token{kind: KindNumber, raw: raw, start: start, end: start + len(raw), number: value}
}

func sizeToken(raw string, rank SizeRank, start, end int) Token {
	return Token{kind: KindSize, raw: raw, start: start, end: end, size: rank}
}

// Kind returns the token's variant.
func (t Token) Kind() Kind {
	return t.kind
}

// Raw returns the surface text of the token.
func (t Token) Raw() string {
	return t.raw
}

// Span returns the byte offsets [start, end) of the token in the original input.
func (t Token) Span() (start, end int) {
	return t.start, t.end
}

// Number returns the numeric value of a Number token.
func (t Token) Number() (Number, bool) {
	return t.number, t.kind == KindNumber
}

// Size returns the rank of a Size token.
func (t Token) Size() (SizeRank, bool) {
	return t.size, t.kind == KindSize
}

// Compare orders t against other; see CompareTokens.
func (t Token) Compare(other Token) int {
	return CompareTokens(t, other)
}

// Equals reports whether the two tokens are equivalent for ordering purposes.
func (t Token) Equals(other Token) bool {
	return CompareTokens(t, other) == 0
}

func (t Token) String() string {
	switch t.kind {
	case KindNumber:
		return fmt.Sprintf("Number(%q, %s, %d)", t.raw, t.number, t.start)
	case KindSize:
		return fmt.Sprintf("Size(%q, %s, %d)", t.raw, t.size, t.start)
	case KindText:
		return fmt.Sprintf("Text(%q, %d)", t.raw, t.start)
	default:
		return fmt.Sprintf("%s(%q, %d)", t.kind, t.raw, t.start)
	}
}

// TokenizedString is the token sequence of one input. It is immutable once
// built and safe to share between goroutines.
type TokenizedString struct {
	input  string
	tokens []Token
}

// Input returns the string that was tokenized.
func (s TokenizedString) Input() string {
	return s.input
}

// Len returns the number of tokens.
func (s TokenizedString) Len() int {
	return len(s.tokens)
}

// At returns the i-th token. It panics when i is out of range.
func (s TokenizedString) At(i int) Token {
	return s.tokens[i]
}

// Tokens returns a copy of the token sequence.
func (s TokenizedString) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)

	return out
}

// Normalized joins the raw text of every token, putting a single space
// between tokens that came from different words. The result is the input with
// whitespace runs collapsed and trimmed.
func (s TokenizedString) Normalized() string {
	var sb strings.Builder

	sb.Grow(len(s.input))

	for i, tok := range s.tokens {
		if i > 0 && s.tokens[i-1].end != tok.start {
			sb.WriteByte(' ')
		}

		sb.WriteString(tok.raw)
	}

	return sb.String()
}

// Compare orders two token sequences position by position. The first
// non-equivalent pair decides; if one sequence runs out first it sorts first.
func (s TokenizedString) Compare(other TokenizedString) int {
	n := min(len(s.tokens), len(other.tokens))

	for i := range n {
		if c := CompareTokens(s.tokens[i], other.tokens[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(s.tokens) < len(other.tokens):
		return -1
	case len(s.tokens) > len(other.tokens):
		return 1
	default:
		return 0
	}
}

// Equals reports whether the two sequences are equivalent for ordering purposes.
func (s TokenizedString) Equals(other TokenizedString) bool {
	return s.Compare(other) == 0
}

func (s TokenizedString) String() string {
	parts := make([]string, len(s.tokens))
	for i, tok := range s.tokens {
		parts[i] = tok.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
