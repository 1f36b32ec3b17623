// Package highlight implements depth-based bracket highlighting.
//
// A Sequence scans a document range and yields one single-character
// span per visible bracket, colored by how deeply the bracket is
// nested within its own family. Braces, brackets and parentheses nest
// independently: a parenthesis inside two braces is still at
// parenthesis depth zero.
package highlight

// Family identifies a bracket family. Each family tracks nesting depth
// with its own counter.
type Family uint8

const (
	FamilyNone Family = iota

	// FamilyBrace covers { and }.
	FamilyBrace

	// FamilyBracket covers [ and ].
	FamilyBracket

	// FamilyParen covers ( and ).
	FamilyParen
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyBrace:
		return "brace"
	case FamilyBracket:
		return "bracket"
	case FamilyParen:
		return "paren"
	default:
		return "none"
	}
}

// Kind identifies a specific bracket character.
type Kind uint8

const (
	KindNone Kind = iota

	KindBraceOpen    // {
	KindBraceClose   // }
	KindBracketOpen  // [
	KindBracketClose // ]
	KindParenOpen    // (
	KindParenClose   // )
)

// KindOf returns the bracket kind for a rune, or KindNone for
// everything else.
func KindOf(r rune) Kind {
	switch r {
	case '{':
		return KindBraceOpen
	case '}':
		return KindBraceClose
	case '[':
		return KindBracketOpen
	case ']':
		return KindBracketClose
	case '(':
		return KindParenOpen
	case ')':
		return KindParenClose
	default:
		return KindNone
	}
}

// Family returns the family the kind belongs to.
func (k Kind) Family() Family {
	switch k {
	case KindBraceOpen, KindBraceClose:
		return FamilyBrace
	case KindBracketOpen, KindBracketClose:
		return FamilyBracket
	case KindParenOpen, KindParenClose:
		return FamilyParen
	default:
		return FamilyNone
	}
}

// IsOpen reports whether the kind is an opening bracket.
func (k Kind) IsOpen() bool {
	switch k {
	case KindBraceOpen, KindBracketOpen, KindParenOpen:
		return true
	default:
		return false
	}
}

// IsClose reports whether the kind is a closing bracket.
func (k Kind) IsClose() bool {
	return k != KindNone && !k.IsOpen()
}

// Rune returns the bracket character, or 0 for KindNone.
func (k Kind) Rune() rune {
	switch k {
	case KindBraceOpen:
		return '{'
	case KindBraceClose:
		return '}'
	case KindBracketOpen:
		return '['
	case KindBracketClose:
		return ']'
	case KindParenOpen:
		return '('
	case KindParenClose:
		return ')'
	default:
		return 0
	}
}

// String returns a readable name such as "brace-open".
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	if k.IsOpen() {
		return k.Family().String() + "-open"
	}
	return k.Family().String() + "-close"
}
