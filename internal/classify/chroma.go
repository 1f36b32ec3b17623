package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/prism/internal/document"
)

// NewChroma builds a classifier for the document using a chroma lexer.
// The document is tokenized once up front; offset queries are answered
// from the resulting span table.
func NewChroma(doc *document.Snapshot) (*Table, error) {
	lexer := lexerFor(doc.Name(), doc.MimeType())
	return newChromaWithLexer(lexer, doc.Text())
}

// NewChromaForLanguage builds a classifier using the named chroma lexer
// (for example "go" or "python") regardless of the document name.
func NewChromaForLanguage(language, text string) (*Table, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("no lexer for language %q", language)
	}
	return newChromaWithLexer(lexer, text)
}

func newChromaWithLexer(lexer chroma.Lexer, text string) (*Table, error) {
	// EnsureLF stays off: rewriting CRLF would desynchronize token
	// offsets from the document's rune offsets.
	opts := &chroma.TokeniseOptions{State: "root"}
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), opts, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	var spans []Classification
	offset := 0
	for _, tok := range tokens {
		n := utf8.RuneCountInString(tok.Value)
		if cat, ok := categoryFor(tok.Type); ok {
			spans = append(spans, Classification{
				Category: cat,
				Start:    offset,
				End:      offset + n,
			})
		}
		offset += n
	}
	return NewTable(spans), nil
}

// lexerFor resolves a lexer by file name, then MIME type, then the
// text/x-<alias> convention, falling back to the plain text lexer.
func lexerFor(name, mimeType string) chroma.Lexer {
	if l := lexers.Match(name); l != nil {
		return l
	}
	if l := lexers.MatchMimeType(mimeType); l != nil {
		return l
	}
	if alias, ok := strings.CutPrefix(mimeType, "text/x-"); ok {
		if l := lexers.Get(alias); l != nil {
			return l
		}
	}
	return lexers.Fallback
}

// categoryFor maps a chroma token type onto the classification
// vocabulary. Types outside the skip-relevant categories report false.
func categoryFor(t chroma.TokenType) (string, bool) {
	switch {
	case t == chroma.LiteralStringChar:
		return CategoryCharacter, true
	case t.InSubCategory(chroma.LiteralString):
		return CategoryString, true
	case t == chroma.CommentSingle, t == chroma.CommentHashbang:
		return CategoryCommentLine, true
	case t.InCategory(chroma.Comment):
		return CategoryComment, true
	}
	return "", false
}
