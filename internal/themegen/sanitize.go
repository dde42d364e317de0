package themegen

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// checkCSSValue reports whether value can be emitted as the right-hand side
// of a custom property declaration. It returns the first offending token
// when it cannot, or "" for an empty value.
func checkCSSValue(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return "", false
	}

	lexer := css.NewLexer(parse.NewInputString(value))
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if lexer.Err() == io.EOF {
				return "", true
			}
			return string(text), false
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken,
			css.BadStringToken, css.BadURLToken, css.CDOToken, css.CDCToken:
			return string(text), false
		}
	}
}
