package parser

import (
	"errors"
	"strings"
)

// ErrUnmatchedQuote rejects commands with an odd number of quotation marks.
// The command is refused outright instead of guessing what the author meant.
var ErrUnmatchedQuote = errors.New("unmatched quotation mark")

// Tokenize splits a raw command on spaces, keeping any double-quoted run of
// characters as a single token. Quoted tokens keep their surrounding quotes so
// later stages can tell them apart from bare words.
func Tokenize(raw string) ([]string, error) {
	parts := strings.Split(raw, `"`)

	if len(parts)%2 == 0 {
		return nil, ErrUnmatchedQuote
	}

	tokens := make([]string, 0, len(parts))

	for i, part := range parts {
		if part == "" {
			continue
		}

		// Odd segments sat between a pair of quotes.
		if i%2 == 1 {
			tokens = append(tokens, `"`+part+`"`)
			continue
		}

		tokens = append(tokens, strings.Fields(part)...)
	}

	return tokens, nil
}

// IsQuoted reports whether the token came from a quoted run.
func IsQuoted(token string) bool {
	return len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`)
}

// Unquote strips the quote markers from a quoted token, if present.
func Unquote(token string) string {
	if IsQuoted(token) {
		return token[1 : len(token)-1]
	}
	return token
}

func isFlag(token string) bool {
	return strings.HasPrefix(token, "-") && !IsQuoted(token)
}
