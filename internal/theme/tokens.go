package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/scale"
)

// Token is one addressable entry of a theme.
type Token struct {
	Category string
	// Name is empty for entries of the default scale.
	Name  string
	Step  int
	Value any
}

// Path returns the token address, e.g. "space.3" or "colors.primary.-2".
func (tok Token) Path() string {
	if tok.Name == "" {
		return fmt.Sprintf("%s.%d", tok.Category, tok.Step)
	}
	return fmt.Sprintf("%s.%s.%d", tok.Category, tok.Name, tok.Step)
}

// Tokens lists every entry of every scale, ordered by category, then the
// default scale before named scales, then step.
func (t Theme) Tokens() []Token {
	var tokens []Token
	for _, categoryName := range t.Categories() {
		if s, ok := t.Scale(categoryName); ok {
			tokens = appendScale(tokens, categoryName, "", s)
		}
		for _, name := range t.Names(categoryName) {
			s, _ := t.NamedScale(categoryName, name)
			tokens = appendScale(tokens, categoryName, name, s)
		}
	}
	return tokens
}

func appendScale(tokens []Token, categoryName, name string, s scale.Scale[any]) []Token {
	for i, value := range s.Values {
		tokens = append(tokens, Token{Category: categoryName, Name: name, Step: i - s.Offset, Value: value})
	}
	return tokens
}

// Dump renders the theme as one "path = value" line per token followed by
// the property aliases. Two dumps compare line by line.
func (t Theme) Dump() string {
	var b strings.Builder
	for _, tok := range t.Tokens() {
		fmt.Fprintf(&b, "%s = %v\n", tok.Path(), tok.Value)
	}
	for _, property := range sortedKeys(t.aliases) {
		fmt.Fprintf(&b, "alias.%s = %s\n", property, t.aliases[property])
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
