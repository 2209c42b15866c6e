package tokenize

import (
	"strings"
	"testing"
	"unicode"
)

func FuzzWords(f *testing.F) {
	f.Add("The bank reported strong growth.")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("u.s. rates can't fall; fees rose 5.2%...")
	f.Add(`"quoted" (bracketed) --dashed-- it's`)
	f.Add("2023forecast 1,000 q1.")

	f.Fuzz(func(t *testing.T, input string) {
		first := Words(input)
		for _, tok := range first {
			if tok == "" {
				t.Fatal("empty token")
			}
			if strings.IndexFunc(tok, unicode.IsSpace) >= 0 {
				t.Fatalf("token %q contains whitespace", tok)
			}
		}
		second := Words(input)
		if !equalTokens(first, second) {
			t.Fatalf("non-deterministic tokenization: %q vs %q", first, second)
		}
	})
}
