package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

	// symbolic names that would vanish once punctuation is stripped
	symbolic = strings.NewReplacer(
		"c++", " cpp ",
		"c#", " csharp ",
		"f#", " fsharp ",
		".net", " dotnet ",
		"node.js", " nodejs ",
		"vue.js", " vuejs ",
		"ci/cd", " cicd ",
	)
)

// Normalize приводит текст к виду для сравнения фраз: нижний регистр,
// все не-буквенно-цифровые символы заменены пробелами, пробелы схлопнуты.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = symbolic.Replace(s)
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ContainsPhrase reports whether an already normalized phrase occurs in an
// already normalized text as whole words: "rest api" matches "... rest api ..."
// but not "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" || normalizedText == "" {
		return false
	}
	return strings.Contains(" "+normalizedText+" ", " "+normalizedPhrase+" ")
}

// Tokens returns the set of words of a normalized text.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, t := range strings.Fields(normalized) {
		out[t] = struct{}{}
	}
	return out
}
