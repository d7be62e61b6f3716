package nlp

import "strings"

// aliasGroups lists spellings that name the same skill. Entries are in
// normalized form.
var aliasGroups = [][]string{
	{"postgresql", "postgres"},
	{"kubernetes", "k8s"},
	{"go", "golang"},
	{"javascript", "js"},
	{"typescript", "ts"},
	{"rest", "rest api", "restful"},
	{"cicd", "ci cd"},
	{"doctrine orm", "doctrine"},
	{"symfony", "symfony framework"},
	{"sql", "mysql", "postgresql"},
	{"docker", "docker compose"},
	{"nodejs", "node"},
	{"csharp", "c sharp"},
	{"cpp", "c plus plus"},
	{"dotnet", "net core"},
	{"machine learning", "ml"},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, g := range aliasGroups {
		for _, name := range g {
			for _, other := range g {
				if other != name {
					idx[name] = append(idx[name], other)
				}
			}
		}
	}
	return idx
}

// Aliases returns the normalized alternative spellings of a skill name,
// without the name itself. Multi-word names also get a token-wise expansion,
// so "postgres tuning" yields "postgresql tuning".
func Aliases(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return nil
	}
	seen := map[string]struct{}{base: {}}
	var out []string
	add := func(s string) {
		if _, ok := seen[s]; ok || s == "" {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, a := range aliasIndex[base] {
		add(a)
	}

	parts := strings.Fields(base)
	if len(parts) > 1 {
		for i, p := range parts {
			for _, a := range aliasIndex[p] {
				if strings.Contains(a, " ") {
					continue
				}
				expanded := append(append(append([]string{}, parts[:i]...), a), parts[i+1:]...)
				add(strings.Join(expanded, " "))
			}
		}
	}
	return out
}
