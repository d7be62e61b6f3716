package cv

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/recruitment/pkg/llm"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/nlp"
	"github.com/artem13815/recruitment/pkg/skill"
)

const (
	confidenceExact = 1.0
	confidenceAlias = 0.7
)

// Extractor finds catalog skills mentioned in CV text.
type Extractor struct {
	model    llm.ChatModel
	log      *logging.Logger
	maxChars int
}

// NewExtractor builds an extractor. model may be nil; then every suggestion
// gets the BEGINNER level.
func NewExtractor(model llm.ChatModel, log *logging.Logger) *Extractor {
	return &Extractor{model: model, log: log, maxChars: 12000}
}

// Suggest returns the catalog skills found in text, most confident first.
func (e *Extractor) Suggest(ctx context.Context, text string, catalog []skill.Skill) []Suggestion {
	norm := nlp.Normalize(text)
	out := []Suggestion{}
	for _, sk := range catalog {
		name := nlp.Normalize(sk.Name)
		if name == "" {
			continue
		}
		s := Suggestion{SkillID: sk.ID, Name: sk.Name, Level: skill.LevelBeginner}
		switch {
		case nlp.ContainsPhrase(norm, name):
			s.Confidence, s.Matched = confidenceExact, name
		default:
			for _, alias := range nlp.Aliases(sk.Name) {
				if nlp.ContainsPhrase(norm, alias) {
					s.Confidence, s.Matched = confidenceAlias, alias
					break
				}
			}
		}
		if s.Matched != "" {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})

	if e.model != nil && len(out) > 0 {
		e.refineLevels(ctx, text, out)
	}
	return out
}

// refineLevels asks the model to grade each found skill. Unknown or invalid
// answers keep the default level.
func (e *Extractor) refineLevels(ctx context.Context, text string, found []Suggestion) {
	text = truncate(text, e.maxChars)
	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.Name
	}
	system := "You are an HR analyst. Reply with STRICT JSON only, no markdown, no explanations. Do not invent facts."
	user := fmt.Sprintf(
		"CV text:\n<<<\n%s\n>>>\n\nFor each skill in %q estimate the candidate's level.\n"+
			"Return one JSON object mapping the skill name to one of BEGINNER, INTERMEDIATE, ADVANCED, EXPERT.",
		text, names,
	)

	reply, err := e.model.Ask(ctx, system, user)
	if err != nil {
		e.log.Warn("skill level inference failed", "error", err)
		return
	}
	var levels map[string]string
	if err := llm.DecodeJSON(reply, &levels); err != nil {
		e.log.Warn("skill level inference returned invalid json", "error", err)
		return
	}
	byName := make(map[string]string, len(levels))
	for k, v := range levels {
		byName[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for i := range found {
		raw, ok := byName[strings.ToLower(found[i].Name)]
		if !ok {
			continue
		}
		if lvl, err := skill.ParseLevel(raw); err == nil {
			found[i].Level = lvl
		}
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
