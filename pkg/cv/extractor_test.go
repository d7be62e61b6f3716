package cv

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/skill"
)

type fakeModel struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeModel) Ask(_ context.Context, _, user string) (string, error) {
	f.prompt = user
	return f.reply, f.err
}

func demoCatalog() []skill.Skill {
	names := []string{"PHP", "Symfony", "Doctrine ORM", "SQL", "Docker", "Kubernetes"}
	out := make([]skill.Skill, len(names))
	for i, n := range names {
		out[i] = skill.Skill{ID: uuid.New(), Name: n}
	}
	return out
}

const cvText = "Senior developer. 6 years of PHP and Symfony. Used Doctrine with MySQL. Deployed with k8s."

func TestSuggestWithoutModel(t *testing.T) {
	got := NewExtractor(nil, logging.Nop()).Suggest(context.Background(), cvText, demoCatalog())

	byName := map[string]Suggestion{}
	for _, s := range got {
		byName[s.Name] = s
		assert.Equal(t, skill.LevelBeginner, s.Level)
	}
	require.Len(t, got, 5)
	assert.Equal(t, 1.0, byName["PHP"].Confidence)
	assert.Equal(t, 1.0, byName["Symfony"].Confidence)
	assert.Equal(t, 0.7, byName["Doctrine ORM"].Confidence)
	assert.Equal(t, "doctrine", byName["Doctrine ORM"].Matched)
	assert.Equal(t, 0.7, byName["SQL"].Confidence)
	assert.Equal(t, 0.7, byName["Kubernetes"].Confidence)
	assert.NotContains(t, byName, "Docker")

	// exact hits first, then by name
	assert.Equal(t, "PHP", got[0].Name)
	assert.Equal(t, "Symfony", got[1].Name)
	assert.Equal(t, "Doctrine ORM", got[2].Name)
}

func TestSuggestRefinesLevelsWithModel(t *testing.T) {
	model := &fakeModel{reply: "```json\n{\"php\": \"expert\", \"Symfony\": \"ADVANCED\", \"SQL\": \"wizard\"}\n```"}
	got := NewExtractor(model, logging.Nop()).Suggest(context.Background(), cvText, demoCatalog())

	levels := map[string]skill.Level{}
	for _, s := range got {
		levels[s.Name] = s.Level
	}
	assert.Equal(t, skill.LevelExpert, levels["PHP"])
	assert.Equal(t, skill.LevelAdvanced, levels["Symfony"])
	assert.Equal(t, skill.LevelBeginner, levels["SQL"])
	assert.Contains(t, model.prompt, "Doctrine ORM")
}

func TestSuggestModelFailureKeepsDefaults(t *testing.T) {
	for _, m := range []*fakeModel{{err: errors.New("timeout")}, {reply: "I cannot help"}} {
		got := NewExtractor(m, logging.Nop()).Suggest(context.Background(), cvText, demoCatalog())
		require.NotEmpty(t, got)
		for _, s := range got {
			assert.Equal(t, skill.LevelBeginner, s.Level)
		}
	}
}

func TestSuggestNothingFound(t *testing.T) {
	model := &fakeModel{}
	got := NewExtractor(model, logging.Nop()).Suggest(context.Background(), "gardening", demoCatalog())
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, model.prompt)
}

func TestTruncateKeepsRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"php", 10, "php"},
		{"php", 2, "ph"},
		{"опыт", 3, "о"}, // byte 3 is inside "п"
		{"опыт", 4, "оп"},
		{"опыт", 1, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		assert.Equal(t, tt.want, got, "%q[:%d]", tt.in, tt.n)
		assert.True(t, utf8.ValidString(got))
	}
}

func TestSuggestSendsValidUTF8ForCyrillicCV(t *testing.T) {
	model := &fakeModel{reply: `{"PHP": "ADVANCED"}`}
	e := NewExtractor(model, logging.Nop())
	e.maxChars = 9
	text := "PHP опыт разработки"

	got := e.Suggest(context.Background(), text, demoCatalog())
	require.NotEmpty(t, got)
	assert.True(t, utf8.ValidString(model.prompt))
	// byte 9 falls inside "ы"
	assert.Contains(t, model.prompt, "<<<\nPHP оп\n>>>")
}
