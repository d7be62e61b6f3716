package matching

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruitment/pkg/skill"
)

func sid(n byte) uuid.UUID { return uuid.UUID{15: n} }

func TestCalculateMatch_NoRequirements(t *testing.T) {
	rep, err := CalculateMatch([]CandidateSkill{{SkillID: sid(1), Level: skill.LevelExpert}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, rep.MatchPercentage)
	assert.Empty(t, rep.MatchedSkills)
	assert.Empty(t, rep.MissingSkills)
	assert.Empty(t, rep.BonusSkills)
	assert.Empty(t, rep.ExceedingSkills)
	assert.Zero(t, rep.TotalRequired)
	assert.Zero(t, rep.TotalOptional)
}

func TestCalculateMatch_EmptyInputsProduceNonNilLists(t *testing.T) {
	rep, err := CalculateMatch(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, rep.MatchedSkills)
	assert.NotNil(t, rep.MissingSkills)
	assert.NotNil(t, rep.BonusSkills)
	assert.NotNil(t, rep.ExceedingSkills)
}

func TestCalculateMatch_RequiredSkillAbsent(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelAdvanced, Required: true}

	rep, err := CalculateMatch(nil, []Requirement{req})
	require.NoError(t, err)

	assert.Equal(t, 0.0, rep.MatchPercentage)
	assert.Equal(t, []Requirement{req}, rep.MissingSkills)
	assert.Empty(t, rep.MatchedSkills)
	assert.Equal(t, 1, rep.TotalRequired)
}

func TestCalculateMatch_InsufficientLevelSameAsAbsent(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelAdvanced, Required: true}

	absent, err := CalculateMatch(nil, []Requirement{req})
	require.NoError(t, err)
	tooLow, err := CalculateMatch([]CandidateSkill{{SkillID: sid(1), Level: skill.LevelIntermediate}}, []Requirement{req})
	require.NoError(t, err)

	assert.Equal(t, absent, tooLow)
	assert.Equal(t, []Requirement{req}, tooLow.MissingSkills)
}

func TestCalculateMatch_ExactLevelIsNotExceeding(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelAdvanced, Required: true}

	rep, err := CalculateMatch([]CandidateSkill{{SkillID: sid(1), Level: skill.LevelAdvanced}}, []Requirement{req})
	require.NoError(t, err)

	assert.Equal(t, []Requirement{req}, rep.MatchedSkills)
	assert.Empty(t, rep.ExceedingSkills)
	// no optional requirements: the optional share stays 0
	assert.Equal(t, 70.0, rep.MatchPercentage)
}

func TestCalculateMatch_ExactLevelsWithOptionalReachFull(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelAdvanced, Required: true}
	opt := Requirement{SkillID: sid(2), RequiredLevel: skill.LevelBeginner}

	rep, err := CalculateMatch([]CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelAdvanced},
		{SkillID: sid(2), Level: skill.LevelBeginner},
	}, []Requirement{req, opt})
	require.NoError(t, err)

	assert.Equal(t, []Requirement{opt}, rep.BonusSkills)
	assert.Empty(t, rep.ExceedingSkills)
	assert.Equal(t, 100.0, rep.MatchPercentage)
}

func TestCalculateMatch_HigherLevelIsExceeding(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelBeginner, Required: true}

	rep, err := CalculateMatch([]CandidateSkill{{SkillID: sid(1), Level: skill.LevelExpert}}, []Requirement{req})
	require.NoError(t, err)

	assert.Equal(t, []Requirement{req}, rep.MatchedSkills)
	assert.Equal(t, []Requirement{req}, rep.ExceedingSkills)
}

func TestCalculateMatch_OptionalSkills(t *testing.T) {
	hit := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelBeginner}
	above := Requirement{SkillID: sid(2), RequiredLevel: skill.LevelIntermediate}
	low := Requirement{SkillID: sid(3), RequiredLevel: skill.LevelExpert}
	absent := Requirement{SkillID: sid(4), RequiredLevel: skill.LevelBeginner}

	candidate := []CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelBeginner},
		{SkillID: sid(2), Level: skill.LevelAdvanced},
		{SkillID: sid(3), Level: skill.LevelAdvanced},
	}
	rep, err := CalculateMatch(candidate, []Requirement{hit, above, low, absent})
	require.NoError(t, err)

	assert.Equal(t, []Requirement{hit, above}, rep.BonusSkills)
	assert.Equal(t, []Requirement{above}, rep.ExceedingSkills)
	assert.Empty(t, rep.MissingSkills)
	assert.Empty(t, rep.MatchedSkills)
	assert.Equal(t, 4, rep.TotalOptional)
	// no required skills: 70 + 2/4*30
	assert.Equal(t, 85.0, rep.MatchPercentage)
}

func TestCalculateMatch_ScenarioB(t *testing.T) {
	entry1 := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelIntermediate, Required: true}
	entry2 := Requirement{SkillID: sid(2), RequiredLevel: skill.LevelBeginner, Required: false}
	candidate := []CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelAdvanced},
		{SkillID: sid(2), Level: skill.LevelBeginner},
	}

	rep, err := CalculateMatch(candidate, []Requirement{entry1, entry2})
	require.NoError(t, err)

	assert.Equal(t, 100.0, rep.MatchPercentage)
	assert.Equal(t, []Requirement{entry1}, rep.MatchedSkills)
	assert.Equal(t, []Requirement{entry2}, rep.BonusSkills)
	assert.Equal(t, []Requirement{entry1}, rep.ExceedingSkills)
	assert.Equal(t, 1, rep.TotalRequired)
	assert.Equal(t, 1, rep.TotalOptional)
}

func TestCalculateMatch_ScenarioC(t *testing.T) {
	reqs := []Requirement{
		{SkillID: sid(1), RequiredLevel: skill.LevelIntermediate, Required: true},
		{SkillID: sid(2), RequiredLevel: skill.LevelIntermediate, Required: true},
	}
	rep, err := CalculateMatch([]CandidateSkill{{SkillID: sid(2), Level: skill.LevelIntermediate}}, reqs)
	require.NoError(t, err)

	assert.Equal(t, 35.0, rep.MatchPercentage)
	assert.Equal(t, reqs[1:], rep.MatchedSkills)
	assert.Equal(t, reqs[:1], rep.MissingSkills)

	lvl, err := Classify(rep.MatchPercentage)
	require.NoError(t, err)
	assert.Equal(t, MatchPoor, lvl)
}

func TestCalculateMatch_Rounding(t *testing.T) {
	reqs := []Requirement{
		{SkillID: sid(1), RequiredLevel: skill.LevelBeginner, Required: true},
		{SkillID: sid(2), RequiredLevel: skill.LevelBeginner, Required: true},
		{SkillID: sid(3), RequiredLevel: skill.LevelBeginner, Required: true},
		{SkillID: sid(4), RequiredLevel: skill.LevelBeginner, Required: false},
		{SkillID: sid(5), RequiredLevel: skill.LevelBeginner, Required: false},
		{SkillID: sid(6), RequiredLevel: skill.LevelBeginner, Required: false},
	}
	candidate := []CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelBeginner},
		{SkillID: sid(2), Level: skill.LevelBeginner},
		{SkillID: sid(4), Level: skill.LevelBeginner},
	}
	rep, err := CalculateMatch(candidate, reqs)
	require.NoError(t, err)

	// 2/3*70 + 1/3*30 = 46.666.. + 10
	assert.Equal(t, 56.67, rep.MatchPercentage)
}

func TestCalculateMatch_DuplicateCandidateSkillLastWins(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelAdvanced, Required: true}

	rep, err := CalculateMatch([]CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelExpert},
		{SkillID: sid(1), Level: skill.LevelBeginner},
	}, []Requirement{req})
	require.NoError(t, err)
	assert.Equal(t, []Requirement{req}, rep.MissingSkills)

	rep, err = CalculateMatch([]CandidateSkill{
		{SkillID: sid(1), Level: skill.LevelBeginner},
		{SkillID: sid(1), Level: skill.LevelExpert},
	}, []Requirement{req})
	require.NoError(t, err)
	assert.Equal(t, []Requirement{req}, rep.ExceedingSkills)
}

func TestCalculateMatch_PreservesRequirementOrder(t *testing.T) {
	reqs := []Requirement{
		{SkillID: sid(9), RequiredLevel: skill.LevelBeginner, Required: true},
		{SkillID: sid(3), RequiredLevel: skill.LevelBeginner, Required: true},
		{SkillID: sid(7), RequiredLevel: skill.LevelBeginner, Required: true},
	}
	rep, err := CalculateMatch([]CandidateSkill{
		{SkillID: sid(7), Level: skill.LevelBeginner},
		{SkillID: sid(9), Level: skill.LevelBeginner},
	}, reqs)
	require.NoError(t, err)
	assert.Equal(t, []Requirement{reqs[0], reqs[2]}, rep.MatchedSkills)
}

func TestCalculateMatch_InvalidLevel(t *testing.T) {
	req := Requirement{SkillID: sid(1), RequiredLevel: skill.LevelBeginner, Required: true}

	_, err := CalculateMatch([]CandidateSkill{{SkillID: sid(1), Level: "GURU"}}, []Requirement{req})
	assert.ErrorIs(t, err, skill.ErrInvalidLevel)

	_, err = CalculateMatch(nil, []Requirement{{SkillID: sid(1), RequiredLevel: "", Required: true}})
	assert.ErrorIs(t, err, skill.ErrInvalidLevel)
}

func TestCalculateMatch_DoesNotMutateInputs(t *testing.T) {
	candidate := []CandidateSkill{{SkillID: sid(1), Level: skill.LevelExpert}}
	reqs := []Requirement{{SkillID: sid(1), RequiredLevel: skill.LevelBeginner, Required: true}}
	candidateCopy := append([]CandidateSkill(nil), candidate...)
	reqsCopy := append([]Requirement(nil), reqs...)

	first, err := CalculateMatch(candidate, reqs)
	require.NoError(t, err)
	second, err := CalculateMatch(candidate, reqs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, candidateCopy, candidate)
	assert.Equal(t, reqsCopy, reqs)
}

func TestCalculateMatch_RandomInputsHoldInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	levels := skill.Levels()

	for i := 0; i < 500; i++ {
		var candidate []CandidateSkill
		for n := rnd.Intn(8); n > 0; n-- {
			candidate = append(candidate, CandidateSkill{SkillID: sid(byte(rnd.Intn(10))), Level: levels[rnd.Intn(4)]})
		}
		var reqs []Requirement
		for n := rnd.Intn(8); n > 0; n-- {
			reqs = append(reqs, Requirement{
				SkillID:       sid(byte(rnd.Intn(10))),
				RequiredLevel: levels[rnd.Intn(4)],
				Required:      rnd.Intn(2) == 0,
			})
		}

		rep, err := CalculateMatch(candidate, reqs)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, rep.MatchPercentage, 0.0)
		assert.LessOrEqual(t, rep.MatchPercentage, 100.0)
		assert.Equal(t, len(reqs), rep.TotalRequired+rep.TotalOptional)
		assert.Equal(t, rep.TotalRequired, len(rep.MatchedSkills)+len(rep.MissingSkills))
		assert.LessOrEqual(t, len(rep.BonusSkills), rep.TotalOptional)

		satisfied := append(append([]Requirement{}, rep.MatchedSkills...), rep.BonusSkills...)
		for _, ex := range rep.ExceedingSkills {
			assert.Contains(t, satisfied, ex)
		}
		for _, m := range rep.MissingSkills {
			assert.True(t, m.Required)
			assert.NotContains(t, rep.MatchedSkills, m)
		}
	}
}
