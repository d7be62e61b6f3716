// Package matching scores a candidate's skills against a job offer's skill
// requirements. Functions here are pure and safe for concurrent use.
package matching

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/skill"
)

// Share of the percentage attributed to required and optional skills.
const (
	requiredShare = 70.0
	optionalShare = 30.0
)

// CandidateSkill is a candidate's proficiency in one skill.
type CandidateSkill struct {
	SkillID uuid.UUID   `json:"skillId"`
	Level   skill.Level `json:"level"`
}

// Requirement is one line of a job offer's skill requirements.
type Requirement struct {
	SkillID       uuid.UUID   `json:"skillId"`
	RequiredLevel skill.Level `json:"requiredLevel"`
	Required      bool        `json:"required"`
}

// Report is the outcome of CalculateMatch. Lists keep the order of the
// requirements passed in.
type Report struct {
	MatchPercentage float64       `json:"matchPercentage"`
	MatchedSkills   []Requirement `json:"matchedSkills"`
	MissingSkills   []Requirement `json:"missingSkills"`
	BonusSkills     []Requirement `json:"bonusSkills"`
	ExceedingSkills []Requirement `json:"exceedingSkills"`
	TotalRequired   int           `json:"totalRequired"`
	TotalOptional   int           `json:"totalOptional"`
}

// CalculateMatch classifies every requirement against the candidate's skills
// and computes a weighted percentage: 70 for required coverage, 30 for
// optional coverage. A job with no requirements is a 100% match.
//
// Required skills that are absent or below the required level both land in
// MissingSkills. Optional misses are not reported. If a skill appears more
// than once in candidateSkills the last entry wins.
func CalculateMatch(candidateSkills []CandidateSkill, requirements []Requirement) (Report, error) {
	levels := make(map[uuid.UUID]int, len(candidateSkills))
	for _, cs := range candidateSkills {
		w, ok := cs.Level.Weight()
		if !ok {
			return Report{}, fmt.Errorf("candidate skill %s: %w: %q", cs.SkillID, skill.ErrInvalidLevel, cs.Level)
		}
		levels[cs.SkillID] = w
	}

	rep := Report{
		MatchedSkills:   []Requirement{},
		MissingSkills:   []Requirement{},
		BonusSkills:     []Requirement{},
		ExceedingSkills: []Requirement{},
	}
	var matchedRequired, matchedOptional int

	for _, r := range requirements {
		need, ok := r.RequiredLevel.Weight()
		if !ok {
			return Report{}, fmt.Errorf("requirement %s: %w: %q", r.SkillID, skill.ErrInvalidLevel, r.RequiredLevel)
		}
		have, present := levels[r.SkillID]
		meets := present && have >= need

		if r.Required {
			rep.TotalRequired++
			if !meets {
				rep.MissingSkills = append(rep.MissingSkills, r)
				continue
			}
			matchedRequired++
			rep.MatchedSkills = append(rep.MatchedSkills, r)
		} else {
			rep.TotalOptional++
			if !meets {
				continue
			}
			matchedOptional++
			rep.BonusSkills = append(rep.BonusSkills, r)
		}
		if have > need {
			rep.ExceedingSkills = append(rep.ExceedingSkills, r)
		}
	}

	rep.MatchPercentage = percentage(matchedRequired, rep.TotalRequired, matchedOptional, rep.TotalOptional)
	return rep, nil
}

func percentage(matchedRequired, totalRequired, matchedOptional, totalOptional int) float64 {
	if totalRequired == 0 && totalOptional == 0 {
		return 100
	}
	requiredScore := requiredShare
	if totalRequired > 0 {
		requiredScore = float64(matchedRequired) / float64(totalRequired) * requiredShare
	}
	optionalScore := 0.0
	if totalOptional > 0 {
		optionalScore = float64(matchedOptional) / float64(totalOptional) * optionalShare
	}
	return round2(requiredScore + optionalScore)
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
