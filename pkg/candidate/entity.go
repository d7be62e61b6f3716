package candidate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/matching"
	"github.com/artem13815/recruitment/pkg/skill"
)

// Status is a plain attribute of an application; any status may follow any other.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusScreened  Status = "SCREENED"
	StatusInterview Status = "INTERVIEW"
	StatusHired     Status = "HIRED"
	StatusRejected  Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusNew, StatusScreened, StatusInterview, StatusHired, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Application: отклик кандидата на вакансию вместе с его навыками.
type Application struct {
	ID             uuid.UUID  `json:"id"`
	JobOfferID     uuid.UUID  `json:"jobOfferId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Status         Status     `json:"status"`
	InterviewAt    *time.Time `json:"interviewAt,omitempty"`
	RecruiterNotes string     `json:"recruiterNotes,omitempty"`
	Skills         []Skill    `json:"skills"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Skill: навык кандидата. Confidence в диапазоне [0,1]: 1 для введённых вручную,
// меньше для извлечённых из CV.
type Skill struct {
	SkillID    uuid.UUID   `json:"skillId"`
	SkillName  string      `json:"skillName,omitempty"`
	Level      skill.Level `json:"level"`
	Confidence float64     `json:"confidence"`
}

func (a Application) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// MatchInput projects the candidate's skills for the matcher.
func (a Application) MatchInput() []matching.CandidateSkill {
	out := make([]matching.CandidateSkill, 0, len(a.Skills))
	for _, s := range a.Skills {
		out = append(out, matching.CandidateSkill{SkillID: s.SkillID, Level: s.Level})
	}
	return out
}

// StatusUpdate is what ChangeStatus persists.
type StatusUpdate struct {
	Status      Status
	InterviewAt *time.Time
	Notes       string
}

// Repository: порт хранения откликов.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByOffer(ctx context.Context, offerID uuid.UUID, limit, offset int) ([]Application, error)
	// ListAllByOffer returns every application of the offer, oldest first.
	ListAllByOffer(ctx context.Context, offerID uuid.UUID) ([]Application, error)
	ListForOfferOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Application, error)
	ListAll(ctx context.Context, limit, offset int) ([]Application, error)
	ReplaceSkills(ctx context.Context, id uuid.UUID, skills []Skill) error
	UpdateStatus(ctx context.Context, id uuid.UUID, upd StatusUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
