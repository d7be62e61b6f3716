package joboffer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/matching"
	"github.com/artem13815/recruitment/pkg/skill"
)

// Status of a job offer.
type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusDraft, StatusOpen, StatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job offer status %q", s)
}

// JobOffer описывает вакансию и требования к навыкам.
type JobOffer struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"ownerId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	Status       Status        `json:"status"`
	ClosingDate  *time.Time    `json:"closingDate,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	Requirements []Requirement `json:"requirements"`
}

// Requirement: навык, минимальный уровень и признак обязательности.
type Requirement struct {
	SkillID       uuid.UUID   `json:"skillId"`
	SkillName     string      `json:"skillName,omitempty"`
	RequiredLevel skill.Level `json:"requiredLevel"`
	Required      bool        `json:"required"`
}

// MatchInput projects the requirements, in stored order, for the matcher.
func (o JobOffer) MatchInput() []matching.Requirement {
	out := make([]matching.Requirement, 0, len(o.Requirements))
	for _, r := range o.Requirements {
		out = append(out, matching.Requirement{
			SkillID:       r.SkillID,
			RequiredLevel: r.RequiredLevel,
			Required:      r.Required,
		})
	}
	return out
}

// Repository: порт для работы с вакансиями.
type Repository interface {
	Create(ctx context.Context, o JobOffer) error
	GetByID(ctx context.Context, id uuid.UUID) (JobOffer, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]JobOffer, error)
	ListAll(ctx context.Context, limit, offset int) ([]JobOffer, error)
	ReplaceRequirements(ctx context.Context, id uuid.UUID, reqs []Requirement) error
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}
