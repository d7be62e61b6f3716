package joboffer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/auth"
)

// UseCase инкапсулирует сценарии работы с вакансиями.
type UseCase interface {
	Create(ctx context.Context, actor auth.Actor, o JobOffer) (JobOffer, error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (JobOffer, error)
	List(ctx context.Context, actor auth.Actor, limit, offset int) ([]JobOffer, error)
	UpdateRequirements(ctx context.Context, actor auth.Actor, id uuid.UUID, reqs []Requirement) error
	SetStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status Status) error
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, actor auth.Actor, o JobOffer) (JobOffer, error) {
	o.Title = strings.TrimSpace(o.Title)
	o.Description = strings.TrimSpace(o.Description)
	o.Location = strings.TrimSpace(o.Location)
	if o.Title == "" || o.Description == "" {
		return JobOffer{}, apperr.Validation("title and description are required")
	}
	if err := validateRequirements(o.Requirements); err != nil {
		return JobOffer{}, err
	}
	if o.Status == "" {
		o.Status = StatusOpen
	} else {
		st, err := ParseStatus(string(o.Status))
		if err != nil {
			return JobOffer{}, apperr.Validation(err.Error())
		}
		o.Status = st
	}
	if o.ClosingDate != nil && !o.ClosingDate.IsZero() {
		cd := o.ClosingDate.UTC()
		o.ClosingDate = &cd
	}
	if o.Requirements == nil {
		o.Requirements = []Requirement{}
	}
	o.ID = uuid.New()
	o.OwnerID = actor.ID
	o.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, o); err != nil {
		return JobOffer{}, fmt.Errorf("create job offer: %w", err)
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (JobOffer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return JobOffer{}, err
	}
	if !actor.IsAdmin() && o.OwnerID != actor.ID {
		// чужие вакансии не раскрываем
		return JobOffer{}, apperr.ErrNotFound
	}
	return o, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, limit, offset int) ([]JobOffer, error) {
	if actor.IsAdmin() {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.List(ctx, actor.ID, limit, offset)
}

func (s *service) UpdateRequirements(ctx context.Context, actor auth.Actor, id uuid.UUID, reqs []Requirement) error {
	if err := validateRequirements(reqs); err != nil {
		return err
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.ReplaceRequirements(ctx, id, reqs)
}

func (s *service) SetStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status Status) error {
	status, err := ParseStatus(string(status))
	if err != nil {
		return apperr.Validation(err.Error())
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateRequirements(reqs []Requirement) error {
	seen := make(map[uuid.UUID]struct{}, len(reqs))
	for i, r := range reqs {
		if r.SkillID == uuid.Nil {
			return apperr.Validationf("requirements[%d]: skillId is required", i)
		}
		if !r.RequiredLevel.Valid() {
			return apperr.Validationf("requirements[%d]: invalid level %q", i, r.RequiredLevel)
		}
		if _, dup := seen[r.SkillID]; dup {
			return apperr.Validationf("requirements[%d]: skill %s listed twice", i, r.SkillID)
		}
		seen[r.SkillID] = struct{}{}
	}
	return nil
}
