package candidate

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/joboffer"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/matching"
	"github.com/artem13815/recruitment/pkg/notify"
)

// Offers is the part of the job offer use cases needed here. Get enforces access.
type Offers interface {
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (joboffer.JobOffer, error)
}

// ReportCache stores match reports by their inputs.
type ReportCache interface {
	Lookup(ctx context.Context, skills []matching.CandidateSkill, reqs []matching.Requirement) (matching.Report, bool)
	Store(ctx context.Context, skills []matching.CandidateSkill, reqs []matching.Requirement, rep matching.Report)
}

// MatchResult is a scored application.
type MatchResult struct {
	Application Application         `json:"application"`
	Report      matching.Report     `json:"report"`
	Level       matching.MatchLevel `json:"level"`
}

// StatusChange reports the outcome of ChangeStatus. The status is saved even
// when the notification could not be sent.
type StatusChange struct {
	Application Application `json:"application"`
	Notified    bool        `json:"notified"`
	NotifyError string      `json:"notifyError,omitempty"`
}

// UseCase: сценарии работы с откликами кандидатов.
type UseCase interface {
	Create(ctx context.Context, actor auth.Actor, a Application) (Application, error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (Application, error)
	List(ctx context.Context, actor auth.Actor, limit, offset int) ([]Application, error)
	ListByOffer(ctx context.Context, actor auth.Actor, offerID uuid.UUID, limit, offset int) ([]Application, error)
	UpdateSkills(ctx context.Context, actor auth.Actor, id uuid.UUID, skills []Skill) error
	ChangeStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, upd StatusUpdate) (StatusChange, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	Match(ctx context.Context, actor auth.Actor, id uuid.UUID) (MatchResult, error)
	RankForOffer(ctx context.Context, actor auth.Actor, offerID uuid.UUID) ([]MatchResult, error)
}

type service struct {
	repo    Repository
	offers  Offers
	mailer  notify.Sender
	cache   ReportCache
	log     *logging.Logger
	workers int
}

// Option configures the service.
type Option func(*service)

func WithCache(c ReportCache) Option { return func(s *service) { s.cache = c } }

func WithRankWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewService(repo Repository, offers Offers, mailer notify.Sender, log *logging.Logger, opts ...Option) UseCase {
	s := &service{
		repo:    repo,
		offers:  offers,
		mailer:  mailer,
		log:     log,
		workers: 8,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, actor auth.Actor, a Application) (Application, error) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	if a.FirstName == "" || a.LastName == "" {
		return Application{}, apperr.Validation("firstName and lastName are required")
	}
	addr, err := mail.ParseAddress(a.Email)
	if err != nil {
		return Application{}, apperr.Validationf("invalid email %q", a.Email)
	}
	a.Email = addr.Address
	if err := validateSkills(a.Skills); err != nil {
		return Application{}, err
	}
	offer, err := s.offers.Get(ctx, actor, a.JobOfferID)
	if err != nil {
		return Application{}, err
	}
	if offer.Status == joboffer.StatusClosed {
		return Application{}, apperr.Validation("job offer is closed")
	}

	now := time.Now().UTC()
	a.ID = uuid.New()
	a.Status = StatusNew
	a.InterviewAt = nil
	a.RecruiterNotes = ""
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Skills == nil {
		a.Skills = []Skill{}
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, fmt.Errorf("create application: %w", err)
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (Application, error) {
	a, _, err := s.load(ctx, actor, id)
	return a, err
}

// load returns the application with its offer, hiding applications whose
// offer the actor cannot see.
func (s *service) load(ctx context.Context, actor auth.Actor, id uuid.UUID) (Application, joboffer.JobOffer, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, joboffer.JobOffer{}, err
	}
	offer, err := s.offers.Get(ctx, actor, a.JobOfferID)
	if err != nil {
		return Application{}, joboffer.JobOffer{}, err
	}
	return a, offer, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, limit, offset int) ([]Application, error) {
	if actor.IsAdmin() {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListForOfferOwner(ctx, actor.ID, limit, offset)
}

func (s *service) ListByOffer(ctx context.Context, actor auth.Actor, offerID uuid.UUID, limit, offset int) ([]Application, error) {
	if _, err := s.offers.Get(ctx, actor, offerID); err != nil {
		return nil, err
	}
	return s.repo.ListByOffer(ctx, offerID, limit, offset)
}

func (s *service) UpdateSkills(ctx context.Context, actor auth.Actor, id uuid.UUID, skills []Skill) error {
	if err := validateSkills(skills); err != nil {
		return err
	}
	if _, _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.ReplaceSkills(ctx, id, skills)
}

func (s *service) ChangeStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, upd StatusUpdate) (StatusChange, error) {
	status, err := ParseStatus(string(upd.Status))
	if err != nil {
		return StatusChange{}, apperr.Validation(err.Error())
	}
	upd.Status = status
	a, offer, err := s.load(ctx, actor, id)
	if err != nil {
		return StatusChange{}, err
	}
	upd.Notes = strings.TrimSpace(upd.Notes)
	if err := s.repo.UpdateStatus(ctx, id, upd); err != nil {
		return StatusChange{}, fmt.Errorf("update status: %w", err)
	}

	a.Status = upd.Status
	if upd.InterviewAt != nil {
		a.InterviewAt = upd.InterviewAt
	}
	if upd.Notes != "" {
		a.RecruiterNotes = upd.Notes
	}
	a.UpdatedAt = time.Now().UTC()

	out := StatusChange{Application: a}
	if a.Email == "" || s.mailer == nil {
		return out, nil
	}
	msg := notify.BuildStatusMessage(a.Email, a.FullName(), offer.Title, string(upd.Status), upd.InterviewAt, upd.Notes)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Warn("status notification failed", "application", id, "status", upd.Status, "error", err)
		out.NotifyError = err.Error()
		return out, nil
	}
	out.Notified = true
	return out, nil
}

func (s *service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if _, _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Match(ctx context.Context, actor auth.Actor, id uuid.UUID) (MatchResult, error) {
	a, offer, err := s.load(ctx, actor, id)
	if err != nil {
		return MatchResult{}, err
	}
	return s.score(ctx, a, offer.MatchInput())
}

func (s *service) score(ctx context.Context, a Application, reqs []matching.Requirement) (MatchResult, error) {
	skills := a.MatchInput()
	rep, ok := s.lookup(ctx, skills, reqs)
	if !ok {
		var err error
		rep, err = matching.CalculateMatch(skills, reqs)
		if err != nil {
			return MatchResult{}, fmt.Errorf("score application %s: %w", a.ID, err)
		}
		if s.cache != nil {
			s.cache.Store(ctx, skills, reqs, rep)
		}
	}
	lvl, err := matching.Classify(rep.MatchPercentage)
	if err != nil {
		return MatchResult{}, fmt.Errorf("classify application %s: %w", a.ID, err)
	}
	return MatchResult{Application: a, Report: rep, Level: lvl}, nil
}

func (s *service) lookup(ctx context.Context, skills []matching.CandidateSkill, reqs []matching.Requirement) (matching.Report, bool) {
	if s.cache == nil {
		return matching.Report{}, false
	}
	return s.cache.Lookup(ctx, skills, reqs)
}

func validateSkills(skills []Skill) error {
	seen := make(map[uuid.UUID]struct{}, len(skills))
	for i, sk := range skills {
		if sk.SkillID == uuid.Nil {
			return apperr.Validationf("skills[%d]: skillId is required", i)
		}
		if !sk.Level.Valid() {
			return apperr.Validationf("skills[%d]: invalid level %q", i, sk.Level)
		}
		if sk.Confidence < 0 || sk.Confidence > 1 {
			return apperr.Validationf("skills[%d]: confidence must be within [0,1]", i)
		}
		if _, dup := seen[sk.SkillID]; dup {
			return apperr.Validationf("skills[%d]: skill %s listed twice", i, sk.SkillID)
		}
		seen[sk.SkillID] = struct{}{}
	}
	return nil
}
