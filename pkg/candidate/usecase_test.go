package candidate

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/joboffer"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/matching"
	"github.com/artem13815/recruitment/pkg/notify"
	"github.com/artem13815/recruitment/pkg/skill"
)

type memApps struct {
	mu   sync.Mutex
	apps map[uuid.UUID]Application
}

func newMemApps() *memApps { return &memApps{apps: map[uuid.UUID]Application{}} }

func (m *memApps) Create(_ context.Context, a Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps[a.ID] = a
	return nil
}

func (m *memApps) GetByID(_ context.Context, id uuid.UUID) (Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return Application{}, apperr.ErrNotFound
	}
	return a, nil
}

func (m *memApps) filter(keep func(Application) bool) []Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Application
	for _, a := range m.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *memApps) ListByOffer(_ context.Context, offerID uuid.UUID, _, _ int) ([]Application, error) {
	return m.filter(func(a Application) bool { return a.JobOfferID == offerID }), nil
}

func (m *memApps) ListAllByOffer(ctx context.Context, offerID uuid.UUID) ([]Application, error) {
	return m.ListByOffer(ctx, offerID, 0, 0)
}

func (m *memApps) ListForOfferOwner(context.Context, uuid.UUID, int, int) ([]Application, error) {
	return nil, errors.New("not used")
}

func (m *memApps) ListAll(context.Context, int, int) ([]Application, error) {
	return m.filter(func(Application) bool { return true }), nil
}

func (m *memApps) ReplaceSkills(_ context.Context, id uuid.UUID, skills []Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.apps[id]
	a.Skills = skills
	m.apps[id] = a
	return nil
}

func (m *memApps) UpdateStatus(_ context.Context, id uuid.UUID, upd StatusUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.apps[id]
	a.Status = upd.Status
	m.apps[id] = a
	return nil
}

func (m *memApps) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.apps, id)
	return nil
}

type stubOffers map[uuid.UUID]joboffer.JobOffer

func (s stubOffers) Get(_ context.Context, actor auth.Actor, id uuid.UUID) (joboffer.JobOffer, error) {
	o, ok := s[id]
	if !ok || (!actor.IsAdmin() && o.OwnerID != actor.ID) {
		return joboffer.JobOffer{}, apperr.ErrNotFound
	}
	return o, nil
}

type recordingMailer struct {
	sent []notify.Message
	err  error
}

func (r *recordingMailer) Send(_ context.Context, m notify.Message) error {
	r.sent = append(r.sent, m)
	return r.err
}

type mapCache struct {
	mu    sync.Mutex
	items map[string]matching.Report
	hits  int
}

func key(skills []matching.CandidateSkill, reqs []matching.Requirement) string {
	k := ""
	for _, s := range skills {
		k += s.SkillID.String() + string(s.Level)
	}
	k += "|"
	for _, r := range reqs {
		k += r.SkillID.String() + string(r.RequiredLevel)
	}
	return k
}

func (c *mapCache) Lookup(_ context.Context, s []matching.CandidateSkill, r []matching.Requirement) (matching.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rep, ok := c.items[key(s, r)]
	if ok {
		c.hits++
	}
	return rep, ok
}

func (c *mapCache) Store(_ context.Context, s []matching.CandidateSkill, r []matching.Requirement, rep matching.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key(s, r)] = rep
}

var (
	owner  = auth.Actor{ID: uuid.New(), Role: auth.RoleRecruiter}
	other  = auth.Actor{ID: uuid.New(), Role: auth.RoleRecruiter}
	admin  = auth.Actor{ID: uuid.New(), Role: auth.RoleAdmin}
	php    = uuid.New()
	docker = uuid.New()
	sql    = uuid.New()
)

type fixture struct {
	svc    UseCase
	repo   *memApps
	mailer *recordingMailer
	offer  joboffer.JobOffer
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	offer := joboffer.JobOffer{
		ID:      uuid.New(),
		OwnerID: owner.ID,
		Title:   "PHP Developer",
		Status:  joboffer.StatusOpen,
		Requirements: []joboffer.Requirement{
			{SkillID: php, RequiredLevel: skill.LevelAdvanced, Required: true},
			{SkillID: docker, RequiredLevel: skill.LevelIntermediate, Required: false},
		},
	}
	repo := newMemApps()
	mailer := &recordingMailer{}
	svc := NewService(repo, stubOffers{offer.ID: offer}, mailer, logging.Nop(), opts...)
	return fixture{svc: svc, repo: repo, mailer: mailer, offer: offer}
}

func (f fixture) apply(t *testing.T, first string, skills ...Skill) Application {
	t.Helper()
	a, err := f.svc.Create(context.Background(), owner, Application{
		JobOfferID: f.offer.ID,
		FirstName:  first,
		LastName:   "Doe",
		Email:      strings.TrimSpace(first) + "@example.com",
		Skills:     skills,
	})
	require.NoError(t, err)
	return a
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "  ann ", Skill{SkillID: php, Level: skill.LevelExpert, Confidence: 1})

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, StatusNew, a.Status)
	assert.Equal(t, "ann", a.FirstName)
	assert.Equal(t, "ann Doe", a.FullName())
	assert.Equal(t, "ann@example.com", a.Email)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestCreateStoresBareAddress(t *testing.T) {
	f := newFixture(t)
	a, err := f.svc.Create(context.Background(), owner, Application{
		JobOfferID: f.offer.ID,
		FirstName:  "Ann",
		LastName:   "Doe",
		Email:      " Ann Doe <ann@example.com> ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", a.Email)

	stored, err := f.repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", stored.Email)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	base := Application{JobOfferID: f.offer.ID, FirstName: "A", LastName: "B", Email: "a@b.c"}

	tests := []struct {
		name   string
		mutate func(*Application)
	}{
		{"no name", func(a *Application) { a.FirstName = " " }},
		{"bad email", func(a *Application) { a.Email = "nope" }},
		{"bad level", func(a *Application) { a.Skills = []Skill{{SkillID: php, Level: "GURU"}} }},
		{"nil skill", func(a *Application) { a.Skills = []Skill{{Level: skill.LevelBeginner}} }},
		{"confidence", func(a *Application) {
			a.Skills = []Skill{{SkillID: php, Level: skill.LevelBeginner, Confidence: 1.5}}
		}},
		{"duplicate skill", func(a *Application) {
			a.Skills = []Skill{{SkillID: php, Level: skill.LevelBeginner}, {SkillID: php, Level: skill.LevelExpert}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := base
			tt.mutate(&a)
			_, err := f.svc.Create(context.Background(), owner, a)
			assert.True(t, apperr.IsValidation(err), "got %v", err)
		})
	}
}

func TestCreateRejectsClosedOrForeignOffer(t *testing.T) {
	f := newFixture(t)
	app := Application{JobOfferID: f.offer.ID, FirstName: "A", LastName: "B", Email: "a@b.c"}

	_, err := f.svc.Create(context.Background(), other, app)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	closed := f.offer
	closed.Status = joboffer.StatusClosed
	svc := NewService(newMemApps(), stubOffers{closed.ID: closed}, nil, logging.Nop())
	_, err = svc.Create(context.Background(), owner, app)
	assert.True(t, apperr.IsValidation(err))
}

func TestAccessFollowsOffer(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "ann")
	ctx := context.Background()

	_, err := f.svc.Get(ctx, other, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = f.svc.Get(ctx, admin, a.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.svc.Delete(ctx, other, a.ID), apperr.ErrNotFound)

	_, err = f.svc.ListByOffer(ctx, other, f.offer.ID, 50, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, f.svc.Delete(ctx, owner, a.ID))
	_, err = f.svc.Get(ctx, owner, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateSkillsThenMatch(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "ann")
	ctx := context.Background()

	res, err := f.svc.Match(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Report.MatchPercentage)
	assert.Equal(t, matching.MatchPoor, res.Level)

	require.NoError(t, f.svc.UpdateSkills(ctx, owner, a.ID, []Skill{
		{SkillID: php, Level: skill.LevelExpert, Confidence: 1},
		{SkillID: docker, Level: skill.LevelIntermediate, Confidence: 0.7},
	}))
	res, err = f.svc.Match(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Report.MatchPercentage)
	assert.Equal(t, matching.MatchExcellent, res.Level)
	require.Len(t, res.Report.ExceedingSkills, 1)
	assert.Equal(t, php, res.Report.ExceedingSkills[0].SkillID)

	err = f.svc.UpdateSkills(ctx, owner, a.ID, []Skill{{SkillID: php, Level: "x"}})
	assert.True(t, apperr.IsValidation(err))
}

func TestChangeStatusSendsMail(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "ann")
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	out, err := f.svc.ChangeStatus(context.Background(), owner, a.ID, StatusUpdate{
		Status: StatusInterview, InterviewAt: &at, Notes: " see you ",
	})
	require.NoError(t, err)
	assert.True(t, out.Notified)
	assert.Empty(t, out.NotifyError)
	assert.Equal(t, StatusInterview, out.Application.Status)
	assert.Equal(t, "see you", out.Application.RecruiterNotes)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "ann@example.com", f.mailer.sent[0].To)
	assert.Equal(t, "Interview scheduled for PHP Developer", f.mailer.sent[0].Subject)

	stored, err := f.repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, stored.Status)
}

func TestChangeStatusKeepsStatusWhenMailFails(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = errors.New("smtp down")
	a := f.apply(t, "ann")

	out, err := f.svc.ChangeStatus(context.Background(), owner, a.ID, StatusUpdate{Status: StatusRejected})
	require.NoError(t, err)
	assert.False(t, out.Notified)
	assert.Equal(t, "smtp down", out.NotifyError)

	stored, _ := f.repo.GetByID(context.Background(), a.ID)
	assert.Equal(t, StatusRejected, stored.Status)
}

func TestChangeStatusNormalisesCase(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "ann")
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	out, err := f.svc.ChangeStatus(context.Background(), owner, a.ID, StatusUpdate{Status: " interview ", InterviewAt: &at})
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, out.Application.Status)

	stored, err := f.repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, stored.Status)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "Interview scheduled for PHP Developer", f.mailer.sent[0].Subject)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	a := f.apply(t, "ann")
	_, err := f.svc.ChangeStatus(context.Background(), owner, a.ID, StatusUpdate{Status: "ARCHIVED"})
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, f.mailer.sent)
}

func TestRankForOffer(t *testing.T) {
	cache := &mapCache{items: map[string]matching.Report{}}
	f := newFixture(t, WithCache(cache), WithRankWorkers(2))

	weak := f.apply(t, "weak", Skill{SkillID: php, Level: skill.LevelBeginner})
	time.Sleep(time.Millisecond)
	bestOld := f.apply(t, "best1", Skill{SkillID: php, Level: skill.LevelAdvanced}, Skill{SkillID: docker, Level: skill.LevelExpert})
	time.Sleep(time.Millisecond)
	mid := f.apply(t, "mid", Skill{SkillID: php, Level: skill.LevelExpert}, Skill{SkillID: sql, Level: skill.LevelExpert})
	time.Sleep(time.Millisecond)
	bestNew := f.apply(t, "best2", Skill{SkillID: docker, Level: skill.LevelIntermediate}, Skill{SkillID: php, Level: skill.LevelAdvanced})

	ranked, err := f.svc.RankForOffer(context.Background(), owner, f.offer.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	ids := []uuid.UUID{ranked[0].Application.ID, ranked[1].Application.ID, ranked[2].Application.ID, ranked[3].Application.ID}
	assert.Equal(t, []uuid.UUID{bestOld.ID, bestNew.ID, mid.ID, weak.ID}, ids)
	assert.Equal(t, 100.0, ranked[0].Report.MatchPercentage)
	assert.Equal(t, 70.0, ranked[2].Report.MatchPercentage)
	assert.Equal(t, matching.MatchGood, ranked[2].Level)
	assert.Equal(t, 0.0, ranked[3].Report.MatchPercentage)

	_, err = f.svc.RankForOffer(context.Background(), owner, f.offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, cache.hits)

	_, err = f.svc.RankForOffer(context.Background(), other, f.offer.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRankForOfferWithoutRequirements(t *testing.T) {
	offer := joboffer.JobOffer{ID: uuid.New(), OwnerID: owner.ID, Title: "Intern", Status: joboffer.StatusOpen}
	repo := newMemApps()
	svc := NewService(repo, stubOffers{offer.ID: offer}, nil, logging.Nop())
	_, err := svc.Create(context.Background(), owner, Application{JobOfferID: offer.ID, FirstName: "A", LastName: "B", Email: "a@b.c"})
	require.NoError(t, err)

	ranked, err := svc.RankForOffer(context.Background(), owner, offer.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 100.0, ranked[0].Report.MatchPercentage)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" hired ")
	require.NoError(t, err)
	assert.Equal(t, StatusHired, s)
	_, err = ParseStatus("")
	assert.Error(t, err)
}
