package skill

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/recruitment/pkg/apperr"
)

type memCatalog struct {
	cats   []Category
	skills []Skill
	asked  []string
}

func (m *memCatalog) CreateCategory(_ context.Context, c Category) error {
	m.cats = append(m.cats, c)
	return nil
}

func (m *memCatalog) ListCategories(context.Context) ([]Category, error) { return m.cats, nil }

func (m *memCatalog) Create(_ context.Context, s Skill) error {
	for _, x := range m.skills {
		if strings.EqualFold(x.Name, s.Name) {
			return apperr.ErrDuplicate
		}
	}
	m.skills = append(m.skills, s)
	return nil
}

func (m *memCatalog) GetByID(_ context.Context, id uuid.UUID) (Skill, error) {
	for _, s := range m.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return Skill{}, apperr.ErrNotFound
}

func (m *memCatalog) List(_ context.Context, limit, offset int) ([]Skill, error) {
	if offset >= len(m.skills) {
		return []Skill{}, nil
	}
	return m.skills[offset:min(len(m.skills), offset+limit)], nil
}

func (m *memCatalog) FindByNames(_ context.Context, names []string) ([]Skill, error) {
	m.asked = names
	var out []Skill
	for _, s := range m.skills {
		for _, n := range names {
			if strings.EqualFold(s.Name, n) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (m *memCatalog) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range m.skills {
		if s.ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func TestCreateCategoryAndSkill(t *testing.T) {
	repo := &memCatalog{}
	svc := NewService(repo)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "  Technical ", " backend ")
	require.NoError(t, err)
	assert.Equal(t, "Technical", cat.Name)
	assert.Equal(t, "backend", cat.Description)

	sk, err := svc.Create(ctx, Skill{Name: " Go ", CategoryID: cat.ID})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sk.ID)
	assert.Equal(t, "Go", sk.Name)
	assert.False(t, sk.CreatedAt.IsZero())

	got, err := svc.Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, sk.ID, got.ID)

	_, err = svc.Create(ctx, Skill{Name: "go", CategoryID: cat.ID})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&memCatalog{})
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "   ", "")
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Create(ctx, Skill{Name: "", CategoryID: uuid.New()})
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.Create(ctx, Skill{Name: "SQL"})
	assert.True(t, apperr.IsValidation(err))
}

func TestFindByNames_SkipsBlank(t *testing.T) {
	repo := &memCatalog{}
	svc := NewService(repo)
	ctx := context.Background()

	out, err := svc.FindByNames(ctx, []string{" ", ""})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Nil(t, repo.asked)

	_, err = svc.Create(ctx, Skill{Name: "Docker", CategoryID: uuid.New()})
	require.NoError(t, err)
	out, err = svc.FindByNames(ctx, []string{" docker ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"docker"}, repo.asked)
	require.Len(t, out, 1)
	assert.Equal(t, "Docker", out[0].Name)
}

func TestDelete(t *testing.T) {
	repo := &memCatalog{}
	svc := NewService(repo)
	ctx := context.Background()

	sk, err := svc.Create(ctx, Skill{Name: "PHP", CategoryID: uuid.New()})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, sk.ID))
	assert.ErrorIs(t, svc.Delete(ctx, sk.ID), apperr.ErrNotFound)
}
