package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/apperr"
)

// UseCase manages the skill catalog.
type UseCase interface {
	CreateCategory(ctx context.Context, name, description string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, s Skill) (Skill, error)
	Get(ctx context.Context, id uuid.UUID) (Skill, error)
	List(ctx context.Context, limit, offset int) ([]Skill, error)
	FindByNames(ctx context.Context, names []string) ([]Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) CreateCategory(ctx context.Context, name, description string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, apperr.Validation("category name is required")
	}
	c := Category{ID: uuid.New(), Name: name, Description: strings.TrimSpace(description)}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) Create(ctx context.Context, sk Skill) (Skill, error) {
	sk.Name = strings.TrimSpace(sk.Name)
	if sk.Name == "" {
		return Skill{}, apperr.Validation("skill name is required")
	}
	if sk.CategoryID == uuid.Nil {
		return Skill{}, apperr.Validation("categoryId is required")
	}
	if sk.ID == uuid.Nil {
		sk.ID = uuid.New()
	}
	sk.Description = strings.TrimSpace(sk.Description)
	sk.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, sk); err != nil {
		return Skill{}, fmt.Errorf("create skill %q: %w", sk.Name, err)
	}
	return sk, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Skill, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) FindByNames(ctx context.Context, names []string) ([]Skill, error) {
	clean := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return []Skill{}, nil
	}
	return s.repo.FindByNames(ctx, clean)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
