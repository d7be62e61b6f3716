package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category группирует навыки каталога (например, "Technical").
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// Skill: элемент каталога навыков.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository: порт каталога навыков.
type Repository interface {
	CreateCategory(ctx context.Context, c Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, s Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	List(ctx context.Context, limit, offset int) ([]Skill, error)
	// FindByNames matches names case-insensitively; unknown names are skipped.
	FindByNames(ctx context.Context, names []string) ([]Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
