package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruitment/pkg/skill"
)

// SkillRepository хранит каталог навыков и их категории.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{pool: pool}
}

func (r *SkillRepository) CreateCategory(ctx context.Context, c skill.Category) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO skill_categories (id, name, description) VALUES ($1, $2, $3)
`, c.ID, c.Name, c.Description)
	return mapErr(err)
}

func (r *SkillRepository) ListCategories(ctx context.Context) ([]skill.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM skill_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []skill.Category{}
	for rows.Next() {
		var c skill.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SkillRepository) Create(ctx context.Context, s skill.Skill) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO skills (id, name, description, category_id, created_at)
VALUES ($1, $2, $3, $4, $5)
`, s.ID, s.Name, s.Description, s.CategoryID, s.CreatedAt)
	return mapErr(err)
}

const skillColumns = `id, name, description, category_id, created_at`

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	var s skill.Skill
	var created time.Time
	err := r.pool.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &created)
	if err != nil {
		return skill.Skill{}, mapErr(err)
	}
	s.CreatedAt = created.UTC()
	return s, nil
}

func (r *SkillRepository) List(ctx context.Context, limit, offset int) ([]skill.Skill, error) {
	return r.query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *SkillRepository) FindByNames(ctx context.Context, names []string) ([]skill.Skill, error) {
	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(n)
	}
	return r.query(ctx, `SELECT `+skillColumns+` FROM skills WHERE lower(name) = ANY($1) ORDER BY name`, lower)
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id))
}

func (r *SkillRepository) query(ctx context.Context, sql string, args ...any) ([]skill.Skill, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []skill.Skill{}
	for rows.Next() {
		var s skill.Skill
		var created time.Time
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &created); err != nil {
			return nil, err
		}
		s.CreatedAt = created.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
