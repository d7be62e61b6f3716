package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruitment/pkg/candidate"
	"github.com/artem13815/recruitment/pkg/skill"
)

// ApplicationRepository хранит отклики кандидатов и их навыки.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, a candidate.Application) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO applications (id, job_offer_id, first_name, last_name, email, phone, status,
	interview_at, recruiter_notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, a.ID, a.JobOfferID, a.FirstName, a.LastName, a.Email, a.Phone, string(a.Status),
		a.InterviewAt, a.RecruiterNotes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return mapErr(err)
	}
	if err := insertSkills(ctx, tx, a.ID, a.Skills); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertSkills(ctx context.Context, tx pgx.Tx, appID uuid.UUID, skills []candidate.Skill) error {
	for i, s := range skills {
		_, err := tx.Exec(ctx, `
INSERT INTO application_skills (application_id, skill_id, level, confidence, position)
VALUES ($1, $2, $3, $4, $5)
`, appID, s.SkillID, string(s.Level), s.Confidence, i)
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

const applicationColumns = `a.id, a.job_offer_id, a.first_name, a.last_name, a.email, a.phone, a.status,
	a.interview_at, a.recruiter_notes, a.created_at, a.updated_at`

func scanApplication(row pgx.Row) (candidate.Application, error) {
	var (
		a                candidate.Application
		status           string
		interview        *time.Time
		created, updated time.Time
	)
	err := row.Scan(&a.ID, &a.JobOfferID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &status,
		&interview, &a.RecruiterNotes, &created, &updated)
	if err != nil {
		return candidate.Application{}, err
	}
	a.Status = candidate.Status(status)
	if interview != nil {
		t := interview.UTC()
		a.InterviewAt = &t
	}
	a.CreatedAt = created.UTC()
	a.UpdatedAt = updated.UTC()
	a.Skills = []candidate.Skill{}
	return a, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Application, error) {
	a, err := scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id))
	if err != nil {
		return candidate.Application{}, mapErr(err)
	}
	bySkill, err := r.skills(ctx, []uuid.UUID{id})
	if err != nil {
		return candidate.Application{}, err
	}
	if s, ok := bySkill[id]; ok {
		a.Skills = s
	}
	return a, nil
}

func (r *ApplicationRepository) ListByOffer(ctx context.Context, offerID uuid.UUID, limit, offset int) ([]candidate.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications a
WHERE a.job_offer_id = $1 ORDER BY a.created_at LIMIT $2 OFFSET $3`, offerID, limit, offset)
}

func (r *ApplicationRepository) ListAllByOffer(ctx context.Context, offerID uuid.UUID) ([]candidate.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications a
WHERE a.job_offer_id = $1 ORDER BY a.created_at`, offerID)
}

func (r *ApplicationRepository) ListForOfferOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]candidate.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications a
JOIN job_offers o ON o.id = a.job_offer_id
WHERE o.owner_id = $1 ORDER BY a.created_at DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
}

func (r *ApplicationRepository) ListAll(ctx context.Context, limit, offset int) ([]candidate.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications a
ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *ApplicationRepository) list(ctx context.Context, sql string, args ...any) ([]candidate.Application, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []candidate.Application{}
	var ids []uuid.UUID
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	bySkill, err := r.skills(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if s, ok := bySkill[out[i].ID]; ok {
			out[i].Skills = s
		}
	}
	return out, nil
}

func (r *ApplicationRepository) skills(ctx context.Context, appIDs []uuid.UUID) (map[uuid.UUID][]candidate.Skill, error) {
	rows, err := r.pool.Query(ctx, `
SELECT x.application_id, x.skill_id, s.name, x.level, x.confidence
FROM application_skills x
JOIN skills s ON s.id = x.skill_id
WHERE x.application_id = ANY($1)
ORDER BY x.application_id, x.position
`, appIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uuid.UUID][]candidate.Skill)
	for rows.Next() {
		var (
			appID uuid.UUID
			s     candidate.Skill
			level string
			conf  float32
		)
		if err := rows.Scan(&appID, &s.SkillID, &s.SkillName, &level, &conf); err != nil {
			return nil, err
		}
		s.Level = skill.Level(level)
		s.Confidence = float64(conf)
		out[appID] = append(out[appID], s)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) ReplaceSkills(ctx context.Context, id uuid.UUID, skills []candidate.Skill) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `UPDATE applications SET updated_at = $2 WHERE id = $1`, id, time.Now().UTC())
	if err := affected(tag, err); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM application_skills WHERE application_id = $1`, id); err != nil {
		return err
	}
	if err := insertSkills(ctx, tx, id, skills); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateStatus keeps the stored interview date and notes when the update
// carries none.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, upd candidate.StatusUpdate) error {
	var notes *string
	if upd.Notes != "" {
		notes = &upd.Notes
	}
	return affected(r.pool.Exec(ctx, `
UPDATE applications
SET status = $2,
	interview_at = COALESCE($3, interview_at),
	recruiter_notes = COALESCE($4, recruiter_notes),
	updated_at = $5
WHERE id = $1
`, id, string(upd.Status), upd.InterviewAt, notes, time.Now().UTC()))
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id))
}
