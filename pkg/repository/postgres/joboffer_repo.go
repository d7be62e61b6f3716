package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruitment/pkg/joboffer"
	"github.com/artem13815/recruitment/pkg/skill"
)

// JobOfferRepository хранит вакансии и требования к навыкам в порядке ввода.
type JobOfferRepository struct {
	pool *pgxpool.Pool
}

func NewJobOfferRepository(pool *pgxpool.Pool) *JobOfferRepository {
	return &JobOfferRepository{pool: pool}
}

func (r *JobOfferRepository) Create(ctx context.Context, o joboffer.JobOffer) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO job_offers (id, owner_id, title, description, location, status, closing_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, o.ID, nullUUID(o.OwnerID), o.Title, o.Description, o.Location, string(o.Status), o.ClosingDate, o.CreatedAt)
	if err != nil {
		return mapErr(err)
	}
	if err := insertRequirements(ctx, tx, o.ID, o.Requirements); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertRequirements(ctx context.Context, tx pgx.Tx, offerID uuid.UUID, reqs []joboffer.Requirement) error {
	for i, req := range reqs {
		_, err := tx.Exec(ctx, `
INSERT INTO job_offer_skills (job_offer_id, skill_id, required_level, is_required, position)
VALUES ($1, $2, $3, $4, $5)
`, offerID, req.SkillID, string(req.RequiredLevel), req.Required, i)
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

const offerColumns = `id, COALESCE(owner_id, '00000000-0000-0000-0000-000000000000'::uuid), title, description, location, status, closing_date, created_at`

func scanOffer(row pgx.Row) (joboffer.JobOffer, error) {
	var (
		o       joboffer.JobOffer
		status  string
		closing *time.Time
		created time.Time
	)
	if err := row.Scan(&o.ID, &o.OwnerID, &o.Title, &o.Description, &o.Location, &status, &closing, &created); err != nil {
		return joboffer.JobOffer{}, err
	}
	o.Status = joboffer.Status(status)
	if closing != nil {
		c := closing.UTC()
		o.ClosingDate = &c
	}
	o.CreatedAt = created.UTC()
	o.Requirements = []joboffer.Requirement{}
	return o, nil
}

func (r *JobOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (joboffer.JobOffer, error) {
	o, err := scanOffer(r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM job_offers WHERE id = $1`, id))
	if err != nil {
		return joboffer.JobOffer{}, mapErr(err)
	}
	byOffer, err := r.requirements(ctx, []uuid.UUID{id})
	if err != nil {
		return joboffer.JobOffer{}, err
	}
	if reqs, ok := byOffer[id]; ok {
		o.Requirements = reqs
	}
	return o, nil
}

func (r *JobOfferRepository) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]joboffer.JobOffer, error) {
	return r.list(ctx, `SELECT `+offerColumns+` FROM job_offers WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
}

func (r *JobOfferRepository) ListAll(ctx context.Context, limit, offset int) ([]joboffer.JobOffer, error) {
	return r.list(ctx, `SELECT `+offerColumns+` FROM job_offers ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *JobOfferRepository) list(ctx context.Context, sql string, args ...any) ([]joboffer.JobOffer, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []joboffer.JobOffer{}
	var ids []uuid.UUID
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	byOffer, err := r.requirements(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if reqs, ok := byOffer[out[i].ID]; ok {
			out[i].Requirements = reqs
		}
	}
	return out, nil
}

func (r *JobOfferRepository) requirements(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]joboffer.Requirement, error) {
	rows, err := r.pool.Query(ctx, `
SELECT js.job_offer_id, js.skill_id, s.name, js.required_level, js.is_required
FROM job_offer_skills js
JOIN skills s ON s.id = js.skill_id
WHERE js.job_offer_id = ANY($1)
ORDER BY js.job_offer_id, js.position
`, offerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uuid.UUID][]joboffer.Requirement)
	for rows.Next() {
		var (
			offerID uuid.UUID
			req     joboffer.Requirement
			level   string
		)
		if err := rows.Scan(&offerID, &req.SkillID, &req.SkillName, &level, &req.Required); err != nil {
			return nil, err
		}
		req.RequiredLevel = skill.Level(level)
		out[offerID] = append(out[offerID], req)
	}
	return out, rows.Err()
}

func (r *JobOfferRepository) ReplaceRequirements(ctx context.Context, id uuid.UUID, reqs []joboffer.Requirement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	if err := tx.QueryRow(ctx, `SELECT 1 FROM job_offers WHERE id = $1 FOR UPDATE`, id).Scan(&one); err != nil {
		return mapErr(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_offer_skills WHERE job_offer_id = $1`, id); err != nil {
		return err
	}
	if err := insertRequirements(ctx, tx, id, reqs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *JobOfferRepository) SetStatus(ctx context.Context, id uuid.UUID, status joboffer.Status) error {
	return affected(r.pool.Exec(ctx, `UPDATE job_offers SET status = $2 WHERE id = $1`, id, string(status)))
}

func (r *JobOfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id))
}

func nullUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
