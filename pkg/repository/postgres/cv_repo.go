package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/recruitment/pkg/cv"
)

// CVRepository хранит метаданные загруженных CV и извлечённый текст.
type CVRepository struct {
	pool *pgxpool.Pool
}

func NewCVRepository(pool *pgxpool.Pool) *CVRepository {
	return &CVRepository{pool: pool}
}

func (r *CVRepository) Create(ctx context.Context, c cv.CV, text string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO cvs (id, application_id, filename, mime_type, size_bytes, storage_uri, text, uploaded_at, parsed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, c.ID, c.ApplicationID, c.Filename, c.MimeType, c.Size, c.StorageURI, text, c.UploadedAt, c.ParsedAt)
	return mapErr(err)
}

const cvColumns = `id, application_id, filename, mime_type, size_bytes, storage_uri, uploaded_at, parsed_at`

func scanCV(row pgx.Row) (cv.CV, error) {
	var (
		c        cv.CV
		uploaded time.Time
		parsed   *time.Time
	)
	if err := row.Scan(&c.ID, &c.ApplicationID, &c.Filename, &c.MimeType, &c.Size, &c.StorageURI, &uploaded, &parsed); err != nil {
		return cv.CV{}, err
	}
	c.UploadedAt = uploaded.UTC()
	if parsed != nil {
		p := parsed.UTC()
		c.ParsedAt = &p
	}
	return c, nil
}

func (r *CVRepository) GetByID(ctx context.Context, id uuid.UUID) (cv.CV, error) {
	c, err := scanCV(r.pool.QueryRow(ctx, `SELECT `+cvColumns+` FROM cvs WHERE id = $1`, id))
	return c, mapErr(err)
}

func (r *CVRepository) GetText(ctx context.Context, id uuid.UUID) (string, error) {
	var text string
	err := r.pool.QueryRow(ctx, `SELECT text FROM cvs WHERE id = $1`, id).Scan(&text)
	return text, mapErr(err)
}

func (r *CVRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]cv.CV, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cvColumns+` FROM cvs WHERE application_id = $1 ORDER BY uploaded_at DESC`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []cv.CV{}
	for rows.Next() {
		c, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CVRepository) Delete(ctx context.Context, id uuid.UUID) (cv.CV, error) {
	c, err := scanCV(r.pool.QueryRow(ctx, `DELETE FROM cvs WHERE id = $1 RETURNING `+cvColumns, id))
	return c, mapErr(err)
}
