package cv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/candidate"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/skill"
)

// Applications resolves an application the actor may access.
type Applications interface {
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (candidate.Application, error)
}

// Catalog lists the skill catalog page by page.
type Catalog interface {
	List(ctx context.Context, limit, offset int) ([]skill.Skill, error)
}

// Files stores the uploaded bytes.
type Files interface {
	Save(name string, data []byte) (string, error)
	Open(uri string) (io.ReadCloser, error)
	Remove(uri string) error
}

// Upload is an incoming file.
type Upload struct {
	ApplicationID uuid.UUID
	Filename      string
	MimeType      string
	Data          []byte
}

// UseCase: сценарии работы с CV кандидатов.
type UseCase interface {
	Upload(ctx context.Context, actor auth.Actor, up Upload) (CV, error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (CV, error)
	Open(ctx context.Context, actor auth.Actor, id uuid.UUID) (CV, io.ReadCloser, error)
	ListByApplication(ctx context.Context, actor auth.Actor, applicationID uuid.UUID) ([]CV, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	Suggest(ctx context.Context, actor auth.Actor, id uuid.UUID) ([]Suggestion, error)
}

type service struct {
	repo      Repository
	apps      Applications
	catalog   Catalog
	files     Files
	extractor *Extractor
	log       *logging.Logger
	maxBytes  int64
}

func NewService(repo Repository, apps Applications, catalog Catalog, files Files, extractor *Extractor, log *logging.Logger, maxBytes int64) UseCase {
	return &service{
		repo:      repo,
		apps:      apps,
		catalog:   catalog,
		files:     files,
		extractor: extractor,
		log:       log,
		maxBytes:  maxBytes,
	}
}

func (s *service) Upload(ctx context.Context, actor auth.Actor, up Upload) (CV, error) {
	ext, err := Ext(up.Filename)
	if err != nil {
		return CV{}, apperr.Validation(err.Error())
	}
	if len(up.Data) == 0 {
		return CV{}, apperr.Validation("file is empty")
	}
	if s.maxBytes > 0 && int64(len(up.Data)) > s.maxBytes {
		return CV{}, apperr.Validationf("file too large: limit is %d bytes", s.maxBytes)
	}
	if _, err := s.apps.Get(ctx, actor, up.ApplicationID); err != nil {
		return CV{}, err
	}

	text, err := ExtractText(up.Filename, up.Data)
	if err != nil {
		return CV{}, apperr.Validationf("failed to read file: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return CV{}, apperr.Validation("no text could be extracted from the file")
	}

	id := uuid.New()
	uri, err := s.files.Save(id.String()+ext, up.Data)
	if err != nil {
		return CV{}, err
	}
	now := time.Now().UTC()
	c := CV{
		ID:            id,
		ApplicationID: up.ApplicationID,
		Filename:      up.Filename,
		MimeType:      up.MimeType,
		Size:          int64(len(up.Data)),
		StorageURI:    uri,
		UploadedAt:    now,
		ParsedAt:      &now,
	}
	if err := s.repo.Create(ctx, c, text); err != nil {
		if rmErr := s.files.Remove(uri); rmErr != nil {
			s.log.Warn("orphan cv file", "uri", uri, "error", rmErr)
		}
		return CV{}, fmt.Errorf("save cv: %w", err)
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (CV, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CV{}, err
	}
	if _, err := s.apps.Get(ctx, actor, c.ApplicationID); err != nil {
		return CV{}, err
	}
	return c, nil
}

func (s *service) Open(ctx context.Context, actor auth.Actor, id uuid.UUID) (CV, io.ReadCloser, error) {
	c, err := s.Get(ctx, actor, id)
	if err != nil {
		return CV{}, nil, err
	}
	rc, err := s.files.Open(c.StorageURI)
	if err != nil {
		return CV{}, nil, fmt.Errorf("open cv file: %w", err)
	}
	return c, rc, nil
}

func (s *service) ListByApplication(ctx context.Context, actor auth.Actor, applicationID uuid.UUID) ([]CV, error) {
	if _, err := s.apps.Get(ctx, actor, applicationID); err != nil {
		return nil, err
	}
	return s.repo.ListByApplication(ctx, applicationID)
}

func (s *service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if err := s.files.Remove(c.StorageURI); err != nil {
		s.log.Warn("failed to remove cv file", "uri", c.StorageURI, "error", err)
	}
	return nil
}

func (s *service) Suggest(ctx context.Context, actor auth.Actor, id uuid.UUID) ([]Suggestion, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	text, err := s.repo.GetText(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return []Suggestion{}, nil
		}
		return nil, err
	}
	catalog, err := s.allSkills(ctx)
	if err != nil {
		return nil, err
	}
	return s.extractor.Suggest(ctx, text, catalog), nil
}

func (s *service) allSkills(ctx context.Context) ([]skill.Skill, error) {
	const page = 200
	var all []skill.Skill
	for offset := 0; ; offset += page {
		batch, err := s.catalog.List(ctx, page, offset)
		if err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < page {
			return all, nil
		}
	}
}
