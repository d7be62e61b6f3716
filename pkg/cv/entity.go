package cv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/recruitment/pkg/skill"
)

// CV хранит метаданные загруженного файла резюме кандидата.
type CV struct {
	ID            uuid.UUID  `json:"id"`
	ApplicationID uuid.UUID  `json:"applicationId"`
	Filename      string     `json:"filename"`
	MimeType      string     `json:"mimeType"`
	Size          int64      `json:"size"`
	StorageURI    string     `json:"-"`
	UploadedAt    time.Time  `json:"uploadedAt"`
	ParsedAt      *time.Time `json:"parsedAt,omitempty"`
}

// Suggestion is a catalog skill found in a CV's text.
type Suggestion struct {
	SkillID    uuid.UUID   `json:"skillId"`
	Name       string      `json:"name"`
	Level      skill.Level `json:"level"`
	Confidence float64     `json:"confidence"`
	// Matched is the normalized phrase that was found in the text.
	Matched string `json:"matched"`
}

// Repository: порт хранения метаданных CV и извлечённого текста.
type Repository interface {
	Create(ctx context.Context, c CV, text string) error
	GetByID(ctx context.Context, id uuid.UUID) (CV, error)
	GetText(ctx context.Context, id uuid.UUID) (string, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]CV, error)
	// Delete returns the deleted row so the caller can remove the file.
	Delete(ctx context.Context, id uuid.UUID) (CV, error)
}
