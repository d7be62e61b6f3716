package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/candidate"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/skill"
)

type ApplicationHandler struct {
	errorResponder
	uc candidate.UseCase
}

func NewApplicationHandler(uc candidate.UseCase, log *logging.Logger) *ApplicationHandler {
	return &ApplicationHandler{errorResponder: errorResponder{log: log}, uc: uc}
}

type candidateSkillDTO struct {
	SkillID    string   `json:"skillId" validate:"required,uuid"`
	Level      string   `json:"level" validate:"required,level"`
	Confidence *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
}

func toCandidateSkills(dtos []candidateSkillDTO) []candidate.Skill {
	out := make([]candidate.Skill, 0, len(dtos))
	for _, d := range dtos {
		lvl, _ := skill.ParseLevel(d.Level)
		conf := 1.0
		if d.Confidence != nil {
			conf = *d.Confidence
		}
		out = append(out, candidate.Skill{SkillID: uuid.MustParse(d.SkillID), Level: lvl, Confidence: conf})
	}
	return out
}

type createApplicationRequest struct {
	JobOfferID string              `json:"jobOfferId" validate:"required,uuid"`
	FirstName  string              `json:"firstName" validate:"required,max=100"`
	LastName   string              `json:"lastName" validate:"required,max=100"`
	Email      string              `json:"email" validate:"required,email"`
	Phone      string              `json:"phone" validate:"max=30"`
	Skills     []candidateSkillDTO `json:"skills" validate:"dive"`
}

// @Summary Создать отклик кандидата
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   input body createApplicationRequest true "Отклик"
// @Security BearerAuth
// @Success 201 {object} candidate.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req createApplicationRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	a, err := h.uc.Create(c.UserContext(), actor, candidate.Application{
		JobOfferID: uuid.MustParse(req.JobOfferID),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Skills:     toCandidateSkills(req.Skills),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// @Summary Список откликов
// @Tags    Кандидаты
// @Produce json
// @Param   jobOfferId query string false "только отклики на эту вакансию"
// @Param   limit      query int    false "default 50, max 200"
// @Param   offset     query int    false "offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return h.fail(c, err)
	}
	limit, offset := parseLimitOffset(c)

	var items []candidate.Application
	if raw := strings.TrimSpace(c.Query("jobOfferId")); raw != "" {
		offerID, perr := uuid.Parse(raw)
		if perr != nil {
			return h.fail(c, apperr.Validation("invalid jobOfferId: must be a UUID"))
		}
		items, err = h.uc.ListByOffer(c.UserContext(), actor, offerID, limit, offset)
	} else {
		items, err = h.uc.List(c.UserContext(), actor, limit, offset)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.List(c, items, limit, offset)
}

// @Summary Отклик по ID
// @Tags    Кандидаты
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {object} candidate.Application
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	a, err := h.uc.Get(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, a)
}

type updateSkillsRequest struct {
	Skills []candidateSkillDTO `json:"skills" validate:"dive"`
}

// @Summary Заменить навыки кандидата
// @Tags    Кандидаты
// @Accept  json
// @Param   id path string true "ID отклика (UUID)"
// @Param   input body updateSkillsRequest true "Навыки"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/skills [put]
func (h *ApplicationHandler) UpdateSkills(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req updateSkillsRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.UpdateSkills(c.UserContext(), actor, id, toCandidateSkills(req.Skills)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type changeStatusRequest struct {
	Status      string     `json:"status" validate:"required,oneof=NEW SCREENED INTERVIEW HIRED REJECTED"`
	InterviewAt *time.Time `json:"interviewAt"`
	Message     string     `json:"message" validate:"max=5000"`
}

// @Summary Изменить статус отклика и уведомить кандидата
// @Description Сохраняет статус и отправляет письмо кандидату. Ошибка отправки не откатывает статус.
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Param   input body changeStatusRequest true "Новый статус"
// @Security BearerAuth
// @Success 200 {object} candidate.StatusChange
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [put]
func (h *ApplicationHandler) ChangeStatus(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req changeStatusRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), actor, id, candidate.StatusUpdate{
		Status:      candidate.Status(req.Status),
		InterviewAt: req.InterviewAt,
		Notes:       req.Message,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить отклик
// @Tags    Кандидаты
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor, id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Совпадение навыков кандидата с вакансией
// @Tags    Кандидаты
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {object} candidate.MatchResult
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/match [get]
func (h *ApplicationHandler) Match(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	res, err := h.uc.Match(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}
