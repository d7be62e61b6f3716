package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/candidate"
	"github.com/artem13815/recruitment/pkg/joboffer"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/skill"
)

type JobOfferHandler struct {
	errorResponder
	offers joboffer.UseCase
	apps   candidate.UseCase
}

func NewJobOfferHandler(offers joboffer.UseCase, apps candidate.UseCase, log *logging.Logger) *JobOfferHandler {
	return &JobOfferHandler{errorResponder: errorResponder{log: log}, offers: offers, apps: apps}
}

type requirementDTO struct {
	SkillID       string `json:"skillId" validate:"required,uuid"`
	RequiredLevel string `json:"requiredLevel" validate:"required,level"`
	Required      bool   `json:"required"`
}

func (r requirementDTO) toDomain() joboffer.Requirement {
	lvl, _ := skill.ParseLevel(r.RequiredLevel)
	return joboffer.Requirement{SkillID: uuid.MustParse(r.SkillID), RequiredLevel: lvl, Required: r.Required}
}

func toRequirements(dtos []requirementDTO) []joboffer.Requirement {
	out := make([]joboffer.Requirement, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out
}

type createJobOfferRequest struct {
	Title        string           `json:"title" validate:"required,max=200"`
	Description  string           `json:"description" validate:"required"`
	Location     string           `json:"location" validate:"max=200"`
	Status       string           `json:"status" validate:"omitempty,oneof=DRAFT OPEN CLOSED"`
	ClosingDate  *time.Time       `json:"closingDate"`
	Requirements []requirementDTO `json:"requirements" validate:"dive"`
}

// @Summary Создать вакансию
// @Description Создаёт вакансию с требованиями к навыкам (уровень и признак обязательности).
// @Tags        Вакансии
// @Accept      json
// @Produce     json
// @Param       input body createJobOfferRequest true "Данные вакансии"
// @Security    BearerAuth
// @Success     201 {object} joboffer.JobOffer
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /job-offers [post]
func (h *JobOfferHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req createJobOfferRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	o, err := h.offers.Create(c.UserContext(), actor, joboffer.JobOffer{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Status:       joboffer.Status(req.Status),
		ClosingDate:  req.ClosingDate,
		Requirements: toRequirements(req.Requirements),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, o)
}

// @Summary Список вакансий
// @Tags    Вакансии
// @Produce json
// @Param   limit  query int false "default 50, max 200"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /job-offers [get]
func (h *JobOfferHandler) List(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return h.fail(c, err)
	}
	limit, offset := parseLimitOffset(c)
	items, err := h.offers.List(c.UserContext(), actor, limit, offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.List(c, items, limit, offset)
}

// @Summary Получить вакансию по ID
// @Tags    Вакансии
// @Produce json
// @Param   id path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success 200 {object} joboffer.JobOffer
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-offers/{id} [get]
func (h *JobOfferHandler) Get(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	o, err := h.offers.Get(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, o)
}

type updateRequirementsRequest struct {
	Requirements []requirementDTO `json:"requirements" validate:"dive"`
}

// @Summary Заменить требования вакансии
// @Description Полностью заменяет список требований; порядок сохраняется.
// @Tags    Вакансии
// @Accept  json
// @Param   id path string true "ID вакансии (UUID)"
// @Param   input body updateRequirementsRequest true "Требования"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-offers/{id}/requirements [put]
func (h *JobOfferHandler) UpdateRequirements(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req updateRequirementsRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.offers.UpdateRequirements(c.UserContext(), actor, id, toRequirements(req.Requirements)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type setOfferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT OPEN CLOSED"`
}

// @Summary Изменить статус вакансии
// @Tags    Вакансии
// @Accept  json
// @Param   id path string true "ID вакансии (UUID)"
// @Param   input body setOfferStatusRequest true "Статус"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-offers/{id}/status [put]
func (h *JobOfferHandler) SetStatus(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var req setOfferStatusRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	if err := h.offers.SetStatus(c.UserContext(), actor, id, joboffer.Status(req.Status)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Удалить вакансию
// @Tags    Вакансии
// @Param   id path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-offers/{id} [delete]
func (h *JobOfferHandler) Delete(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.offers.Delete(c.UserContext(), actor, id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Рейтинг кандидатов по вакансии
// @Description Все отклики на вакансию, отсортированные по проценту совпадения навыков (по убыванию).
// @Tags    Вакансии
// @Produce json
// @Param   id path string true "ID вакансии (UUID)"
// @Security BearerAuth
// @Success 200 {array} candidate.MatchResult
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /job-offers/{id}/ranking [get]
func (h *JobOfferHandler) Ranking(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	ranked, err := h.apps.RankForOffer(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, ranked)
}
