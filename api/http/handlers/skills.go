package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/skill"
)

type SkillHandler struct {
	errorResponder
	uc skill.UseCase
}

func NewSkillHandler(uc skill.UseCase, log *logging.Logger) *SkillHandler {
	return &SkillHandler{errorResponder: errorResponder{log: log}, uc: uc}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// @Summary Создать категорию навыков
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   input body createCategoryRequest true "Категория"
// @Security BearerAuth
// @Success 201 {object} skill.Category
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /skill-categories [post]
func (h *SkillHandler) CreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	cat, err := h.uc.CreateCategory(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, cat)
}

// @Summary Список категорий навыков
// @Tags    Навыки
// @Produce json
// @Security BearerAuth
// @Success 200 {array} skill.Category
// @Router  /skill-categories [get]
func (h *SkillHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, cats)
}

type createSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	CategoryID  string `json:"categoryId" validate:"required,uuid"`
}

// @Summary Добавить навык в каталог
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   input body createSkillRequest true "Навык"
// @Security BearerAuth
// @Success 201 {object} skill.Skill
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /skills [post]
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req createSkillRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	s, err := h.uc.Create(c.UserContext(), skill.Skill{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  uuid.MustParse(req.CategoryID),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, s)
}

// @Summary Каталог навыков
// @Tags    Навыки
// @Produce json
// @Param   limit  query int false "default 50, max 200"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /skills [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c)
	items, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.List(c, items, limit, offset)
}

// @Summary Навык по ID
// @Tags    Навыки
// @Produce json
// @Param   id path string true "ID навыка (UUID)"
// @Security BearerAuth
// @Success 200 {object} skill.Skill
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [get]
func (h *SkillHandler) Get(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	s, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, s)
}

// @Summary Удалить навык
// @Tags    Навыки
// @Param   id path string true "ID навыка (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
