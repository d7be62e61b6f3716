package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/cv"
	"github.com/artem13815/recruitment/pkg/logging"
)

type CVHandler struct {
	errorResponder
	uc       cv.UseCase
	maxBytes int64
}

func NewCVHandler(uc cv.UseCase, maxBytes int64, log *logging.Logger) *CVHandler {
	return &CVHandler{errorResponder: errorResponder{log: log}, uc: uc, maxBytes: maxBytes}
}

// Upload сохраняет CV кандидата (PDF/DOCX) и извлекает из него текст.
// @Summary Загрузить CV кандидата
// @Tags    CV
// @Accept  multipart/form-data
// @Produce json
// @Param   id   path     string true "ID отклика (UUID)"
// @Param   file formData file   true "Файл CV (PDF или DOCX)"
// @Security BearerAuth
// @Success 201 {object} cv.CV
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/cvs [post]
func (h *CVHandler) Upload(c *fiber.Ctx) error {
	actor, appID, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return h.fail(c, apperr.Validation("file is required (pdf or docx)"))
	}
	if _, err := cv.Ext(fh.Filename); err != nil {
		return h.fail(c, apperr.Validation(err.Error()))
	}
	file, err := fh.Open()
	if err != nil {
		return h.fail(c, apperr.Validation("failed to open uploaded file"))
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return h.fail(c, err)
	}
	doc, err := h.uc.Upload(c.UserContext(), actor, cv.Upload{
		ApplicationID: appID,
		Filename:      fh.Filename,
		MimeType:      fh.Header.Get("Content-Type"),
		Data:          data,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, doc)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(b)) > max {
		return nil, apperr.Validationf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

// @Summary CV отклика
// @Tags    CV
// @Produce json
// @Param   id path string true "ID отклика (UUID)"
// @Security BearerAuth
// @Success 200 {array} cv.CV
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/cvs [get]
func (h *CVHandler) ListByApplication(c *fiber.Ctx) error {
	actor, appID, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	items, err := h.uc.ListByApplication(c.UserContext(), actor, appID)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Скачать файл CV
// @Tags    CV
// @Produce octet-stream
// @Param   id path string true "ID CV (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /cvs/{id}/file [get]
func (h *CVHandler) Download(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	doc, rc, err := h.uc.Open(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	if doc.MimeType != "" {
		c.Set(fiber.HeaderContentType, doc.MimeType)
	}
	c.Attachment(doc.Filename)
	// fasthttp closes the stream once the body is written
	return c.SendStream(rc, int(doc.Size))
}

// @Summary Удалить CV
// @Tags    CV
// @Param   id path string true "ID CV (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /cvs/{id} [delete]
func (h *CVHandler) Delete(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), actor, id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Навыки, найденные в CV
// @Description Навыки каталога, упомянутые в тексте CV, с уверенностью и предполагаемым уровнем.
// @Tags    CV
// @Produce json
// @Param   id path string true "ID CV (UUID)"
// @Security BearerAuth
// @Success 200 {array} cv.Suggestion
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /cvs/{id}/suggestions [get]
func (h *CVHandler) Suggestions(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	items, err := h.uc.Suggest(c.UserContext(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}
