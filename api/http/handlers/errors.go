package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/apperr"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/security/jwt"
	"github.com/artem13815/recruitment/pkg/skill"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, err := skill.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// bind parses the JSON body into req and validates it.
func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperr.Validation("invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Param() != "" {
				return apperr.Validationf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
			}
			return apperr.Validationf("%s: failed %s", fe.Namespace(), fe.Tag())
		}
		return apperr.Validation(err.Error())
	}
	return nil
}

func pathUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid %s: must be a UUID", name)
	}
	return id, nil
}

var errNoActor = errors.New("unauthenticated")

func actorOf(c *fiber.Ctx) (auth.Actor, error) {
	a, ok := jwt.ActorFrom(c)
	if !ok {
		return auth.Actor{}, errNoActor
	}
	return a, nil
}

func actorAndID(c *fiber.Ctx, param string) (auth.Actor, uuid.UUID, error) {
	actor, err := actorOf(c)
	if err != nil {
		return auth.Actor{}, uuid.Nil, err
	}
	id, err := pathUUID(c, param)
	if err != nil {
		return auth.Actor{}, uuid.Nil, err
	}
	return actor, id, nil
}

// errorResponder maps domain errors to HTTP statuses in one place.
type errorResponder struct {
	log *logging.Logger
}

func (r errorResponder) fail(c *fiber.Ctx, err error) error {
	var v apperr.Validation
	switch {
	case errors.As(err, &v):
		return presenter.Error(c, http.StatusBadRequest, v.Error())
	case errors.Is(err, skill.ErrInvalidLevel):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrDuplicate):
		return presenter.Error(c, http.StatusConflict, "already exists")
	case errors.Is(err, apperr.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, errNoActor):
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	r.log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}
