package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/recruitment/api/http/presenter"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/logging"
)

type AuthHandler struct {
	errorResponder
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase, log *logging.Logger) *AuthHandler {
	return &AuthHandler{errorResponder: errorResponder{log: log}, useCase: useCase}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, auth.ErrInactiveUser):
		return presenter.Error(c, http.StatusForbidden, "account is not active")
	case err != nil:
		return h.fail(c, err)
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
		Role:  string(result.User.Role),
		Token: result.Token,
	})
}
