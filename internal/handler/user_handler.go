package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"handpay/internal/service"
)

// UserHandler handles registration, login and profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents a registration request. Card is the full card
// string; only its last four characters are stored.
type RegisterRequest struct {
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Address   string    `json:"address"`
	Card      string    `json:"card"`
	Signature []float64 `json:"signature" validate:"required"`
}

// LoginRequest represents a login request. Identifier is a user name or email.
// Password is compared verbatim, so an empty one is a valid credential.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Card   string `json:"card"`
}

// ProfileResponse represents a user profile.
type ProfileResponse struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Card    string `json:"card"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return badRequest("VALIDATION_ERROR", err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
		Card:      req.Card,
		Signature: req.Signature,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("account created for %s", user.Name),
	})
}

// Login godoc
// @Summary Login with name or email
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return badRequest("VALIDATION_ERROR", err.Error())
	}

	user, err := h.userService.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Status: "success",
		Name:   user.Name,
		Card:   user.CardLast4,
	})
}

// Profile godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/profile/{name} [get]
func (h *UserHandler) Profile(c echo.Context) error {
	user, err := h.userService.Profile(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Email:   user.Email,
		Address: user.Address,
		Card:    user.CardLast4,
	})
}
