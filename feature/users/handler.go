package users

import (
	"errors"

	"shortage-tracker/core/logger"
	"shortage-tracker/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for user accounts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Post("/login", h.HandleLogin)
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/:username", h.HandleUpdate)
	group.Delete("/:username", h.HandleDelete)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns the account.
// @Summary Login
// @Description Checks the username and password against the stored bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} models.User "User"
// @Failure 401 {object} map[string]string "Invalid Credentials"
// @Router /users/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.service.Login(c.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}

// HandleList returns all accounts.
// @Summary List Users
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Users"
// @Router /users [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

type createRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// HandleCreate registers a new account. Only admins may call this.
// @Summary Create User
// @Tags users
// @Accept json
// @Produce json
// @Param user body createRequest true "User"
// @Success 200 {object} models.User "User"
// @Failure 409 {object} map[string]string "Username Taken"
// @Router /users [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.service.Create(c.Context(), req.Username, req.Password, req.Role)
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return h.fail(c, err)
	}
	return c.JSON(user)
}

type updateRequest struct {
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// HandleUpdate changes an account's password, role or both. Only admins may
// call this.
// @Summary Update User
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param changes body updateRequest true "Changes"
// @Success 200 {object} map[string]string "Updated"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{username} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Password == "" && req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "nothing to update"})
	}

	username := c.Params("username")
	if req.Password != "" {
		if err := h.service.SetPassword(c.Context(), username, req.Password); err != nil {
			return h.updateError(c, err)
		}
	}
	if req.Role != "" {
		if err := h.service.SetRole(c.Context(), username, req.Role); err != nil {
			return h.updateError(c, err)
		}
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

func (h *Handler) updateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return h.fail(c, err)
	}
}

// HandleDelete removes an account. Only admins may call this.
// @Summary Delete User
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /users/{username} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if !h.requireAdmin(c) {
		return nil
	}

	err := h.service.Delete(c.Context(), c.Params("username"))
	if errors.Is(err, ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// requireAdmin checks that the acting user carries the admin role. When the
// check fails, the 403 response is already written and the result is false.
func (h *Handler) requireAdmin(c *fiber.Ctx) bool {
	username := c.Get("X-Username")

	user, err := h.service.find(c.Context(), username)
	if err != nil || user.Role != models.RoleAdmin {
		_ = c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin role required"})
		return false
	}
	return true
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error("Users request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
