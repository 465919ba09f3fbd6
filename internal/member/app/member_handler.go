package app

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"guidelight/pkg/logger"
	"guidelight/pkg/middlewares"
)

// MemberHandler exposes the member usecase over REST.
type MemberHandler struct {
	Usecase MemberUseCase
}

// NewMemberHandler create a MemberHandler
func NewMemberHandler(usecase MemberUseCase) *MemberHandler {
	return &MemberHandler{Usecase: usecase}
}

// Register handles POST /member/register
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email), zap.String("username", req.Username))

	if err := h.Usecase.Register(c.UserContext(), req.Email, req.Password, req.Username); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "register success"})
}

// Login handles POST /member/login
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	t, profile, err := h.Usecase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": t, "profile": profile, "message": "login success"})
}

// Logout handles POST /member/logout
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	t := c.Query(middlewares.QueryToken)
	if t == "" {
		t = strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	}
	if t == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token is required"})
	}

	if err := h.Usecase.Logout(c.UserContext(), t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "logout success"})
}

// RequestPasswordReset handles POST /member/password/reset
func (h *MemberHandler) RequestPasswordReset(c *fiber.Ctx) error {
	type request struct {
		Email string `json:"email"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email is required"})
	}

	if err := h.Usecase.RequestPasswordReset(c.UserContext(), req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "reset code sent"})
}

// ConfirmPasswordReset handles POST /member/password/confirm
func (h *MemberHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	type request struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Usecase.ConfirmPasswordReset(c.UserContext(), req.Email, req.Code, req.NewPassword); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

// UpdateRole handles POST /member/role
func (h *MemberHandler) UpdateRole(c *fiber.Ctx) error {
	memberID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}

	type request struct {
		Role string `json:"role"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	if err := h.Usecase.UpdateRole(c.UserContext(), memberID, req.Role); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "role updated"})
}

// UploadAvatar handles POST /member/avatar (multipart form, field "file")
func (h *MemberHandler) UploadAvatar(c *fiber.Ctx) error {
	memberID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	url, err := h.Usecase.UploadAvatar(c.UserContext(), memberID, fileHeader.Filename, f,
		fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		logger.Log.Error("avatar upload failed", zap.String("member_id", memberID), zap.String("err", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"avatar_url": url})
}

// GetProfile handles GET /member/profile/:id
func (h *MemberHandler) GetProfile(c *fiber.Ctx) error {
	id := c.Params("id")
	profile, err := h.Usecase.FindProfile(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "profile not found"})
	}
	return c.JSON(fiber.Map{"profile": profile})
}

// ListMentors handles GET /member/mentors?role=&search=
func (h *MemberHandler) ListMentors(c *fiber.Ctx) error {
	memberID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}

	mentors, err := h.Usecase.ListMentors(c.UserContext(), memberID, c.Query("role"), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"mentors": mentors})
}

// ListProfiles handles GET /member/profiles?ids=a,b,c
func (h *MemberHandler) ListProfiles(c *fiber.Ctx) error {
	raw := c.Query("ids")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ids is required"})
	}

	profiles, err := h.Usecase.ListProfiles(c.UserContext(), strings.Split(raw, ","))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}
