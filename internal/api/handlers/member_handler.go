package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"guidelight/internal/api/client"
	"guidelight/pkg/logger"
)

// MemberHandler proxies member endpoints to the member service.
type MemberHandler struct {
	Members *client.ServiceClient
}

// NewMemberHandler create a MemberHandler
func NewMemberHandler(members *client.ServiceClient) *MemberHandler {
	return &MemberHandler{Members: members}
}

func (h *MemberHandler) relay(c *fiber.Ctx, method, path string, body interface{}) error {
	var reply map[string]interface{}
	status, err := h.Members.Call(c.UserContext(), method, path, tokenFrom(c), body, &reply)
	if err != nil {
		logger.Log.Error("member service call failed", zap.String("path", path), zap.String("err", err.Error()))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	return c.Status(status).JSON(reply)
}

// Register register a new member
// @Summary Register a new member
// @Description Create credentials and a profile for a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "email, password and username"
// @Success 200 {object} string "register success"
// @Failure 400 {object} string "validation failure"
// @Router /member/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/member/register", body)
}

// Login member login
// @Summary Member login
// @Description Exchange email and password for a JWT and profile
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "email and password"
// @Success 200 {object} string "token and profile"
// @Failure 401 {object} string "bad credentials"
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/member/login", body)
}

// Logout member logout
// @Summary Member logout
// @Description Close the session and mark the member offline
// @Tags Members
// @Produce json
// @Param auth query string true "JWT"
// @Success 200 {object} string "logout success"
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	return h.relay(c, http.MethodPost, "/member/logout", nil)
}

// RequestPasswordReset send a reset code
// @Summary Request a password reset code
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "email"
// @Success 200 {object} string "reset code sent"
// @Router /member/password/reset [post]
func (h *MemberHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/member/password/reset", body)
}

// ConfirmPasswordReset confirm a reset code
// @Summary Confirm a password reset
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "email, code and new_password"
// @Success 200 {object} string "password updated"
// @Failure 400 {object} string "invalid or expired code"
// @Router /member/password/confirm [post]
func (h *MemberHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/member/password/confirm", body)
}

// UpdateRole choose a role tag
// @Summary Update the member role tag
// @Tags Members
// @Accept json
// @Produce json
// @Param request body object true "role"
// @Success 200 {object} string "role updated"
// @Router /member/role [post]
func (h *MemberHandler) UpdateRole(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/member/role", body)
}

// GetProfile fetch one profile
// @Summary Fetch a member profile
// @Tags Members
// @Produce json
// @Param id path string true "member id"
// @Success 200 {object} string "profile"
// @Failure 404 {object} string "profile not found"
// @Router /member/profile/{id} [get]
func (h *MemberHandler) GetProfile(c *fiber.Ctx) error {
	return h.relay(c, http.MethodGet, "/member/profile/"+c.Params("id"), nil)
}

// ListMentors list the mentor directory
// @Summary List mentors
// @Description Teachers and professionals, optionally filtered by role and search text
// @Tags Members
// @Produce json
// @Param role query string false "all, teacher or professional"
// @Param search query string false "substring of username or bio"
// @Success 200 {object} string "mentors"
// @Router /member/mentors [get]
func (h *MemberHandler) ListMentors(c *fiber.Ctx) error {
	path := "/member/mentors?role=" + url.QueryEscape(c.Query("role")) +
		"&search=" + url.QueryEscape(c.Query("search"))
	return h.relay(c, http.MethodGet, path, nil)
}
