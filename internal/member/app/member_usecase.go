package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"guidelight/internal/member/domain"
	"guidelight/internal/member/repository"
	"guidelight/pkg"
	"guidelight/pkg/config"
	"guidelight/pkg/database"
	"guidelight/pkg/encrypt"
	errprocess "guidelight/pkg/err"
	"guidelight/pkg/logger"
	"guidelight/pkg/mailer"
	token "guidelight/pkg/token"
)

const (
	resetCodeTTL    = 15 * time.Minute
	avatarURLExpiry = 7 * 24 * time.Hour
)

// ObjectStore is the slice of the MinIO client the avatar flow needs.
type ObjectStore interface {
	UploadObject(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error
	PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// MemberUseCase is the application service for identity and profiles.
type MemberUseCase interface {
	Register(ctx context.Context, email, password, username string) error
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
	Logout(ctx context.Context, t string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	UpdateRole(ctx context.Context, memberID, role string) error
	UploadAvatar(ctx context.Context, memberID, filename string, r io.Reader, size int64, contentType string) (string, error)
	FindProfile(ctx context.Context, memberID string) (*domain.Profile, error)
	ListProfiles(ctx context.Context, memberIDs []string) ([]domain.Profile, error)
	ListMentors(ctx context.Context, selfID, role, search string) ([]domain.Profile, error)
}

type memberUseCase struct {
	memberRepo  repository.MemberRepository
	profileRepo repository.ProfileRepository
	sessionTTL  time.Duration
	sessionRepo database.RedisRepository[domain.MemberSession]
	resetRepo   database.RedisRepository[string]
	mail        mailer.Sender
	storage     ObjectStore
}

// NewMemberUseCase create a new MemberUseCase
func NewMemberUseCase(memberRepo repository.MemberRepository,
	profileRepo repository.ProfileRepository,
	sessionTTL time.Duration,
	sessionRepo database.RedisRepository[domain.MemberSession],
	resetRepo database.RedisRepository[string],
	mail mailer.Sender,
	storage ObjectStore,
) MemberUseCase {
	return &memberUseCase{
		memberRepo:  memberRepo,
		profileRepo: profileRepo,
		sessionTTL:  sessionTTL,
		sessionRepo: sessionRepo,
		resetRepo:   resetRepo,
		mail:        mail,
		storage:     storage,
	}
}

// Register reserves the handle first so two signups can never end up
// with the same spelling. If anything after the reservation fails the
// reservation is released again.
func (m *memberUseCase) Register(ctx context.Context, email, password, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errprocess.Set("username is required")
	}
	if err := encrypt.ValidatePasswordStrength(password); err != nil {
		return err
	}
	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err == nil {
		return errprocess.Set("email already exists")
	}

	memberID := uuid.New().String()
	if err := m.profileRepo.ReserveUsername(ctx, username, memberID); err != nil {
		return err
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		m.releaseReservation(username)
		return err
	}

	member := domain.Member{
		MemberID: memberID,
		Email:    email,
		Password: pw,
	}
	if err := m.memberRepo.CreateMember(ctx, &member); err != nil {
		m.releaseReservation(username)
		return err
	}

	now := time.Now().UnixMilli()
	profile := domain.Profile{
		UserID:        memberID,
		Username:      username,
		UsernameLower: strings.ToLower(username),
		Email:         email,
		Role:          string(token.RoleStudent),
		LastSeen:      now,
		CreatedAt:     now,
	}
	if err := m.profileRepo.CreateProfile(ctx, &profile); err != nil {
		m.releaseReservation(username)
		return err
	}

	logger.Log.Info("member registered", zap.String("member_id", memberID), zap.String("username", username))
	return nil
}

func (m *memberUseCase) releaseReservation(username string) {
	if err := m.profileRepo.ReleaseUsername(context.Background(), username); err != nil {
		logger.Log.Error("release username reservation failed",
			zap.String("username", username), zap.String("err", err.Error()))
	}
}

// Login checks credentials, issues a JWT, opens a Redis session and
// flips the profile online.
func (m *memberUseCase) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		logger.Log.Error("login: email not found", zap.String("email", email))
		return "", nil, errprocess.Set("user not found")
	}
	if member.Status == domain.MemberStatusBan || member.Status == domain.MemberStatusDelete {
		return "", nil, errprocess.Set("account unavailable")
	}
	if err = member.IsPasswordMatch(password); err != nil {
		logger.Log.Error("login: password mismatch", zap.String("email", email))
		return "", nil, err
	}

	profile, err := m.profileRepo.FindByID(ctx, member.MemberID)
	if err != nil {
		logger.Log.Error("login: profile missing", zap.String("member_id", member.MemberID))
		return "", nil, errprocess.Set("profile not found")
	}

	t, err := token.GenerateJWT(member.MemberID, profile.Role, config.EnvConfig.MemberService)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	session := domain.MemberSession{
		Token:        t,
		MemberID:     member.MemberID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(m.sessionTTL),
	}
	if err := m.sessionRepo.Set(ctx, member.MemberID, session, m.sessionTTL); err != nil {
		return "", nil, err
	}

	member.Status = domain.MemberStatusOnLine
	if err := m.memberRepo.UpdateMemberStatus(ctx, member); err != nil {
		return "", nil, err
	}
	if err := m.profileRepo.SetOnline(ctx, member.MemberID, true); err != nil {
		logger.Log.Error("login: set online failed", zap.String("err", err.Error()))
	}

	return t, profile, nil
}

// Logout drops the session and flips the profile offline.
func (m *memberUseCase) Logout(ctx context.Context, t string) error {
	tokenInfo, err := token.ParseJWT(t)
	if err != nil {
		logger.Log.Error("logout: bad token", zap.String("err", err.Error()))
		return err
	}

	if err := m.sessionRepo.Del(ctx, tokenInfo.MemberID); err != nil {
		logger.Log.Error("logout: session delete failed", zap.String("err", err.Error()))
	}

	if err := m.memberRepo.UpdateMemberStatus(ctx, &domain.Member{
		MemberID: tokenInfo.MemberID,
		Status:   domain.MemberStatusOffLine,
	}); err != nil {
		return err
	}
	if err := m.profileRepo.SetOnline(ctx, tokenInfo.MemberID, false); err != nil {
		logger.Log.Error("logout: set offline failed", zap.String("err", err.Error()))
	}
	return nil
}

// RequestPasswordReset issues a short-lived code to the account email.
// Unknown addresses return nil so the endpoint does not leak which
// emails exist.
func (m *memberUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email}); err != nil {
		logger.Log.Info("password reset for unknown email", zap.String("email", email))
		return nil
	}

	code, err := newResetCode()
	if err != nil {
		return err
	}
	if err := m.resetRepo.Set(ctx, resetKey(email), code, resetCodeTTL); err != nil {
		return err
	}

	body := fmt.Sprintf("<p>Your Guide Light password reset code is <b>%s</b>. It expires in 15 minutes.</p>", code)
	if err := m.mail.Send(email, "Guide Light password reset", body); err != nil {
		logger.Log.Error("reset mail send failed", zap.String("email", email), zap.String("err", err.Error()))
		return errprocess.Set("could not send reset email")
	}
	return nil
}

// ConfirmPasswordReset swaps the credentials hash when the code
// matches. The code is single use.
func (m *memberUseCase) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	stored, err := m.resetRepo.Get(ctx, resetKey(email))
	if err != nil || stored != code {
		return errprocess.Set("invalid or expired reset code")
	}
	if err := encrypt.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	member, err := m.memberRepo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	if err != nil {
		return errprocess.Set("user not found")
	}

	pw, err := encrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := m.memberRepo.UpdatePassword(ctx, member.MemberID, pw); err != nil {
		return err
	}

	if err := m.resetRepo.Del(ctx, resetKey(email)); err != nil {
		logger.Log.Error("reset code delete failed", zap.String("err", err.Error()))
	}
	return nil
}

// UpdateRole accepts only the known role tags.
func (m *memberUseCase) UpdateRole(ctx context.Context, memberID, role string) error {
	if !domain.KnownRoleTag(role) {
		return errprocess.Set("unknown role tag")
	}
	return m.profileRepo.UpdateRole(ctx, memberID, role)
}

// UploadAvatar stores the image in MinIO and saves a presigned GET
// URL on the profile.
func (m *memberUseCase) UploadAvatar(ctx context.Context, memberID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("avatars/%s/%s%s", memberID, uuid.New().String(), filepath.Ext(filename))
	if err := m.storage.UploadObject(ctx, objectName, r, size, contentType); err != nil {
		return "", err
	}

	url, err := m.storage.PresignGetURL(ctx, objectName, avatarURLExpiry)
	if err != nil {
		return "", err
	}
	if err := m.profileRepo.SetAvatarURL(ctx, memberID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (m *memberUseCase) FindProfile(ctx context.Context, memberID string) (*domain.Profile, error) {
	return m.profileRepo.FindByID(ctx, memberID)
}

func (m *memberUseCase) ListProfiles(ctx context.Context, memberIDs []string) ([]domain.Profile, error) {
	return m.profileRepo.FindByIDs(ctx, memberIDs)
}

// mentorRoles are the role tags listed in the directory.
var mentorRoles = []string{string(token.RoleTeacher), string(token.RoleProfessional)}

// ListMentors serves the mentor directory. Role narrows the filter,
// search matches username and bio case-insensitively, and the caller
// never sees their own profile.
func (m *memberUseCase) ListMentors(ctx context.Context, selfID, role, search string) ([]domain.Profile, error) {
	roles := mentorRoles
	if role != "" && role != "all" {
		if !pkg.Contains(mentorRoles, role) {
			return nil, errprocess.Set("unknown mentor role")
		}
		roles = []string{role}
	}

	profiles, err := m.profileRepo.FindByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	mentors := make([]domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID == selfID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Username), needle) &&
			!strings.Contains(strings.ToLower(p.Bio), needle) {
			continue
		}
		mentors = append(mentors, p)
	}
	return mentors, nil
}

func resetKey(email string) string {
	return "reset:" + strings.ToLower(email)
}

func newResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
