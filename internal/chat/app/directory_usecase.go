package app

import (
	"context"
	"strings"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	"guidelight/pkg"
	errprocess "guidelight/pkg/err"
)

var mentorRoles = []string{"teacher", "professional"}

// DirectoryUseCase serves the mentor directory.
type DirectoryUseCase struct {
	dirRepo repository.DirectoryRepository
}

// NewDirectoryUseCase init directory use case
func NewDirectoryUseCase(dirRepo repository.DirectoryRepository) *DirectoryUseCase {
	return &DirectoryUseCase{dirRepo: dirRepo}
}

// ListMentors returns mentors matching the role filter and search
// term. role "all" (or empty) spans both mentor roles, anything else
// must be one of them. The search is a case-insensitive substring
// match over username and bio. The requesting member never appears
// in their own directory.
func (uc *DirectoryUseCase) ListMentors(ctx context.Context, selfID, role, search string) ([]domain.MentorProfile, error) {
	roles := mentorRoles
	if role != "" && role != "all" {
		if !pkg.Contains(mentorRoles, role) {
			return nil, errprocess.Set("unknown mentor role")
		}
		roles = []string{role}
	}

	mentors, err := uc.dirRepo.FindMentors(ctx, roles)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.MentorProfile, 0, len(mentors))
	for _, m := range mentors {
		if m.UserID == selfID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Username), search) &&
			!strings.Contains(strings.ToLower(m.Bio), search) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// OpenDirect derives the direct conversation id for two members.
// No documents are written, the conversation exists once a message does.
func (uc *DirectoryUseCase) OpenDirect(selfID, peerID string) string {
	return domain.DirectConversationID(selfID, peerID)
}
