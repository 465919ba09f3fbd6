package domain

import (
	"time"

	"guidelight/pkg/encrypt"
)

// MemberStatus marks the account state in the credentials store.
type MemberStatus int

// 0=offline, 1=online, 2=ban, 3=delete
const (
	MemberStatusOffLine MemberStatus = iota
	MemberStatusOnLine
	MemberStatusBan
	MemberStatusDelete
)

// Member is the credentials row kept in Postgres. Everything a peer
// is allowed to see lives on the Profile document instead.
type Member struct {
	ID       int64
	MemberID string
	Email    string
	Password string
	Status   MemberStatus
}

// MemberSession is the Redis-backed login session.
type MemberSession struct {
	Token        string    `json:"Token"`
	MemberID     string    `json:"MemberID"`
	CreatedAt    time.Time `json:"CreatedAt"`
	LastActivity time.Time `json:"LastActivity"`
	ExpiredAt    time.Time `json:"ExpiredAt"`
}

// IsPasswordMatch compares the stored hash against an input password.
func (m *Member) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(m.Password, inputPwd)
}

// IsExpired reports whether the session passed its expiry.
func (s *MemberSession) IsExpired() bool {
	return time.Now().After(s.ExpiredAt)
}

// MemberQuery join conditions are used to query members
type MemberQuery struct {
	ID       *int64  `db:"id"`
	MemberID *string `db:"member_id"`
	Email    *string `db:"email"`
}
