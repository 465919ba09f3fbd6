package domain

// MentorProfile is the directory view of a member profile.
type MentorProfile struct {
	UserID    string   `bson:"_id" json:"user_id"`
	Username  string   `bson:"username" json:"username"`
	Email     string   `bson:"email" json:"-"`
	Role      string   `bson:"role" json:"role"`
	Bio       string   `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Skills    []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Online    bool     `bson:"online" json:"online"`
}
