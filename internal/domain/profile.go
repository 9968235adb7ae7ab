package domain

// Profile is the public face of a user. One per user, id matches the auth
// user id, updated only by its owner.
type Profile struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
}
