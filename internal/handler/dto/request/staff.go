package request

// LoginRequest is the staff desk sign-in body. The email is matched
// case-insensitively.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}
