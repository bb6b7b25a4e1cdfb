package request

type CommunityEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
