package request

type RegisterRequest struct {
	Mode     string `json:"mode" validate:"required,oneof=email phone"`
	Email    string `json:"email" validate:"required_if=Mode email,omitempty,email"`
	Phone    string `json:"phone" validate:"required_if=Mode phone,omitempty,min=8,max=20"`
	Password string `json:"password" validate:"required_if=Mode email,omitempty,min=8"`
}

type LandingRegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginByEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginByPhoneRequest struct {
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Password string `json:"password" validate:"required"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
	Code  string `json:"code" validate:"required,len=4,numeric"`
}

type PhoneRequest struct {
	Phone string `json:"phone" validate:"required,min=8,max=20"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PhonePasswordRequest struct {
	Phone    string `json:"phone" validate:"required,min=8,max=20"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegenerateTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
