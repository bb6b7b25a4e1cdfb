package request

type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=8,max=20"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin owner renter"`
	Status    *string `json:"status" validate:"omitempty,oneof=pending active suspended"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}
