package dto

type CreateStaffDTO struct {
	Name       string `json:"name" validate:"required,min=2,max=200"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=5,max=20"`
}

type UpdateStaffDTO struct {
	Name       *string `json:"name,omitempty"       validate:"omitempty,min=2,max=200"`
	Role       *string `json:"role,omitempty"       validate:"omitempty"`
	Department *string `json:"department,omitempty" validate:"omitempty"`
	Email      *string `json:"email,omitempty"      validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"      validate:"omitempty,min=5,max=20"`
}

type StaffDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CreatedAt  string `json:"created_at"`
}
