package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SessionDTO struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LoginTime string `json:"login_time"`
}

type LoginResponseDTO struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         SessionDTO `json:"user"`
}
