package entities

type Staff struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CreatedAt  string `json:"createdAt"`
}
