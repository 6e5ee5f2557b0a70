package entities

// SessionUser - данные вошедшего пользователя, живущие в хранилище сессий
// от логина до логаута. Явный объект сессии вместо глобального флага.
type SessionUser struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime"`
}
