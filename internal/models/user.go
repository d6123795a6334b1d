package models

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // user, admin
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
