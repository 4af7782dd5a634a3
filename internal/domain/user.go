package domain

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USUARIO"
)

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
