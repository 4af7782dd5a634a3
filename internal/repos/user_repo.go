package repos

import (
	"time"

	"farmacia/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, r.DB.Rebind(`SELECT id,email,password_hash,role FROM users WHERE LOWER(email)=LOWER(?)`), email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) BindSession(sid, userID string) error {
	_, err := r.DB.Exec(r.DB.Rebind(`INSERT INTO sessions(id,user_id,last_seen)
                          VALUES(?,?,?)
                          ON CONFLICT(id) DO UPDATE SET user_id=excluded.user_id,last_seen=excluded.last_seen`),
		sid, userID, now())
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, r.DB.Rebind(`
      SELECT u.id,u.email,u.password_hash,u.role
      FROM sessions s
      JOIN users u ON u.id=s.user_id
      WHERE s.id=?`), sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(r.DB.Rebind(`UPDATE sessions SET user_id=NULL,last_seen=? WHERE id=?`), now(), sid)
	return err
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
