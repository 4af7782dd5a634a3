package repos

import (
	"farmacia/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SubscriptionRepo struct{ db *sqlx.DB }

func NewSubscriptionRepo(db *sqlx.DB) *SubscriptionRepo { return &SubscriptionRepo{db: db} }

// Add appends a subscription; rows are never updated or removed.
func (r *SubscriptionRepo) Add(name, email string) (domain.Subscription, error) {
	s := domain.Subscription{Name: name, Email: email, CreatedAt: now()}
	err := r.db.Get(&s.ID, r.db.Rebind(`
	  INSERT INTO subscriptions(name, email, created_at)
	  VALUES(?, ?, ?)
	  RETURNING id
	`), s.Name, s.Email, s.CreatedAt)
	if err != nil {
		return domain.Subscription{}, err
	}
	return s, nil
}

// List returns subscriptions newest first.
func (r *SubscriptionRepo) List() ([]domain.Subscription, error) {
	out := []domain.Subscription{}
	err := r.db.Select(&out, `SELECT id, name, email, created_at FROM subscriptions ORDER BY id DESC`)
	return out, err
}
