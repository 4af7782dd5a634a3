package services

import (
	"strings"

	"farmacia/internal/domain"
	"farmacia/internal/repos"
	"farmacia/internal/validate"
)

const anonymousSubscriber = "Sin nombre"

type SubscriptionService struct {
	Subs *repos.SubscriptionRepo
}

func NewSubscriptionService(subs *repos.SubscriptionRepo) *SubscriptionService {
	return &SubscriptionService{Subs: subs}
}

func (s *SubscriptionService) Subscribe(name, email string) (domain.Subscription, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Subscription{}, ErrEmailRequired
	}
	email, ok := validate.Email(email)
	if !ok {
		return domain.Subscription{}, ErrEmailInvalid
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = anonymousSubscriber
	}
	return s.Subs.Add(name, email)
}

func (s *SubscriptionService) List() ([]domain.Subscription, error) {
	return s.Subs.List()
}
