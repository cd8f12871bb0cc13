package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"pavanxo/menu-svc/internal/domain"
)

type ContactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Submit(ctx context.Context, contact *domain.Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Message = strings.TrimSpace(contact.Message)

	switch {
	case contact.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	case contact.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	case contact.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidContact)
	}
	if _, err := mail.ParseAddress(contact.Email); err != nil {
		return fmt.Errorf("%w: email is not a valid address", ErrInvalidContact)
	}

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}
