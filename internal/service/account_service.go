package service

import (
	"context"
	"errors"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/repository"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already registered")

// AccountService handles couple account registration.
type AccountService interface {
	Register(ctx context.Context, email string, partnerEmail *string, coupleID string) (*domain.CoupleAccount, error)
}

// accountService implements the AccountService interface.
type accountService struct {
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

// Register creates a new couple account. The couple identifier is generated
// when the caller does not supply one, so two partners can register against
// the same id. Progress state is NOT created here; it appears lazily on the
// first data access for the couple id.
func (s *accountService) Register(ctx context.Context, email string, partnerEmail *string, coupleID string) (*domain.CoupleAccount, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}

	// Check if the email is already registered.
	_, err := s.accountRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if coupleID == "" {
		coupleID = uuid.NewString()
	}

	account := &domain.CoupleAccount{
		Email:        email,
		PartnerEmail: partnerEmail,
		CoupleID:     coupleID,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		// The unique index catches a signup racing past the GetByEmail check.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return account, nil
}
