package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"condotrack/internal/entities"
)

type Service struct {
	accounts Accounts
	tokens   TokenIssuer
}

func New(accounts Accounts, tokens TokenIssuer) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Login verifies the credentials and issues a signed token for the account.
// Lookup and password failures collapse into ErrInvalidCredentials so the
// response does not reveal which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, *entities.UserAccount, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("get account: %w", err)
	}

	if !passwordMatches(account.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	if account.Status != entities.AccountActive {
		return "", nil, ErrAccountInactive
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	account.Password = ""
	return token, account, nil
}

// passwordMatches handles both bcrypt hashes and legacy plaintext rows that
// predate hashing. Bcrypt hashes always start with the "$2" version prefix.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
