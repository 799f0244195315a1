package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository for use case tests.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domainerror.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindDefaultAdmin(_ context.Context) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == DefaultAdminEmail && u.IsAdmin {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	if offset >= len(r.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	return r.users[offset:end], nil
}

func (r *fakeUserRepo) ListAdmins(_ context.Context) ([]*entity.User, error) {
	var admins []*entity.User
	for _, u := range r.users {
		if u.IsAdmin {
			admins = append(admins, u)
		}
	}
	return admins, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.Username == username && (excludeID == nil || u.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && (excludeID == nil || u.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

// fakePasswordService hashes with a recognizable prefix instead of PBKDF2 so
// assertions stay readable.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(password, digest string) bool {
	return digest == "hashed:"+password
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

func (s *fakePasswordService) GenerateSecurePassword(length int) (string, error) {
	return "Generada1!" + strings.Repeat("x", length-10), nil
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (s *fakeTokenService) Issue(user *entity.User) (string, error) {
	return "token-" + user.Username, nil
}

func (s *fakeTokenService) IssueWithTTL(user *entity.User, _ time.Duration) (string, error) {
	return s.Issue(user)
}

func (s *fakeTokenService) Verify(token string) (*adapter.TokenClaims, error) {
	username, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{Subject: username, TokenType: "access_token"}, nil
}

func (s *fakeTokenService) ExtractClaim(token, name string) (any, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return nil, err
	}
	if name == "sub" {
		return claims.Subject, nil
	}
	return nil, domainerror.ErrMissingClaim
}
