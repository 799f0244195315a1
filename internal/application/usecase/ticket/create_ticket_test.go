package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// fakeTicketRepo is an in-memory adapter.TicketRepository.
type fakeTicketRepo struct {
	tickets []*entity.Ticket
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	r.tickets = append(r.tickets, ticket)
	return nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	for _, tk := range r.tickets {
		if tk.ID == id {
			return tk, nil
		}
	}
	return nil, domainerror.ErrTicketNotFound
}

func (r *fakeTicketRepo) List(_ context.Context, offset, limit int) ([]*entity.Ticket, error) {
	if offset >= len(r.tickets) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.tickets) {
		end = len(r.tickets)
	}
	return r.tickets[offset:end], nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *entity.Ticket) error {
	for i, tk := range r.tickets {
		if tk.ID == ticket.ID {
			r.tickets[i] = ticket
			return nil
		}
	}
	return domainerror.ErrTicketNotFound
}

func (r *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, tk := range r.tickets {
		if tk.ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTicketNotFound
}

// stubUserRepo resolves a single known user ID; every other method is
// unused by the ticket use cases.
type stubUserRepo struct {
	knownID uuid.UUID
}

func (r *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if id == r.knownID {
		return &entity.User{ID: id, Active: true}, nil
	}
	return nil, domainerror.ErrUserNotFound
}
func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *stubUserRepo) FindDefaultAdmin(_ context.Context) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}
func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) { return nil, nil }
func (r *stubUserRepo) ListAdmins(_ context.Context) ([]*entity.User, error)     { return nil, nil }
func (r *stubUserRepo) Update(_ context.Context, _ *entity.User) error           { return nil }
func (r *stubUserRepo) Delete(_ context.Context, _ uuid.UUID) error              { return nil }
func (r *stubUserRepo) ExistsByUsername(_ context.Context, _ string, _ *uuid.UUID) (bool, error) {
	return false, nil
}
func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string, _ *uuid.UUID) (bool, error) {
	return false, nil
}

// stubGameRepo resolves a single known game ID.
type stubGameRepo struct {
	knownID uuid.UUID
}

func (r *stubGameRepo) Create(_ context.Context, _ *entity.Game) error { return nil }
func (r *stubGameRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Game, error) {
	if id == r.knownID {
		return &entity.Game{ID: id}, nil
	}
	return nil, domainerror.ErrGameNotFound
}
func (r *stubGameRepo) List(_ context.Context, _, _ int) ([]*entity.Game, error) { return nil, nil }
func (r *stubGameRepo) Update(_ context.Context, _ *entity.Game) error           { return nil }
func (r *stubGameRepo) Delete(_ context.Context, _ uuid.UUID) error              { return nil }

func assertTicketCode(t *testing.T, err error, code domainerror.EntityErrorCode) {
	t.Helper()
	var entityErr *domainerror.EntityError
	if !errors.As(err, &entityErr) {
		t.Fatalf("expected EntityError, got %v", err)
	}
	if entityErr.Code != code {
		t.Errorf("expected code %s, got %s", code, entityErr.Code)
	}
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	gameID := uuid.New()

	setup := func() (*CreateTicketUseCase, *fakeTicketRepo) {
		repo := &fakeTicketRepo{}
		uc := NewCreateTicketUseCase(repo, &stubUserRepo{knownID: userID}, &stubGameRepo{knownID: gameID})
		return uc, repo
	}

	t.Run("creates a ticket with normalized numbers", func(t *testing.T) {
		uc, repo := setup()

		out, err := uc.Execute(ctx, CreateTicketInput{
			UserID:    userID,
			GameID:    gameID,
			Numbers:   " 5, 10 ,23 ",
			Cost:      decimal.RequireFromString("3.50"),
			CreatedBy: "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Ticket.Numbers != "5,10,23" {
			t.Errorf("expected normalized numbers '5,10,23', got %q", out.Ticket.Numbers)
		}
		if len(repo.tickets) != 1 {
			t.Errorf("expected one persisted ticket, got %d", len(repo.tickets))
		}
	})

	t.Run("rejects non-integer numbers", func(t *testing.T) {
		uc, _ := setup()

		for _, numbers := range []string{"", "5,diez", "5,,7", "5;7"} {
			_, err := uc.Execute(ctx, CreateTicketInput{
				UserID:    userID,
				GameID:    gameID,
				Numbers:   numbers,
				Cost:      decimal.RequireFromString("3.50"),
				CreatedBy: "admin",
			})
			assertTicketCode(t, err, domainerror.ErrCodeInvalidTicketFields)
		}
	})

	t.Run("rejects non-positive cost", func(t *testing.T) {
		uc, _ := setup()

		for _, cost := range []string{"0", "-1"} {
			_, err := uc.Execute(ctx, CreateTicketInput{
				UserID:    userID,
				GameID:    gameID,
				Numbers:   "1,2,3",
				Cost:      decimal.RequireFromString(cost),
				CreatedBy: "admin",
			})
			assertTicketCode(t, err, domainerror.ErrCodeInvalidTicketFields)
		}
	})

	t.Run("rejects unknown user reference", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(ctx, CreateTicketInput{
			UserID:    uuid.New(),
			GameID:    gameID,
			Numbers:   "1,2,3",
			Cost:      decimal.RequireFromString("3.50"),
			CreatedBy: "admin",
		})
		assertTicketCode(t, err, domainerror.ErrCodeInvalidTicketFields)
	})

	t.Run("rejects unknown game reference", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(ctx, CreateTicketInput{
			UserID:    userID,
			GameID:    uuid.New(),
			Numbers:   "1,2,3",
			Cost:      decimal.RequireFromString("3.50"),
			CreatedBy: "admin",
		})
		assertTicketCode(t, err, domainerror.ErrCodeInvalidTicketFields)
	})
}
