// Package ticket contains ticket ("boleto") use cases.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
)

// CreateTicketInput represents the input for ticket creation.
type CreateTicketInput struct {
	UserID    uuid.UUID
	GameID    uuid.UUID
	Numbers   string
	Cost      decimal.Decimal
	CreatedBy string
}

// CreateTicketOutput represents the output of ticket creation.
type CreateTicketOutput struct {
	Ticket *entity.Ticket
}

// CreateTicketUseCase handles ticket creation logic.
type CreateTicketUseCase struct {
	ticketRepo adapter.TicketRepository
	userRepo   adapter.UserRepository
	gameRepo   adapter.GameRepository
}

// NewCreateTicketUseCase creates a new CreateTicketUseCase instance.
func NewCreateTicketUseCase(
	ticketRepo adapter.TicketRepository,
	userRepo adapter.UserRepository,
	gameRepo adapter.GameRepository,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		gameRepo:   gameRepo,
	}
}

// Execute performs the ticket creation.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, input CreateTicketInput) (*CreateTicketOutput, error) {
	numbers, err := normalizeNumbers(input.Numbers)
	if err != nil {
		return nil, err
	}
	if !input.Cost.IsPositive() {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidTicketFields,
			"ticket cost must be positive",
			domainerror.ErrNonPositiveTicketCost,
		)
	}
	if strings.TrimSpace(input.CreatedBy) == "" {
		return nil, domainerror.NewEntityError(
			domainerror.ErrCodeInvalidTicketFields,
			"creado_por is required",
			domainerror.ErrMissingCreatedBy,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidTicketFields,
				"referenced user does not exist",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if _, err := uc.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, domainerror.ErrGameNotFound) {
			return nil, domainerror.NewEntityError(
				domainerror.ErrCodeInvalidTicketFields,
				"referenced game does not exist",
				domainerror.ErrGameNotFound,
			)
		}
		return nil, fmt.Errorf("failed to check game: %w", err)
	}

	ticket := entity.NewTicket(input.UserID, input.GameID, numbers, input.Cost, input.CreatedBy)
	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return &CreateTicketOutput{Ticket: ticket}, nil
}

// normalizeNumbers validates a comma-separated list of integers and strips
// surrounding whitespace from each element ("5, 10,23" -> "5,10,23").
func normalizeNumbers(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if _, err := strconv.Atoi(part); err != nil {
			return "", domainerror.NewEntityError(
				domainerror.ErrCodeInvalidTicketFields,
				"ticket numbers must be integers separated by commas",
				domainerror.ErrInvalidTicketNumbers,
			)
		}
		cleaned = append(cleaned, part)
	}
	return strings.Join(cleaned, ","), nil
}
