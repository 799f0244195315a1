package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/betting-platform/backend/internal/application/adapter"
	"github.com/betting-platform/backend/internal/domain/entity"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/persistence/model"
)

// ticketRepository implements the adapter.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository instance.
func NewTicketRepository(db *gorm.DB) adapter.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// Create creates a new ticket in the database.
func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	ticketModel := model.TicketFromEntity(ticket)
	result := r.db.WithContext(ctx).Create(ticketModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a ticket by its ID.
func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticketModel model.TicketModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ticketModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTicketNotFound
		}
		return nil, result.Error
	}
	return ticketModel.ToEntity(), nil
}

// List retrieves tickets with offset/limit pagination, oldest first.
func (r *ticketRepository) List(ctx context.Context, offset, limit int) ([]*entity.Ticket, error) {
	var models []model.TicketModel
	result := r.db.WithContext(ctx).
		Order("fecha_creacion ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	tickets := make([]*entity.Ticket, len(models))
	for i := range models {
		tickets[i] = models[i].ToEntity()
	}
	return tickets, nil
}

// Update persists all fields of an existing ticket.
func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	ticketModel := model.TicketFromEntity(ticket)
	result := r.db.WithContext(ctx).Save(ticketModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a ticket from the database.
func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TicketModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
