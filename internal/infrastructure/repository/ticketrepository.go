package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
)

// ticketOrderClauses maps sort keys to ORDER BY clauses. Only clauses
// from this table ever reach the query, never caller input.
var ticketOrderClauses = map[ticket.SortKey]string{
	ticket.SortCreatedDesc: "created_at DESC",
	ticket.SortCreatedAsc:  "created_at ASC",
	ticket.SortUpdatedDesc: "updated_at DESC",
	ticket.SortUpdatedAsc:  "updated_at ASC",
	ticket.SortVotesDesc:   "(upvotes - downvotes) DESC, created_at DESC",
	ticket.SortCommentsDesc: "(SELECT COUNT(*) FROM ticket_comments c " +
		"WHERE c.ticket_id = tickets.id) DESC, created_at DESC",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists every mutable column so zero values (cleared
	// assignee, zero counters) are written too.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("subject", "description", "status", "priority",
			"assignee_id", "updated_at", "resolved_at", "closed_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	// No FK constraints in the schema; dependents go explicitly.
	if err := tx.Where("ticket_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}
	if err := tx.Where("ticket_id = ?", id).Delete(&models.VoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket votes: %w", err)
	}
	if err := tx.Where("ticket_id = ?", id).Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket attachments: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(subject) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	order, ok := ticketOrderClauses[filter.Sort]
	if !ok {
		order = ticketOrderClauses[ticket.SortCreatedDesc]
	}
	query = query.Order(order)

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func (r *TicketRepository) GetStats(ctx context.Context, creatorID, assigneeID *uint) (*ticket.TicketStats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	scoped := func() *gorm.DB {
		q := tx.Model(&models.TicketModel{})
		if creatorID != nil {
			q = q.Where("creator_id = ?", *creatorID)
		}
		return q
	}

	stats := &ticket.TicketStats{}
	counts := []struct {
		dest  *int64
		where []interface{}
	}{
		{&stats.Total, nil},
		{&stats.Open, []interface{}{"status = ?", "open"}},
		{&stats.InProgress, []interface{}{"status = ?", "in_progress"}},
		{&stats.Resolved, []interface{}{"status = ?", "resolved"}},
		{&stats.Closed, []interface{}{"status = ?", "closed"}},
		{&stats.Unassigned, []interface{}{"assignee_id IS NULL"}},
	}
	if assigneeID != nil {
		counts = append(counts, struct {
			dest  *int64
			where []interface{}
		}{&stats.AssignedToMe, []interface{}{"assignee_id = ?", *assigneeID}})
	}

	for _, c := range counts {
		q := scoped()
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count tickets: %w", err)
		}
	}

	return stats, nil
}

func (r *TicketRepository) AdjustVoteCounters(ctx context.Context, ticketID uint, upDelta, downDelta int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{}
	if upDelta != 0 {
		updates["upvotes"] = gorm.Expr("upvotes + ?", upDelta)
	}
	if downDelta != 0 {
		updates["downvotes"] = gorm.Expr("downvotes + ?", downDelta)
	}
	if len(updates) == 0 {
		return nil
	}

	// UpdateColumns keeps updated_at untouched; votes are not edits.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumns(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to adjust vote counters: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}
