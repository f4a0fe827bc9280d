package mappers

import (
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/biztime"
)

// TicketMapper converts between ticket domain entities and persistence
// models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
	VoteToModel(v *ticket.Vote) *models.VoteModel
	VoteToDomain(model *models.VoteModel) (*ticket.Vote, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		CategoryID:  t.CategoryID(),
		AssigneeID:  t.AssigneeID(),
		Upvotes:     t.Upvotes(),
		Downvotes:   t.Downvotes(),
		CreatedAt:   biztime.ToMilli(t.CreatedAt()),
		UpdatedAt:   biztime.ToMilli(t.UpdatedAt()),
		ResolvedAt:  biztime.ToMilliPtr(t.ResolvedAt()),
		ClosedAt:    biztime.ToMilliPtr(t.ClosedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.Description,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.CreatorID,
		model.CategoryID,
		model.AssigneeID,
		model.Upvotes,
		model.Downvotes,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
		biztime.FromMilliPtr(model.ResolvedAt),
		biztime.FromMilliPtr(model.ClosedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  biztime.ToMilli(c.CreatedAt()),
		UpdatedAt:  biztime.ToMilli(c.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		UploaderID:   a.UploaderID(),
		StoredName:   a.StoredName(),
		OriginalName: a.OriginalName(),
		Size:         a.Size(),
		MimeType:     a.MimeType(),
		CreatedAt:    biztime.ToMilli(a.CreatedAt()),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploaderID,
		model.StoredName,
		model.OriginalName,
		model.Size,
		model.MimeType,
		biztime.FromMilli(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) VoteToModel(v *ticket.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        v.ID(),
		TicketID:  v.TicketID(),
		VoterID:   v.VoterID(),
		VoteType:  v.Type().String(),
		CreatedAt: biztime.ToMilli(v.CreatedAt()),
	}
}

func (m *TicketMapperImpl) VoteToDomain(model *models.VoteModel) (*ticket.Vote, error) {
	return ticket.ReconstructVote(
		model.ID,
		model.TicketID,
		model.VoterID,
		vo.VoteType(model.VoteType),
		biztime.FromMilli(model.CreatedAt),
	)
}
