package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

func ticketComments(t *testing.T) []*ticket.Comment {
	t.Helper()
	public, err := ticket.ReconstructComment(1, 1, 10, "Any update on this?", false, testTime(), testTime())
	require.NoError(t, err)
	internal, err := ticket.ReconstructComment(2, 1, 20, "Customer is on the legacy plan", true, testTime(), testTime())
	require.NoError(t, err)
	return []*ticket.Comment{public, internal}
}

func newGetTicketUseCase(ticketRepo *mockTicketRepository, commentRepo *mockCommentRepository, attachmentRepo *mockAttachmentRepository) *GetTicketUseCase {
	return NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, &mockRenderer{}, &mockLogger{})
}

func TestGetTicketUseCase_Execute_InternalCommentsHidden(t *testing.T) {
	tests := []struct {
		name      string
		stored    authorization.Role
		requested authorization.Role
		wantCount int
	}{
		{"agent sees internal comments", authorization.RoleAgent, authorization.RoleAgent, 2},
		{"admin sees internal comments", authorization.RoleAdmin, authorization.RoleAdmin, 2},
		{"creator sees only public", authorization.RoleUser, authorization.RoleUser, 1},
		{"downgraded admin sees only public", authorization.RoleAdmin, authorization.RoleUser, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := existingTicket(t, 1, 10)
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			}
			commentRepo := &mockCommentRepository{
				GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
					return ticketComments(t), nil
				},
			}

			uc := newGetTicketUseCase(ticketRepo, commentRepo, &mockAttachmentRepository{})

			detail, err := uc.Execute(context.Background(), GetTicketQuery{
				Actor:    actorWith(10, tc.stored, tc.requested),
				TicketID: 1,
			})

			require.NoError(t, err)
			assert.Len(t, detail.Comments, tc.wantCount)
			for _, c := range detail.Comments {
				if tc.wantCount == 1 {
					assert.False(t, c.IsInternal)
				}
			}
		})
	}
}

func TestGetTicketUseCase_Execute_ForbiddenForStrangers(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{})

	_, err := uc.Execute(context.Background(), GetTicketQuery{
		Actor:    actorWith(99, authorization.RoleUser, authorization.RoleUser),
		TicketID: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicketUseCase_Execute_IncludesAttachments(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	att, err := ticket.ReconstructAttachment(4, 1, 10, "ab12-crash.txt", "crash.txt", 512, "text/plain", testTime())
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	attachmentRepo := &mockAttachmentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{att}, nil
		},
	}

	uc := newGetTicketUseCase(ticketRepo, &mockCommentRepository{}, attachmentRepo)

	detail, err := uc.Execute(context.Background(), GetTicketQuery{
		Actor:    actorWith(10, authorization.RoleUser, authorization.RoleUser),
		TicketID: 1,
	})

	require.NoError(t, err)
	require.Len(t, detail.Attachments, 1)
	assert.Equal(t, "crash.txt", detail.Attachments[0].OriginalName)
	assert.Equal(t, int64(512), detail.Attachments[0].Size)
}
