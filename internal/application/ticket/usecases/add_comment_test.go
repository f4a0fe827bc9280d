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

func newAddCommentUseCase(ticketRepo *mockTicketRepository, commentRepo *mockCommentRepository, notifier *mockNotifier) *AddCommentUseCase {
	return NewAddCommentUseCase(ticketRepo, commentRepo, &mockTxRunner{}, notifier, &mockLogger{})
}

func TestAddCommentUseCase_Execute_InternalFlag(t *testing.T) {
	tests := []struct {
		name         string
		stored       authorization.Role
		requested    authorization.Role
		isInternal   bool
		wantInternal bool
	}{
		{"agent keeps internal flag", authorization.RoleAgent, authorization.RoleAgent, true, true},
		{"admin keeps internal flag", authorization.RoleAdmin, authorization.RoleAdmin, true, true},
		{"user internal flag forced false", authorization.RoleUser, authorization.RoleUser, true, false},
		{"downgraded admin internal flag forced false", authorization.RoleAdmin, authorization.RoleUser, true, false},
		{"public comment stays public", authorization.RoleAgent, authorization.RoleAgent, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := existingTicket(t, 1, 10)
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			}
			var saved *ticket.Comment
			commentRepo := &mockCommentRepository{
				SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
					require.NoError(t, c.SetID(100))
					saved = c
					return nil
				},
			}

			uc := newAddCommentUseCase(ticketRepo, commentRepo, &mockNotifier{})

			// Actor 10 is the ticket creator so every role can comment.
			result, err := uc.Execute(context.Background(), AddCommentCommand{
				Actor:      actorWith(10, tc.stored, tc.requested),
				TicketID:   1,
				Content:    "Tried rebooting, no change",
				IsInternal: tc.isInternal,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.wantInternal, result.IsInternal)
			require.NotNil(t, saved)
			assert.Equal(t, tc.wantInternal, saved.IsInternal())
		})
	}
}

func TestAddCommentUseCase_Execute_ForbiddenForStrangers(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:    actorWith(99, authorization.RoleUser, authorization.RoleUser),
		TicketID: 1,
		Content:  "I also have this problem",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAddCommentUseCase_Execute_BumpsTicketUpdatedAt(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	before := tk.UpdatedAt()

	var ticketUpdated bool
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := newAddCommentUseCase(ticketRepo, &mockCommentRepository{}, notifier)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:    actorWith(10, authorization.RoleUser, authorization.RoleUser),
		TicketID: 1,
		Content:  "Still broken after the patch",
	})

	require.NoError(t, err)
	assert.True(t, ticketUpdated)
	assert.True(t, tk.UpdatedAt().After(before))
	assert.Equal(t, 1, notifier.CommentedCalls)
}

func TestAddCommentUseCase_Execute_EmptyContent(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		Actor:    actorWith(10, authorization.RoleUser, authorization.RoleUser),
		TicketID: 1,
		Content:  "   ",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
