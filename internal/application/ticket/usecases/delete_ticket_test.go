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

func TestDeleteTicketUseCase_Execute_AdminOnly(t *testing.T) {
	tests := []struct {
		name      string
		stored    authorization.Role
		requested authorization.Role
		wantErr   bool
	}{
		{"admin deletes", authorization.RoleAdmin, authorization.RoleAdmin, false},
		{"agent refused", authorization.RoleAgent, authorization.RoleAgent, true},
		{"user refused", authorization.RoleUser, authorization.RoleUser, true},
		{"downgraded admin refused", authorization.RoleAdmin, authorization.RoleAgent, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := existingTicket(t, 1, 10)
			var deleted bool
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}

			uc := NewDeleteTicketUseCase(ticketRepo, &mockAttachmentRepository{}, &mockFileStore{}, &mockTxRunner{}, &mockLogger{})

			err := uc.Execute(context.Background(), DeleteTicketCommand{
				Actor:    actorWith(2, tc.stored, tc.requested),
				TicketID: 1,
			})

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				assert.False(t, deleted)
				return
			}
			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestDeleteTicketUseCase_Execute_RemovesStoredFiles(t *testing.T) {
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
	fileStore := &mockFileStore{}

	uc := NewDeleteTicketUseCase(ticketRepo, attachmentRepo, fileStore, &mockTxRunner{}, &mockLogger{})

	err = uc.Execute(context.Background(), DeleteTicketCommand{
		Actor:    actorWith(2, authorization.RoleAdmin, authorization.RoleAdmin),
		TicketID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ab12-crash.txt"}, fileStore.Removed)
}

func TestDeleteTicketUseCase_Execute_KeepsFilesWhenDeleteFails(t *testing.T) {
	tk := existingTicket(t, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		DeleteFunc: func(ctx context.Context, id uint) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	fileStore := &mockFileStore{}

	uc := NewDeleteTicketUseCase(ticketRepo, &mockAttachmentRepository{}, fileStore, &mockTxRunner{}, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		Actor:    actorWith(2, authorization.RoleAdmin, authorization.RoleAdmin),
		TicketID: 1,
	})

	require.Error(t, err)
	assert.Empty(t, fileStore.Removed)
}
