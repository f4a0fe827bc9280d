package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

func activeCategory(t *testing.T, id uint) *category.Category {
	t.Helper()
	c, err := category.ReconstructCategory(id, "Technical", "Hardware and software issues", true, testTime())
	require.NoError(t, err)
	return c
}

func newCreateTicketUseCase(
	ticketRepo *mockTicketRepository,
	attachmentRepo *mockAttachmentRepository,
	categoryRepo *mockCategoryRepository,
	fileStore *mockFileStore,
	notifier *mockNotifier,
) *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		ticketRepo, attachmentRepo, categoryRepo, fileStore,
		&mockTxRunner{}, notifier, &mockLogger{},
	)
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(7))
			saved = tk
			return nil
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}
	notifier := &mockNotifier{}

	uc := newCreateTicketUseCase(ticketRepo, &mockAttachmentRepository{}, categoryRepo, &mockFileStore{}, notifier)

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "VPN drops every hour",
		Description: "The VPN connection resets roughly once an hour",
		CategoryID:  1,
		Priority:    "high",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.TicketID)
	assert.Equal(t, "open", result.Status)
	require.NotNil(t, saved)
	assert.Equal(t, uint(3), saved.CreatorID())
	assert.Equal(t, 1, notifier.CreatedCalls, "notification must fire after commit")
}

func TestCreateTicketUseCase_Execute_DefaultPriority(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(1))
			saved = tk
			return nil
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, &mockAttachmentRepository{}, categoryRepo, &mockFileStore{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Monitor flickers",
		Description: "External monitor flickers when docked",
		CategoryID:  1,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "medium", saved.Priority().String())
}

func TestCreateTicketUseCase_Execute_InactiveCategory(t *testing.T) {
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			c, err := category.ReconstructCategory(id, "Legacy", "", false, testTime())
			require.NoError(t, err)
			return c, nil
		},
	}

	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, categoryRepo, &mockFileStore{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Valid subject",
		Description: "Valid description text",
		CategoryID:  9,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUseCase_Execute_DisallowedAttachment(t *testing.T) {
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}
	fileStore := &mockFileStore{}

	uc := newCreateTicketUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, categoryRepo, fileStore, &mockNotifier{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Valid subject",
		Description: "Valid description text",
		CategoryID:  1,
		Attachment: &AttachmentUpload{
			Filename: "payload.exe",
			Content:  strings.NewReader("MZ"),
		},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, fileStore.Removed)
}

func TestCreateTicketUseCase_Execute_AttachmentSavedWithTicket(t *testing.T) {
	var savedAttachment *ticket.Attachment
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(5)
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
			savedAttachment = a
			return nil
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}

	uc := newCreateTicketUseCase(ticketRepo, attachmentRepo, categoryRepo, &mockFileStore{}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Crash report attached",
		Description: "See crash dump in the attached log",
		CategoryID:  1,
		Attachment: &AttachmentUpload{
			Filename: "crash.txt",
			MimeType: "text/plain",
			Content:  strings.NewReader("panic at line 3"),
		},
	})

	require.NoError(t, err)
	require.NotNil(t, savedAttachment)
	assert.Equal(t, uint(5), savedAttachment.TicketID())
	assert.Equal(t, "crash.txt", savedAttachment.OriginalName())
	assert.Equal(t, "stored-crash.txt", savedAttachment.StoredName())
}

func TestCreateTicketUseCase_Execute_FileRemovedWhenSaveFails(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}
	fileStore := &mockFileStore{}
	notifier := &mockNotifier{}

	uc := newCreateTicketUseCase(ticketRepo, &mockAttachmentRepository{}, categoryRepo, fileStore, notifier)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Crash report attached",
		Description: "See crash dump in the attached log",
		CategoryID:  1,
		Attachment: &AttachmentUpload{
			Filename: "crash.txt",
			Content:  strings.NewReader("panic at line 3"),
		},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"stored-crash.txt"}, fileStore.Removed)
	assert.Zero(t, notifier.CreatedCalls)
}

func TestCreateTicketUseCase_Execute_FileRemovedWhenAttachmentRowFails(t *testing.T) {
	// The ticket row saves and receives an ID, then the attachment row
	// fails and the whole transaction rolls back.
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(9)
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return activeCategory(t, id), nil
		},
	}
	fileStore := &mockFileStore{}
	notifier := &mockNotifier{}

	uc := newCreateTicketUseCase(ticketRepo, attachmentRepo, categoryRepo, fileStore, notifier)

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       actorWith(3, authorization.RoleUser, authorization.RoleUser),
		Subject:     "Crash report attached",
		Description: "See crash dump in the attached log",
		CategoryID:  1,
		Attachment: &AttachmentUpload{
			Filename: "crash.txt",
			Content:  strings.NewReader("panic at line 3"),
		},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"stored-crash.txt"}, fileStore.Removed)
	assert.Zero(t, notifier.CreatedCalls)
}
