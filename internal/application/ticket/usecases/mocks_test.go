package usecases

import (
	"bytes"
	"context"
	"io"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc             func(ctx context.Context, id uint) error
	GetByIDFunc            func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	GetStatsFunc           func(ctx context.Context, creatorID, assigneeID *uint) (*ticket.TicketStats, error)
	AdjustVoteCountersFunc func(ctx context.Context, ticketID uint, upDelta, downDelta int) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context, creatorID, assigneeID *uint) (*ticket.TicketStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, creatorID, assigneeID)
	}
	return &ticket.TicketStats{}, nil
}

func (m *mockTicketRepository) AdjustVoteCounters(ctx context.Context, ticketID uint, upDelta, downDelta int) error {
	if m.AdjustVoteCountersFunc != nil {
		return m.AdjustVoteCountersFunc(ctx, ticketID, upDelta, downDelta)
	}
	return nil
}

type mockCommentRepository struct {
	SaveFunc             func(ctx context.Context, c *ticket.Comment) error
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	CountByTicketIDsFunc func(ctx context.Context, ticketIDs []uint) (map[uint]int64, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	if m.CountByTicketIDsFunc != nil {
		return m.CountByTicketIDsFunc(ctx, ticketIDs)
	}
	return map[uint]int64{}, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, a *ticket.Attachment) error
	GetByIDFunc       func(ctx context.Context, id uint) (*ticket.Attachment, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockVoteRepository struct {
	SaveFunc                func(ctx context.Context, v *ticket.Vote) error
	UpdateFunc              func(ctx context.Context, v *ticket.Vote) error
	DeleteFunc              func(ctx context.Context, id uint) error
	GetByTicketAndVoterFunc func(ctx context.Context, ticketID, voterID uint) (*ticket.Vote, error)
}

func (m *mockVoteRepository) Save(ctx context.Context, v *ticket.Vote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, v)
	}
	return nil
}

func (m *mockVoteRepository) Update(ctx context.Context, v *ticket.Vote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}

func (m *mockVoteRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockVoteRepository) GetByTicketAndVoter(ctx context.Context, ticketID, voterID uint) (*ticket.Vote, error) {
	if m.GetByTicketAndVoterFunc != nil {
		return m.GetByTicketAndVoterFunc(ctx, ticketID, voterID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	SaveFunc       func(ctx context.Context, c *category.Category) error
	UpdateFunc     func(ctx context.Context, c *category.Category) error
	GetByIDFunc    func(ctx context.Context, id uint) (*category.Category, error)
	GetByNameFunc  func(ctx context.Context, name string) (*category.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*category.Category, error)
	ListAllFunc    func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// mockTxRunner executes the closure directly, no transaction involved.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	CreatedCalls   int
	UpdatedCalls   int
	CommentedCalls int
}

func (m *mockNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	m.CreatedCalls++
}

func (m *mockNotifier) TicketUpdated(ctx context.Context, t *ticket.Ticket) {
	m.UpdatedCalls++
}

func (m *mockNotifier) TicketCommented(ctx context.Context, t *ticket.Ticket, commentAuthorID uint) {
	m.CommentedCalls++
}

type mockFileStore struct {
	StoreFunc  func(originalName string, content io.Reader) (string, int64, error)
	OpenFunc   func(storedName string) (io.ReadCloser, error)
	RemoveFunc func(storedName string) error
	Removed    []string
}

func (m *mockFileStore) Store(originalName string, content io.Reader) (string, int64, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(originalName, content)
	}
	return "stored-" + originalName, 42, nil
}

func (m *mockFileStore) Open(storedName string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(storedName)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (m *mockFileStore) Remove(storedName string) error {
	m.Removed = append(m.Removed, storedName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
}

// mockRenderer passes content through unchanged.
type mockRenderer struct{}

func (m *mockRenderer) Render(markdown string) string {
	return markdown
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
