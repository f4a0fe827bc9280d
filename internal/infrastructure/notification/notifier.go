package notification

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/goroutine"
	"quickdesk/internal/shared/logger"
)

// EmailSender is the subset of the SMTP service the notifier needs.
type EmailSender interface {
	SendTicketCreated(to string, ticketID uint, ticketSubject, priority string) error
	SendTicketUpdated(to string, ticketID uint, ticketSubject, status string) error
	SendTicketCommented(to string, ticketID uint, ticketSubject string) error
}

// EmailNotifier fans out ticket events over SMTP. Delivery runs in the
// background and failures are logged, never surfaced to the caller.
type EmailNotifier struct {
	sender   EmailSender
	userRepo user.Repository
	logger   logger.Interface
}

func NewEmailNotifier(sender EmailSender, userRepo user.Repository, logger logger.Interface) *EmailNotifier {
	return &EmailNotifier{
		sender:   sender,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (n *EmailNotifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	id := t.ID()
	subject := t.Subject()
	priority := t.Priority().String()

	n.dispatch(ctx, t, 0, "ticket created", func(to string) error {
		return n.sender.SendTicketCreated(to, id, subject, priority)
	})
}

func (n *EmailNotifier) TicketUpdated(ctx context.Context, t *ticket.Ticket) {
	id := t.ID()
	subject := t.Subject()
	status := t.Status().String()

	n.dispatch(ctx, t, 0, "ticket updated", func(to string) error {
		return n.sender.SendTicketUpdated(to, id, subject, status)
	})
}

func (n *EmailNotifier) TicketCommented(ctx context.Context, t *ticket.Ticket, commentAuthorID uint) {
	id := t.ID()
	subject := t.Subject()

	n.dispatch(ctx, t, commentAuthorID, "ticket commented", func(to string) error {
		return n.sender.SendTicketCommented(to, id, subject)
	})
}

// dispatch resolves recipients and sends in the background. skipUserID is
// excluded so comment authors never get mail about their own comment.
func (n *EmailNotifier) dispatch(ctx context.Context, t *ticket.Ticket, skipUserID uint, event string, send func(to string) error) {
	recipients := n.recipients(ctx, t, skipUserID)
	if len(recipients) == 0 {
		return
	}

	ticketID := t.ID()
	goroutine.SafeGo(n.logger, "notification."+event, func() {
		for _, to := range recipients {
			if err := send(to); err != nil {
				n.logger.Warnw("failed to send notification email",
					"event", event,
					"ticket_id", ticketID,
					"recipient", to,
					"error", err,
				)
			}
		}
	})
}

// recipients collects the creator, the assignee, and every active admin
// when the ticket carries an elevated priority. Addresses are deduplicated.
func (n *EmailNotifier) recipients(ctx context.Context, t *ticket.Ticket, skipUserID uint) []string {
	userIDs := map[uint]struct{}{t.CreatorID(): {}}
	if assigneeID := t.AssigneeID(); assigneeID != nil {
		userIDs[*assigneeID] = struct{}{}
	}
	delete(userIDs, skipUserID)

	seen := make(map[string]struct{})
	var addresses []string
	add := func(u *user.User) {
		if u == nil || !u.IsActive() {
			return
		}
		if _, ok := seen[u.Email()]; ok {
			return
		}
		seen[u.Email()] = struct{}{}
		addresses = append(addresses, u.Email())
	}

	for id := range userIDs {
		u, err := n.userRepo.GetByID(ctx, id)
		if err != nil {
			n.logger.Warnw("failed to resolve notification recipient", "user_id", id, "error", err)
			continue
		}
		add(u)
	}

	if t.Priority().IsElevated() {
		admins, err := n.userRepo.ListActiveAdmins(ctx)
		if err != nil {
			n.logger.Warnw("failed to list admins for notification", "ticket_id", t.ID(), "error", err)
		}
		for _, admin := range admins {
			if admin.ID() == skipUserID {
				continue
			}
			add(admin)
		}
	}

	return addresses
}
