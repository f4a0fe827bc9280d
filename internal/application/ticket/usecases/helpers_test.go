package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/authorization"
)

func existingTicket(t *testing.T, id, creatorID uint) *ticket.Ticket {
	t.Helper()
	created := time.Now().UTC().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, "Printer keeps jamming", "The office printer jams on every duplex job",
		vo.StatusOpen, vo.PriorityMedium,
		creatorID, 1, nil,
		0, 0,
		created, created, nil, nil,
	)
	require.NoError(t, err)
	return tk
}

func actorWith(id uint, stored, requested authorization.Role) authorization.Actor {
	return authorization.NewActor(id, stored, requested)
}

func testTime() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}
