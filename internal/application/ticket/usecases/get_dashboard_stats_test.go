package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
)

func TestGetDashboardStatsUseCase_Execute_ScopesByRole(t *testing.T) {
	tests := []struct {
		name         string
		stored       authorization.Role
		requested    authorization.Role
		wantCreator  *uint
		wantAssignee *uint
	}{
		{"admin sees global stats", authorization.RoleAdmin, authorization.RoleAdmin, nil, uintPtr(5)},
		{"agent sees global stats", authorization.RoleAgent, authorization.RoleAgent, nil, uintPtr(5)},
		{"user scoped to own tickets", authorization.RoleUser, authorization.RoleUser, uintPtr(5), nil},
		{"downgraded admin scoped to own tickets", authorization.RoleAdmin, authorization.RoleUser, uintPtr(5), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var capturedCreator, capturedAssignee *uint
			ticketRepo := &mockTicketRepository{
				GetStatsFunc: func(ctx context.Context, creatorID, assigneeID *uint) (*ticket.TicketStats, error) {
					capturedCreator = creatorID
					capturedAssignee = assigneeID
					return &ticket.TicketStats{Total: 12, Open: 4, Unassigned: 2}, nil
				},
			}

			uc := NewGetDashboardStatsUseCase(ticketRepo, &mockLogger{})

			stats, err := uc.Execute(context.Background(), DashboardStatsQuery{
				Actor: actorWith(5, tc.stored, tc.requested),
			})

			require.NoError(t, err)
			assert.Equal(t, int64(12), stats.Total)
			if tc.wantCreator == nil {
				assert.Nil(t, capturedCreator)
			} else {
				require.NotNil(t, capturedCreator)
				assert.Equal(t, *tc.wantCreator, *capturedCreator)
			}
			if tc.wantAssignee == nil {
				assert.Nil(t, capturedAssignee)
			} else {
				require.NotNil(t, capturedAssignee)
				assert.Equal(t, *tc.wantAssignee, *capturedAssignee)
			}
		})
	}
}

func TestGetDashboardStatsUseCase_Execute_AssignedToMe(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetStatsFunc: func(ctx context.Context, creatorID, assigneeID *uint) (*ticket.TicketStats, error) {
			return &ticket.TicketStats{Total: 12, Open: 4, AssignedToMe: 3}, nil
		},
	}

	uc := NewGetDashboardStatsUseCase(ticketRepo, &mockLogger{})

	stats, err := uc.Execute(context.Background(), DashboardStatsQuery{
		Actor: actorWith(5, authorization.RoleAgent, authorization.RoleAgent),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.AssignedToMe)
}
