package ticket

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/usecases"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/utils"
)

// UpdateTicketRequest distinguishes an absent assignee_id from an explicit
// null, which clears the assignment. The raw message keeps that difference.
type UpdateTicketRequest struct {
	Status     *string         `json:"status"`
	Priority   *string         `json:"priority"`
	AssigneeID json.RawMessage `json:"assignee_id"`
}

func (r *UpdateTicketRequest) ToCommand(actor authorization.Actor, ticketID uint) (usecases.UpdateTicketCommand, error) {
	cmd := usecases.UpdateTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
		Status:   r.Status,
		Priority: r.Priority,
	}

	if len(r.AssigneeID) > 0 {
		cmd.AssigneeSet = true
		if string(r.AssigneeID) != "null" {
			var id uint
			if err := json.Unmarshal(r.AssigneeID, &id); err != nil {
				return cmd, errors.NewValidationError("assignee_id must be a number or null")
			}
			cmd.AssigneeID = &id
		}
	}

	return cmd, nil
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	IsInternal bool   `json:"is_internal"`
}

type CastVoteRequest struct {
	VoteType string `json:"vote_type" binding:"required"`
}

type ListTicketsRequest struct {
	Search     string
	Status     string
	Priority   string
	CategoryID uint
	AssigneeID uint
	Unassigned bool
	MineOnly   bool
	Sort       string
	Page       int
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination, err := utils.ParsePagination(c, constants.TicketPageSize)
	if err != nil {
		return nil, err
	}

	req := &ListTicketsRequest{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Unassigned: c.Query("unassigned") == "true",
		MineOnly:   c.Query("mine") == "true",
		Sort:       c.Query("sort"),
		Page:       pagination.Page,
	}

	if req.CategoryID, err = parseOptionalUintQuery(c, "category_id"); err != nil {
		return nil, err
	}
	if req.AssigneeID, err = parseOptionalUintQuery(c, "assignee_id"); err != nil {
		return nil, err
	}

	return req, nil
}

func (r *ListTicketsRequest) ToQuery(actor authorization.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:      actor,
		Search:     r.Search,
		Status:     r.Status,
		Priority:   r.Priority,
		CategoryID: r.CategoryID,
		AssigneeID: r.AssigneeID,
		Unassigned: r.Unassigned,
		MineOnly:   r.MineOnly,
		Sort:       r.Sort,
		Page:       r.Page,
	}
}

func parseOptionalUintQuery(c *gin.Context, name string) (uint, error) {
	val := c.Query(name)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError(name + " must be a number")
	}
	return uint(n), nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

type TicketSummaryResponse struct {
	ID           uint       `json:"id"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	CategoryID   uint       `json:"category_id"`
	CreatorID    uint       `json:"creator_id"`
	AssigneeID   *uint      `json:"assignee_id"`
	Upvotes      int        `json:"upvotes"`
	Downvotes    int        `json:"downvotes"`
	NetScore     int        `json:"net_score"`
	CommentCount int64      `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toSummaryResponses(summaries []usecases.TicketSummary) []TicketSummaryResponse {
	out := make([]TicketSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, TicketSummaryResponse{
			ID:           s.ID,
			Subject:      s.Subject,
			Status:       s.Status,
			Priority:     s.Priority,
			CategoryID:   s.CategoryID,
			CreatorID:    s.CreatorID,
			AssigneeID:   s.AssigneeID,
			Upvotes:      s.Upvotes,
			Downvotes:    s.Downvotes,
			NetScore:     s.NetScore,
			CommentCount: s.CommentCount,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return out
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	AuthorID    uint      `json:"author_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
}

type AttachmentResponse struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketDetailResponse struct {
	ID              uint                 `json:"id"`
	Subject         string               `json:"subject"`
	Description     string               `json:"description"`
	DescriptionHTML string               `json:"description_html"`
	Status          string               `json:"status"`
	Priority        string               `json:"priority"`
	CategoryID      uint                 `json:"category_id"`
	CreatorID       uint                 `json:"creator_id"`
	AssigneeID      *uint                `json:"assignee_id"`
	Upvotes         int                  `json:"upvotes"`
	Downvotes       int                  `json:"downvotes"`
	NetScore        int                  `json:"net_score"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	ResolvedAt      *time.Time           `json:"resolved_at"`
	ClosedAt        *time.Time           `json:"closed_at"`
	Comments        []CommentResponse    `json:"comments"`
	Attachments     []AttachmentResponse `json:"attachments"`
}

func toDetailResponse(d *usecases.TicketDetail) TicketDetailResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, cm := range d.Comments {
		comments = append(comments, CommentResponse{
			ID:          cm.ID,
			AuthorID:    cm.AuthorID,
			Content:     cm.Content,
			ContentHTML: cm.ContentHTML,
			IsInternal:  cm.IsInternal,
			CreatedAt:   cm.CreatedAt,
		})
	}

	attachments := make([]AttachmentResponse, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:           a.ID,
			OriginalName: a.OriginalName,
			Size:         a.Size,
			MimeType:     a.MimeType,
			CreatedAt:    a.CreatedAt,
		})
	}

	return TicketDetailResponse{
		ID:              d.ID,
		Subject:         d.Subject,
		Description:     d.Description,
		DescriptionHTML: d.DescriptionHTML,
		Status:          d.Status,
		Priority:        d.Priority,
		CategoryID:      d.CategoryID,
		CreatorID:       d.CreatorID,
		AssigneeID:      d.AssigneeID,
		Upvotes:         d.Upvotes,
		Downvotes:       d.Downvotes,
		NetScore:        d.NetScore,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		ResolvedAt:      d.ResolvedAt,
		ClosedAt:        d.ClosedAt,
		Comments:        comments,
		Attachments:     attachments,
	}
}

type DashboardStatsResponse struct {
	Total        int64 `json:"total"`
	Open         int64 `json:"open"`
	InProgress   int64 `json:"in_progress"`
	Resolved     int64 `json:"resolved"`
	Closed       int64 `json:"closed"`
	Unassigned   int64 `json:"unassigned"`
	AssignedToMe int64 `json:"assigned_to_me"`
}
