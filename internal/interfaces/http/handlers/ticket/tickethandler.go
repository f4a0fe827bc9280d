package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC       usecases.CreateTicketExecutor
	updateTicketUC       usecases.UpdateTicketExecutor
	deleteTicketUC       usecases.DeleteTicketExecutor
	getTicketUC          usecases.GetTicketExecutor
	listTicketsUC        usecases.ListTicketsExecutor
	addCommentUC         usecases.AddCommentExecutor
	castVoteUC           usecases.CastVoteExecutor
	dashboardStatsUC     usecases.GetDashboardStatsExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	castVoteUC usecases.CastVoteExecutor,
	dashboardStatsUC usecases.GetDashboardStatsExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
	lg logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		updateTicketUC:       updateTicketUC,
		deleteTicketUC:       deleteTicketUC,
		getTicketUC:          getTicketUC,
		listTicketsUC:        listTicketsUC,
		addCommentUC:         addCommentUC,
		castVoteUC:           castVoteUC,
		dashboardStatsUC:     dashboardStatsUC,
		downloadAttachmentUC: downloadAttachmentUC,
		logger:               lg,
	}
}

// CreateTicket handles POST /tickets. The body is multipart form data so
// an attachment can ride along with the ticket fields.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("category_id must be a number"))
		return
	}

	cmd := usecases.CreateTicketCommand{
		Actor:       actor,
		Subject:     c.PostForm("subject"),
		Description: c.PostForm("description"),
		CategoryID:  uint(categoryID),
		Priority:    c.PostForm("priority"),
	}

	fileHeader, err := c.FormFile("attachment")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > constants.MaxAttachmentSize {
			utils.ErrorResponseWithError(c, errors.NewValidationError("attachment exceeds the size limit"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Warnw("failed to open uploaded file", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
			return
		}
		defer file.Close()

		cmd.Attachment = &usecases.AttachmentUpload{
			Filename: fileHeader.Filename,
			MimeType: fileHeader.Header.Get("Content-Type"),
			Content:  file,
		}
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDetailResponse(detail))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toSummaryResponses(result.Tickets), result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	cmd, err := req.ToCommand(actor, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("content is required"))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:      actor,
		TicketID:   ticketID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// CastVote handles POST /tickets/:id/votes
func (h *TicketHandler) CastVote(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("vote_type is required"))
		return
	}

	result, err := h.castVoteUC.Execute(c.Request.Context(), usecases.CastVoteCommand{
		Actor:    actor,
		TicketID: ticketID,
		VoteType: req.VoteType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDashboardStats handles GET /dashboard/stats
func (h *TicketHandler) GetDashboardStats(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.dashboardStatsUC.Execute(c.Request.Context(), usecases.DashboardStatsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", DashboardStatsResponse{
		Total:        stats.Total,
		Open:         stats.Open,
		InProgress:   stats.InProgress,
		Resolved:     stats.Resolved,
		Closed:       stats.Closed,
		Unassigned:   stats.Unassigned,
		AssignedToMe: stats.AssignedToMe,
	})
}

// DownloadAttachment handles GET /attachments/:id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid attachment ID"))
		return
	}

	download, err := h.downloadAttachmentUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		Actor:        actor,
		AttachmentID: uint(id),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer download.Content.Close()

	c.DataFromReader(http.StatusOK, download.Size, download.MimeType, download.Content, map[string]string{
		"Content-Disposition": `attachment; filename="` + download.OriginalName + `"`,
	})
}
