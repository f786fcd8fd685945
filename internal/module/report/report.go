package report

import (
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateReq struct {
	ProposalID      uint   `json:"proposal_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	TransactionDate int64  `json:"transaction_date" binding:"required"`
	Description     string `json:"description"`
	Recipient       string `json:"recipient"`
	Amount          int64  `json:"amount" binding:"required"`
	Evidence        string `json:"evidence"`
	Status          string `json:"status"`
}

// listRow is a report joined with its proposal's title for display.
type listRow struct {
	model.Report
	ProposalTitle string `json:"proposal_title"`
}

// List returns the caller's reports with proposal titles, newest-updated first.
func List(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var rows []listRow
	err := database.DB.Model(&model.Report{}).
		Select("report.*, proposal.title AS proposal_title").
		Joins("LEFT JOIN proposal ON proposal.id = report.proposal_id").
		Where("report.owner_id = ?", payload.UserID).
		Order("report.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Error("failed to list reports", "error", err, "owner_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, rows)
}

// Create records a fund-usage report against one of the caller's proposals.
// A report can only be submitted against an approved proposal; drafts may be
// parked against any owned proposal.
func Create(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind create-report request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Amount < 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("jumlah dana tidak boleh negatif"))
		return
	}

	status := req.Status
	if status == "" {
		status = model.ReportDraft
	}
	if status != model.ReportDraft && status != model.ReportSubmitted {
		response.Fail(c, response.ErrInvalidRequest.WithTips("status laporan tidak dikenal"))
		return
	}

	var proposal model.Proposal
	err := database.DB.Where("id = ? AND owner_id = ?", req.ProposalID, payload.UserID).First(&proposal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("report against missing proposal", "proposal_id", req.ProposalID, "owner_id", payload.UserID)
		response.Fail(c, response.ErrNotFound.WithTips("proposal tidak ditemukan"))
		return
	case err != nil:
		log.Error("failed to load proposal", "error", err, "proposal_id", req.ProposalID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if status == model.ReportSubmitted && proposal.Status != model.StatusApproved {
		log.Warn("report submitted against unapproved proposal",
			"proposal_id", proposal.ID,
			"proposal_status", proposal.Status)
		response.Fail(c, response.ErrStatusConflict.WithTips("laporan hanya dapat dikirim untuk proposal yang disetujui"))
		return
	}

	report := model.Report{
		OwnerID:         payload.UserID,
		ProposalID:      proposal.ID,
		Title:           req.Title,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		Recipient:       req.Recipient,
		Amount:          req.Amount,
		Evidence:        req.Evidence,
		Status:          status,
	}

	if err := database.DB.Create(&report).Error; err != nil {
		log.Error("failed to create report", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("report created",
		"id", report.ID,
		"proposal_id", proposal.ID,
		"status", report.Status)

	response.Success(c, report)
}

// Delete removes an owned draft report. Submitted reports are immutable.
func Delete(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	id := c.Param("id")

	var report model.Report
	err := database.DB.Where("id = ? AND owner_id = ?", id, payload.UserID).First(&report).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("laporan tidak ditemukan"))
		return
	case err != nil:
		log.Error("failed to load report", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if report.Status != model.ReportDraft {
		log.Warn("delete refused on submitted report", "id", report.ID)
		response.Fail(c, response.ErrStatusConflict.WithTips("laporan yang sudah dikirim tidak dapat dihapus"))
		return
	}

	if err := database.DB.Delete(&report).Error; err != nil {
		log.Error("failed to delete report", "error", err, "id", report.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("report deleted", "id", report.ID)

	response.Success(c)
}
