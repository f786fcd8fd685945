package timeline

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
	ProposalID uint   `json:"proposal_id" binding:"required"`
	Date       int64  `json:"date" binding:"required"`
	Activity   string `json:"activity" binding:"required"`
}

// Create records a progress entry against one of the caller's approved
// proposals.
func Create(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind timeline request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var proposal model.Proposal
	err := database.DB.Where("id = ? AND owner_id = ?", req.ProposalID, payload.UserID).First(&proposal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("proposal tidak ditemukan"))
		return
	case err != nil:
		log.Error("failed to load proposal", "error", err, "proposal_id", req.ProposalID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if proposal.Status != model.StatusApproved {
		response.Fail(c, response.ErrStatusConflict.WithTips("linimasa hanya untuk proposal yang disetujui"))
		return
	}

	entry := model.Timeline{
		ProposalID: proposal.ID,
		Date:       req.Date,
		Activity:   req.Activity,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Error("failed to create timeline entry", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("timeline entry created", "id", entry.ID, "proposal_id", proposal.ID)

	response.Success(c, entry)
}

// ListByProposal returns a proposal's timeline, in date order. The owner sees
// their own; administrators see any.
func ListByProposal(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	proposalID := c.Param("proposalId")

	if payload.RoleID < model.RoleAdmin {
		var proposal model.Proposal
		err := database.DB.Where("id = ? AND owner_id = ?", proposalID, payload.UserID).First(&proposal).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c, response.ErrNotFound.WithTips("proposal tidak ditemukan"))
			return
		case err != nil:
			log.Error("failed to load proposal", "error", err, "proposal_id", proposalID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	var entries []model.Timeline
	err := database.DB.
		Where("proposal_id = ?", proposalID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		log.Error("failed to list timeline", "error", err, "proposal_id", proposalID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, entries)
}

// MarkApproved flags a timeline entry as verified by an administrator.
func MarkApproved(c *gin.Context) {
	id := c.Param("id")

	var entry model.Timeline
	err := database.DB.First(&entry, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("linimasa tidak ditemukan"))
		return
	case err != nil:
		log.Error("failed to load timeline entry", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Model(&entry).Update("approved", true).Error; err != nil {
		log.Error("failed to approve timeline entry", "error", err, "id", entry.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("timeline entry approved", "id", entry.ID)

	response.Success(c, entry)
}
