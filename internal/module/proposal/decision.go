package proposal

import (
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type DecisionReq struct {
	Note string `json:"note"`
}

// Approve moves a pending proposal to approved.
func Approve(c *gin.Context) {
	decide(c, model.StatusApproved)
}

// Reject moves a pending proposal to rejected.
func Reject(c *gin.Context) {
	decide(c, model.StatusRejected)
}

// decide performs an administrative transition and appends the decision
// record in the same transaction, so the audit trail never drifts from the
// status field.
func decide(c *gin.Context, toStatus string) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req DecisionReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Error("failed to bind decision request", "error", err)
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
	}

	id := c.Param("id")

	var proposal model.Proposal
	err := database.DB.First(&proposal, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("decision on missing proposal", "id", id)
		response.Fail(c, response.ErrNotFound.WithTips("proposal tidak ditemukan"))
		return
	case err != nil:
		log.Error("failed to load proposal", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !model.CanTransition(proposal.Status, toStatus) {
		log.Warn("illegal decision",
			"id", proposal.ID,
			"from", proposal.Status,
			"to", toStatus)
		response.Fail(c, response.ErrStatusConflict.WithTips("proposal berstatus "+proposal.Status))
		return
	}

	fromStatus := proposal.Status
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&proposal).Update("status", toStatus).Error; err != nil {
			return err
		}
		decision := model.Decision{
			ProposalID: proposal.ID,
			AdminID:    payload.UserID,
			FromStatus: fromStatus,
			ToStatus:   toStatus,
			Note:       req.Note,
		}
		return tx.Create(&decision).Error
	})
	if err != nil {
		log.Error("failed to record decision", "error", err, "id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposal decided",
		"id", proposal.ID,
		"from", fromStatus,
		"to", toStatus,
		"admin_id", payload.UserID)

	response.Success(c, proposal)
}

// ListDecisions returns the decision history of a proposal, oldest first.
func ListDecisions(c *gin.Context) {
	id := c.Param("id")

	var decisions []model.Decision
	err := database.DB.
		Where("proposal_id = ?", id).
		Order("created_at ASC").
		Find(&decisions).Error
	if err != nil {
		log.Error("failed to list decisions", "error", err, "proposal_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, decisions)
}
