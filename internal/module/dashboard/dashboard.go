package dashboard

import (
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Summary answers the school dashboard in one call: no proposal yet, the most
// recent one still in moderation, or the approved one with its timeline and
// reports.
func Summary(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var proposal model.Proposal
	err := database.DB.
		Where("owner_id = ?", payload.UserID).
		Order("updated_at DESC").
		First(&proposal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Success(c, map[string]interface{}{"state": "empty"})
		return
	case err != nil:
		log.Error("failed to load proposal", "error", err, "owner_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if proposal.Status != model.StatusApproved {
		response.Success(c, map[string]interface{}{
			"state":  "pending",
			"status": proposal.Status,
		})
		return
	}

	var timeline []model.Timeline
	if err := database.DB.Where("proposal_id = ?", proposal.ID).Order("date ASC").Find(&timeline).Error; err != nil {
		log.Error("failed to load timeline", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var reports []model.Report
	if err := database.DB.Where("proposal_id = ?", proposal.ID).Order("updated_at DESC").Find(&reports).Error; err != nil {
		log.Error("failed to load reports", "error", err, "proposal_id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, map[string]interface{}{
		"state":    "approved",
		"proposal": proposal,
		"timeline": timeline,
		"reports":  reports,
	})
}
