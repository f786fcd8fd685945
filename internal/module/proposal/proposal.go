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

// CreateReq carries the draft fields. Everything is optional: a draft may be
// saved half-filled and completed later.
type CreateReq struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Region      string `json:"region"`
	Description string `json:"description"`

	SchoolName       string `json:"school_name"`
	NPSN             string `json:"npsn"`
	ContactPhone     string `json:"contact_phone"`
	PrincipalName    string `json:"principal_name"`
	SchoolAddress    string `json:"school_address"`
	PrincipalAddress string `json:"principal_address"`

	Background string `json:"background"`
	Purpose    string `json:"purpose"`
	Benefits   string `json:"benefits"`

	TargetAmount int64 `json:"target_amount"`
	StartDate    int64 `json:"start_date"`
	EndDate      int64 `json:"end_date"`

	SchoolCertificate string   `json:"school_certificate"`
	ProposalDoc       string   `json:"proposal_doc"`
	BudgetPlan        string   `json:"budget_plan"`
	SchoolPhotos      []string `json:"school_photos"`
}

// UpdateReq supports partial updates via pointer fields.
type UpdateReq struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Region      *string `json:"region"`
	Description *string `json:"description"`

	SchoolName       *string `json:"school_name"`
	NPSN             *string `json:"npsn"`
	ContactPhone     *string `json:"contact_phone"`
	PrincipalName    *string `json:"principal_name"`
	SchoolAddress    *string `json:"school_address"`
	PrincipalAddress *string `json:"principal_address"`

	Background *string `json:"background"`
	Purpose    *string `json:"purpose"`
	Benefits   *string `json:"benefits"`

	TargetAmount *int64 `json:"target_amount"`
	StartDate    *int64 `json:"start_date"`
	EndDate      *int64 `json:"end_date"`

	SchoolCertificate *string   `json:"school_certificate"`
	ProposalDoc       *string   `json:"proposal_doc"`
	BudgetPlan        *string   `json:"budget_plan"`
	SchoolPhotos      *[]string `json:"school_photos"`
}

// findOwned loads the proposal only when it belongs to ownerID. A foreign id
// reads the same as a missing one so existence never leaks across accounts.
func findOwned(id string, ownerID uint) (*model.Proposal, *response.Error) {
	var proposal model.Proposal
	err := database.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&proposal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, response.ErrNotFound.WithTips("proposal tidak ditemukan")
	case err != nil:
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	return &proposal, nil
}

// List returns the caller's proposals, newest-updated first.
func List(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var proposals []model.Proposal
	err := database.DB.
		Where("owner_id = ?", payload.UserID).
		Order("updated_at DESC").
		Find(&proposals).Error
	if err != nil {
		log.Error("failed to list proposals", "error", err, "owner_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, proposals)
}

// ListPending returns every pending proposal for moderation, oldest first so
// the queue is worked in submission order.
func ListPending(c *gin.Context) {
	var proposals []model.Proposal
	err := database.DB.
		Where("status = ?", model.StatusPending).
		Order("updated_at ASC").
		Find(&proposals).Error
	if err != nil {
		log.Error("failed to list pending proposals", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, proposals)
}

// Get returns one proposal: its owner always, an administrator for any id.
func Get(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	id := c.Param("id")

	if payload.RoleID >= model.RoleAdmin {
		var proposal model.Proposal
		err := database.DB.First(&proposal, "id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c, response.ErrNotFound.WithTips("proposal tidak ditemukan"))
			return
		case err != nil:
			log.Error("failed to load proposal", "error", err, "id", id)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		response.Success(c, proposal)
		return
	}

	proposal, appErr := findOwned(id, payload.UserID)
	if appErr != nil {
		response.Fail(c, appErr)
		return
	}
	response.Success(c, proposal)
}

// CreateDraft persists a new proposal in draft status.
func CreateDraft(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind create request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	proposal := model.Proposal{
		OwnerID: payload.UserID,
		Status:  model.StatusDraft,

		Title:       req.Title,
		Category:    req.Category,
		Region:      req.Region,
		Description: req.Description,

		SchoolName:       req.SchoolName,
		NPSN:             req.NPSN,
		ContactPhone:     req.ContactPhone,
		PrincipalName:    req.PrincipalName,
		SchoolAddress:    req.SchoolAddress,
		PrincipalAddress: req.PrincipalAddress,

		Background: req.Background,
		Purpose:    req.Purpose,
		Benefits:   req.Benefits,

		TargetAmount: req.TargetAmount,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,

		SchoolCertificate: req.SchoolCertificate,
		ProposalDoc:       req.ProposalDoc,
		BudgetPlan:        req.BudgetPlan,
		SchoolPhotos:      req.SchoolPhotos,
	}

	if err := database.DB.Create(&proposal).Error; err != nil {
		log.Error("failed to create draft", "error", err, "owner_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("draft created",
		"id", proposal.ID,
		"owner_id", payload.UserID)

	response.Success(c, proposal)
}

// UpdateDraft merges the provided fields into an owned draft. Anything past
// draft is immutable through this path.
func UpdateDraft(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind update request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	proposal, appErr := findOwned(c.Param("id"), payload.UserID)
	if appErr != nil {
		response.Fail(c, appErr)
		return
	}

	if proposal.Status != model.StatusDraft {
		log.Warn("update refused outside draft", "id", proposal.ID, "status", proposal.Status)
		response.Fail(c, response.ErrStatusConflict.WithTips("proposal hanya dapat diubah saat berstatus draft"))
		return
	}

	applyUpdate(proposal, &req)

	if err := database.DB.Save(proposal).Error; err != nil {
		log.Error("failed to update draft", "error", err, "id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("draft updated", "id", proposal.ID)

	response.Success(c, proposal)
}

func applyUpdate(p *model.Proposal, req *UpdateReq) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Region != nil {
		p.Region = *req.Region
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.SchoolName != nil {
		p.SchoolName = *req.SchoolName
	}
	if req.NPSN != nil {
		p.NPSN = *req.NPSN
	}
	if req.ContactPhone != nil {
		p.ContactPhone = *req.ContactPhone
	}
	if req.PrincipalName != nil {
		p.PrincipalName = *req.PrincipalName
	}
	if req.SchoolAddress != nil {
		p.SchoolAddress = *req.SchoolAddress
	}
	if req.PrincipalAddress != nil {
		p.PrincipalAddress = *req.PrincipalAddress
	}
	if req.Background != nil {
		p.Background = *req.Background
	}
	if req.Purpose != nil {
		p.Purpose = *req.Purpose
	}
	if req.Benefits != nil {
		p.Benefits = *req.Benefits
	}
	if req.TargetAmount != nil {
		p.TargetAmount = *req.TargetAmount
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = *req.EndDate
	}
	if req.SchoolCertificate != nil {
		p.SchoolCertificate = *req.SchoolCertificate
	}
	if req.ProposalDoc != nil {
		p.ProposalDoc = *req.ProposalDoc
	}
	if req.BudgetPlan != nil {
		p.BudgetPlan = *req.BudgetPlan
	}
	if req.SchoolPhotos != nil {
		p.SchoolPhotos = *req.SchoolPhotos
	}
}

// Delete removes an owned draft. Submitted or judged proposals stay.
func Delete(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	proposal, appErr := findOwned(c.Param("id"), payload.UserID)
	if appErr != nil {
		response.Fail(c, appErr)
		return
	}

	if proposal.Status != model.StatusDraft {
		log.Warn("delete refused outside draft", "id", proposal.ID, "status", proposal.Status)
		response.Fail(c, response.ErrStatusConflict.WithTips("hanya draft yang dapat dihapus"))
		return
	}

	if err := database.DB.Delete(proposal).Error; err != nil {
		log.Error("failed to delete draft", "error", err, "id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("draft deleted", "id", proposal.ID)

	response.Success(c)
}

// Submit moves an owned draft to pending. Submitting an already-pending
// proposal succeeds without change; anything else is refused.
func Submit(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	proposal, appErr := findOwned(c.Param("id"), payload.UserID)
	if appErr != nil {
		response.Fail(c, appErr)
		return
	}

	if proposal.Status == model.StatusPending {
		response.Success(c, proposal)
		return
	}
	if !model.CanTransition(proposal.Status, model.StatusPending) {
		log.Warn("illegal submit", "id", proposal.ID, "status", proposal.Status)
		response.Fail(c, response.ErrStatusConflict.WithTips("proposal tidak dapat diajukan dari status "+proposal.Status))
		return
	}

	proposal.Status = model.StatusPending
	if err := database.DB.Save(proposal).Error; err != nil {
		log.Error("failed to submit proposal", "error", err, "id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposal submitted", "id", proposal.ID, "owner_id", payload.UserID)

	response.Success(c, proposal)
}

// Revise takes an owned rejected proposal back to draft for rework.
func Revise(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	proposal, appErr := findOwned(c.Param("id"), payload.UserID)
	if appErr != nil {
		response.Fail(c, appErr)
		return
	}

	if !model.CanTransition(proposal.Status, model.StatusDraft) {
		log.Warn("illegal revise", "id", proposal.ID, "status", proposal.Status)
		response.Fail(c, response.ErrStatusConflict.WithTips("hanya proposal yang ditolak dapat direvisi"))
		return
	}

	proposal.Status = model.StatusDraft
	if err := database.DB.Save(proposal).Error; err != nil {
		log.Error("failed to revise proposal", "error", err, "id", proposal.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("proposal back to draft", "id", proposal.ID)

	response.Success(c, proposal)
}
