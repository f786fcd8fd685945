package model

const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// proposalTransitions whitelists the legal status moves. Approved is terminal;
// a rejected proposal may be taken back to draft for revision.
var proposalTransitions = map[string][]string{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusRejected: {StatusDraft},
}

// CanTransition reports whether a proposal may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range proposalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Proposal struct {
	Model
	OwnerID uint   `gorm:"index;not null" json:"owner_id"`
	Status  string `gorm:"type:varchar(16);default:draft;not null" json:"status"`

	// General information
	Title       string `gorm:"type:varchar(200)" json:"title"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	Region      string `gorm:"type:varchar(100)" json:"region"`
	Description string `gorm:"type:text" json:"description"`

	// School snapshot at submission time
	SchoolName       string `gorm:"type:varchar(100)" json:"school_name"`
	NPSN             string `gorm:"type:char(8)" json:"npsn"`
	ContactPhone     string `gorm:"type:varchar(30)" json:"contact_phone"`
	PrincipalName    string `gorm:"type:varchar(100)" json:"principal_name"`
	SchoolAddress    string `gorm:"type:varchar(255)" json:"school_address"`
	PrincipalAddress string `gorm:"type:varchar(255)" json:"principal_address"`

	// Initial condition
	Background string `gorm:"type:text" json:"background"`
	Purpose    string `gorm:"type:text" json:"purpose"`
	Benefits   string `gorm:"type:text" json:"benefits"`

	// Funding plan
	TargetAmount int64 `gorm:"default:0" json:"target_amount"`
	StartDate    int64 `gorm:"" json:"start_date"`
	EndDate      int64 `gorm:"" json:"end_date"`

	// Attachment URLs
	SchoolCertificate string   `gorm:"type:varchar(255)" json:"school_certificate"`
	ProposalDoc       string   `gorm:"type:varchar(255)" json:"proposal_doc"`
	BudgetPlan        string   `gorm:"type:varchar(255)" json:"budget_plan"`
	SchoolPhotos      []string `gorm:"serializer:json" json:"school_photos"`

	User User `gorm:"foreignKey:OwnerID" json:"-"`
}
