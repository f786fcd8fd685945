package model

const (
	ReportDraft     = "draft"
	ReportSubmitted = "submitted"
)

type Report struct {
	Model
	OwnerID    uint `gorm:"index;not null" json:"owner_id"`
	ProposalID uint `gorm:"index;not null" json:"proposal_id"`

	Title           string `gorm:"type:varchar(200);not null" json:"title"`
	TransactionDate int64  `gorm:"not null" json:"transaction_date"`
	Description     string `gorm:"type:text" json:"description"`
	Recipient       string `gorm:"type:varchar(100)" json:"recipient"`
	Amount          int64  `gorm:"not null" json:"amount"`
	Evidence        string `gorm:"type:varchar(255)" json:"evidence"`
	Status          string `gorm:"type:varchar(16);default:draft;not null" json:"status"`

	Proposal Proposal `gorm:"foreignKey:ProposalID" json:"-"`
}
