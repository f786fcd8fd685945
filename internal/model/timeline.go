package model

// Timeline is a progress entry a school records against its approved proposal.
type Timeline struct {
	Model
	ProposalID uint   `gorm:"index;not null" json:"proposal_id"`
	Date       int64  `gorm:"not null" json:"date"`
	Activity   string `gorm:"type:varchar(255);not null" json:"activity"`
	Approved   bool   `gorm:"default:false" json:"approved"`

	Proposal Proposal `gorm:"foreignKey:ProposalID" json:"-"`
}
