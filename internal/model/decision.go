package model

// Decision is an append-only record of an administrative status change on a
// proposal. Rows are only ever inserted, never updated or deleted.
type Decision struct {
	Model
	ProposalID uint   `gorm:"index;not null" json:"proposal_id"`
	AdminID    uint   `gorm:"not null" json:"admin_id"`
	FromStatus string `gorm:"type:varchar(16);not null" json:"from_status"`
	ToStatus   string `gorm:"type:varchar(16);not null" json:"to_status"`
	Note       string `gorm:"type:text" json:"note"`
}
