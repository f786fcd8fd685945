package model

type Upload struct {
	Model
	OwnerID      uint   `gorm:"index;not null" json:"owner_id"`
	FileName     string `gorm:"type:varchar(255);not null" json:"file_name"`
	OriginalName string `gorm:"type:varchar(255)" json:"original_name"`
	ContentType  string `gorm:"type:varchar(100)" json:"content_type"`
	Size         int64  `gorm:"default:0" json:"size"`
	URL          string `gorm:"type:varchar(255)" json:"url"`
}
