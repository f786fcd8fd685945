package model

const (
	RoleSchool = 1
	RoleAdmin  = 2
)

type User struct {
	Model
	SchoolName string `gorm:"type:varchar(100);not null" json:"school_name"`
	NPSN       string `gorm:"type:char(8);uniqueIndex;not null" json:"npsn"`
	Email      string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID     int    `gorm:"default:1;not null" json:"role_id"`
}
