package main

import (
	"flag"
	"fmt"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/model"
	"sahabat3t-backend/tools"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Seeds an administrator account. Run once per deployment:
//
//	go run ./cmd/create-admin -email admin@sahabat3t.id -password '...'
func main() {
	email := flag.String("email", "admin@sahabat3t.id", "admin email")
	name := flag.String("name", "Administrator Sahabat3T", "display name")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		fmt.Println("usage: create-admin -email <email> -password <password>")
		return
	}

	config.Init()
	database.Init()

	var existing model.User
	err := database.DB.Where("email = ?", *email).First(&existing).Error
	if err == nil {
		fmt.Printf("account %s already exists (id=%d, role=%d)\n", *email, existing.ID, existing.RoleID)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		panic(err)
	}

	admin := model.User{
		SchoolName: *name,
		NPSN:       "00000000",
		Email:      *email,
		Password:   tools.PasswordEncrypt(*password),
		RoleID:     model.RoleAdmin,
	}
	tools.PanicOnErr(database.DB.Create(&admin).Error)

	fmt.Printf("admin created: id=%d email=%s\n", admin.ID, admin.Email)
}
