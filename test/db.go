package test

import (
	"os"
	"testing"

	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// SetupDB wires database.DB to the MySQL instance named by TEST_MYSQL_DSN and
// clears every table. Tests that need a database skip when the variable is
// unset, so the unit suite stays runnable anywhere.
func SetupDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping database-backed test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	database.DB = db

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Proposal{},
		&model.Report{},
		&model.Decision{},
		&model.Upload{},
		&model.Timeline{},
	))

	// Children before parents so foreign keys never block the wipe.
	for _, table := range []string{"decision", "timeline", "report", "upload", "proposal", "user"} {
		require.NoError(t, db.Exec("DELETE FROM `"+table+"`").Error)
	}
}
