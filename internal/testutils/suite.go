package testutils

import (
	"fmt"
	"sync/atomic"

	"openlab-reservation-backend/internal/database"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSequence atomic.Int64

// BaseTestSuite gives every suite its own in-memory database with the full
// schema migrated. Shared-cache keeps the database alive across the pooled
// connections of one suite while isolating suites from each other.
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupSuite opens the suite database and migrates the schema
func (s *BaseTestSuite) SetupSuite() {
	dsn := fmt.Sprintf("file:suite%d?mode=memory&cache=shared", dbSequence.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.DB = db
}

// SetupTest wipes all tables before each test
func (s *BaseTestSuite) SetupTest() {
	CleanTestDB(s.DB)
}

// CleanTestDB empties every table, children before parents
func CleanTestDB(db *gorm.DB) {
	tables := []string{
		"DDB_APPROVAL_NOTI",
		"DDB_EQUIPMENT_RESV",
		"DDB_OPENLAB_AUTH",
		"TSP_YMS_UI_SEARCH_HISTORY",
		"DDB_EQUIPMENT_MST",
		"MST_EMPLOYEE",
	}
	for _, table := range tables {
		db.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}
