package postgres

import (
	"testing"

	"intellieats/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the full schema so the
// repositories run against real SQL, including unique-constraint translation.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.FoodModel{},
		&model.EntryModel{},
		&model.AnalysisModel{},
	))

	return db
}
