package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"todo-auth-service/internal/infrastructure/db/postgres"
)

// newTestDB opens an in-memory sqlite database with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: databases are per-connection; pin the pool to one.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&postgres.UserModel{}, &postgres.TodoModel{}))
	return db
}

type sentMail struct {
	Email string
	Token string
}

// fakeMailer records outbound mail instead of sending it.
type fakeMailer struct {
	verifications []sentMail
	resets        []sentMail
	err           error
}

func (f *fakeMailer) SendVerificationEmail(_ context.Context, email, token string) error {
	if f.err != nil {
		return f.err
	}
	f.verifications = append(f.verifications, sentMail{Email: email, Token: token})
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(_ context.Context, email, token string) error {
	if f.err != nil {
		return f.err
	}
	f.resets = append(f.resets, sentMail{Email: email, Token: token})
	return nil
}
