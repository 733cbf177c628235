package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFormByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewForms(db)

	fields := []byte(`[{"id":"f1","type":"text","label":"Name","required":true}]`)
	mock.ExpectQuery(`SELECT \* FROM "forms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "fields", "created_at"}).
			AddRow(int64(1), "Contact", "", fields, "2025-01-02T03:04:05Z"))

	form, err := repo.ByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), form.ID)
	assert.Equal(t, "Contact", form.Title)
	require.Len(t, form.Fields, 1)
	assert.Equal(t, "Name", form.Fields[0].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewForms(db)

	mock.ExpectQuery(`SELECT \* FROM "forms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "fields", "created_at"}))

	_, err := repo.ByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewForms(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "forms"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	form := &models.Form{
		Title:     "Contact",
		Fields:    datatypes.JSONSlice[models.FormField]{{ID: "f1", Type: models.FieldText, Label: "Name"}},
		CreatedAt: "2025-01-02T03:04:05Z",
	}
	require.NoError(t, repo.Create(context.Background(), form))
	assert.Equal(t, uint(3), form.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewForms(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "forms"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &models.Form{ID: 42, Title: "Gone"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewForms(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "forms"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
