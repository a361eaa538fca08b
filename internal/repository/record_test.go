package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_ListByOwner_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "content", "authorid"}).
		AddRow(1, "T", "C", 7).
		AddRow(2, "T2", "C2", 7)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "journals" WHERE authorid = $1 ORDER BY id ASC`)).
		WithArgs(7).
		WillReturnRows(rows)

	records, err := repo.ListByOwner(context.Background(), models.KindJournal, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(7), records[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_GetByID_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	t.Run("Scoped To Owner", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "stories" WHERE id = $1 AND authorid = $2 ORDER BY "stories"."id" LIMIT $3`)).
			WithArgs(3, 7, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "authorid"}).AddRow(3, "Tale", 7))

		rec, err := repo.GetByID(ctx, models.KindStory, 3, 7)
		require.NoError(t, err)
		assert.Equal(t, "Tale", rec.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "stories"`)).
			WillReturnError(errors.New("connection reset"))

		rec, err := repo.GetByID(ctx, models.KindStory, 3, 7)
		assert.Nil(t, rec)
		assert.True(t, models.IsCode(err, models.CodeInternal))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecordRepository_Create_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "books" ("title","content","authorid","created_at","updated_at") VALUES ($1,$2,$3,$4,$5) RETURNING "id"`)).
		WithArgs("Dune", "", 7, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	rec, err := repo.Create(context.Background(), models.KindBook, "Dune", "", 7)
	require.NoError(t, err)
	assert.Equal(t, uint(11), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_UpdateAndDelete_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "journals" SET "content"=$1,"title"=$2,"updated_at"=$3 WHERE id = $4 AND authorid = $5`)).
		WithArgs("new", "T", sqlmock.AnyArg(), 1, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	found, err := repo.Update(ctx, models.KindJournal, 1, 7, "T", "new")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "journals" WHERE id = $1 AND authorid = $2`)).
		WithArgs(1, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(ctx, models.KindJournal, 1, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_UnknownKind(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewRecordRepository(db)

	_, err := repo.ListByOwner(context.Background(), models.Kind("poem"), 1)
	assert.True(t, models.IsCode(err, models.CodeInternal))
}

func TestRecordRepository_SQLite(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	t.Run("Create And List In Insertion Order", func(t *testing.T) {
		first, err := repo.Create(ctx, models.KindJournal, "first", "one", alice)
		require.NoError(t, err)
		second, err := repo.Create(ctx, models.KindJournal, "second", "two", alice)
		require.NoError(t, err)
		_, err = repo.Create(ctx, models.KindJournal, "bob's", "", bob)
		require.NoError(t, err)

		records, err := repo.ListByOwner(ctx, models.KindJournal, alice)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, first.ID, records[0].ID)
		assert.Equal(t, second.ID, records[1].ID)
		for _, r := range records {
			assert.Equal(t, alice, r.OwnerID)
		}

		stories, err := repo.ListByOwner(ctx, models.KindStory, alice)
		require.NoError(t, err)
		assert.Empty(t, stories)
	})

	t.Run("Foreign Owner Looks Absent", func(t *testing.T) {
		rec, err := repo.Create(ctx, models.KindStory, "mine", "", alice)
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, models.KindStory, rec.ID, bob)
		assert.True(t, models.IsCode(err, models.CodeNotFound))

		found, err := repo.Update(ctx, models.KindStory, rec.ID, bob, "stolen", "")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, repo.Delete(ctx, models.KindStory, rec.ID, bob))

		got, err := repo.GetByID(ctx, models.KindStory, rec.ID, alice)
		require.NoError(t, err)
		assert.Equal(t, "mine", got.Title)
	})

	t.Run("Update", func(t *testing.T) {
		rec, err := repo.Create(ctx, models.KindBook, "draft", "", alice)
		require.NoError(t, err)

		found, err := repo.Update(ctx, models.KindBook, rec.ID, alice, "final", "body")
		require.NoError(t, err)
		assert.True(t, found)

		got, err := repo.GetByID(ctx, models.KindBook, rec.ID, alice)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Title)
		assert.Equal(t, "body", got.Content)
	})

	t.Run("Delete Twice", func(t *testing.T) {
		rec, err := repo.Create(ctx, models.KindJournal, "temp", "", alice)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, models.KindJournal, rec.ID, alice))
		require.NoError(t, repo.Delete(ctx, models.KindJournal, rec.ID, alice))

		_, err = repo.GetByID(ctx, models.KindJournal, rec.ID, alice)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("Set Checked", func(t *testing.T) {
		rec, err := repo.Create(ctx, models.KindBook, "Dune", "", alice)
		require.NoError(t, err)
		assert.False(t, rec.Checked)

		found, err := repo.SetChecked(ctx, rec.ID, alice, true)
		require.NoError(t, err)
		assert.True(t, found)

		got, err := repo.GetByID(ctx, models.KindBook, rec.ID, alice)
		require.NoError(t, err)
		assert.True(t, got.Checked)

		found, err = repo.SetChecked(ctx, rec.ID, bob, false)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
