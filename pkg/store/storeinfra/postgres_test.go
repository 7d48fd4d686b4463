package storeinfra

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type location struct {
	ID       kernel.RecordID `json:"id"`
	Location string          `json:"location"`
}

func (l location) GetID() kernel.RecordID { return l.ID }

func (l location) WithID(id kernel.RecordID) location {
	l.ID = id
	return l
}

func (l location) Fields() filter.Record {
	return filter.Record{"id": int64(l.ID), "location": l.Location}
}

func newRepo(t *testing.T) (*PostgresRepository[location], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresRepository[location](sqlx.NewDb(db, "postgres"), "location"), mock
}

func TestPostgresRepository_List(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows([]string{"id", "data"}).
		AddRow(int64(1), []byte(`{"id":1,"location":"Bangalore"}`)).
		AddRow(int64(4), []byte(`{"location":"Chennai"}`))
	mock.ExpectQuery(regexp.QuoteMeta("FROM ats_records")).
		WithArgs("location").
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, location{ID: 1, Location: "Bangalore"}, items[0])
	assert.Equal(t, kernel.RecordID(4), items[1].ID, "id column wins over payload")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ats_records")).
		WithArgs("location", int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 9)
	assert.True(t, store.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateAllocatesFromSequence(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ats_sequences")).
		WithArgs("location").
		WillReturnRows(sqlmock.NewRows([]string{"last_id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ats_records")).
		WithArgs("location", int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), location{Location: "Hyderabad"})
	require.NoError(t, err)
	assert.Equal(t, kernel.RecordID(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateAndDeleteMissing(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ats_records")).
		WithArgs("location", int64(3), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ats_records")).
		WithArgs("location", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), location{ID: 3, Location: "Pune"})
	assert.True(t, store.IsNotFound(err))

	err = repo.Delete(context.Background(), 3)
	assert.True(t, store.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_SeedBumpsSequence(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ats_records")).
		WithArgs("location", int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("GREATEST(ats_sequences.last_id, EXCLUDED.last_id)")).
		WithArgs("location", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Seed(context.Background(), location{ID: 2, Location: "Chennai"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_SeedRequiresID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.Seed(context.Background(), location{Location: "Nowhere"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
