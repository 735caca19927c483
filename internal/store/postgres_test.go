package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkeye/Poker/internal/domain"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_CodeExists(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM rooms WHERE code = $1)`)).
		WithArgs("AB12CD").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.CodeExists(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateRoom(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT INTO rooms`).
		WithArgs("AB12CD", "Calm Panda", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	room, err := repo.CreateRoom(context.Background(), "AB12CD", "Calm Panda", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.Room{ID: 42, Code: "AB12CD", Name: "Calm Panda", AdminUserID: "admin"}, room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateRoom_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	boom := errors.New("duplicate key")
	mock.ExpectQuery(`INSERT INTO rooms`).WillReturnError(boom)

	_, err := repo.CreateRoom(context.Background(), "AB12CD", "Calm Panda", "admin")
	assert.ErrorIs(t, err, boom)
}

func TestPostgres_FindRoom(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := regexp.QuoteMeta(`SELECT id, name, admin_user_id FROM rooms WHERE code = $1`)
	mock.ExpectQuery(q).WithArgs("AB12CD").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "admin_user_id"}).AddRow(int64(7), "Calm Panda", "admin"))
	mock.ExpectQuery(q).WithArgs("ZZZZZZ").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(q).WithArgs("XXXXXX").WillReturnError(errors.New("conn reset"))

	room, err := repo.FindRoom(context.Background(), "AB12CD")
	require.NoError(t, err)
	assert.Equal(t, domain.Room{ID: 7, Code: "AB12CD", Name: "Calm Panda", AdminUserID: "admin"}, room)

	_, err = repo.FindRoom(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	_, err = repo.FindRoom(context.Background(), "XXXXXX")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpsertMember(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT INTO room_members .* ON CONFLICT \(room_id, user_id\)`).
		WithArgs(int64(7), "u1", "Alice", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertMember(context.Background(), 7, "u1", "Alice", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_TouchMember(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE room_members SET last_seen = NOW()`)).
		WithArgs(int64(7), "u1").
		WillReturnError(errors.New("timeout"))

	err := repo.TouchMember(context.Background(), 7, "u1")
	assert.ErrorContains(t, err, "db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, "migrations", gotDir)

	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom }
	assert.ErrorIs(t, RunMigrations(context.Background(), nil), boom)
}
