package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorai/pkg"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })
	return NewRepository(dbConn), mock
}

func TestAppendWritesSessionAndMessages(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO chat_sessions").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("s1", pkg.SenderUser, pkg.KindText, "chest pain").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO chat_messages").
		WithArgs("s1", pkg.SenderBot, pkg.KindDoctorSuggestion, "suggestion").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), "s1", []pkg.StoredMessage{
		{Sender: pkg.SenderUser, Kind: pkg.KindText, Text: "chest pain"},
		{Sender: pkg.SenderBot, Kind: pkg.KindDoctorSuggestion, Text: "suggestion"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendRollsBackOnFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO chat_sessions").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO chat_messages").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Append(context.Background(), "s1", []pkg.StoredMessage{
		{Sender: pkg.SenderUser, Kind: pkg.KindText, Text: "hi"},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadReturnsMessagesInOrder(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"sender", "kind", "content"}).
		AddRow("user", "text", "chest pain").
		AddRow("bot", "doctor-suggestion", "1. Dr. A ...")
	mock.ExpectQuery("SELECT sender, kind, content").
		WithArgs("s1").
		WillReturnRows(rows)

	msgs, err := repo.Read(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, pkg.SenderUser, msgs[0].Sender)
	assert.Equal(t, pkg.KindDoctorSuggestion, msgs[1].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadUnknownSessionIsEmptyNotError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT sender, kind, content").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"sender", "kind", "content"}))

	msgs, err := repo.Read(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.NotNil(t, msgs)
}

func TestListSessionsNewestFirst(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"session_id", "created_at"}).
		AddRow("s2", now).
		AddRow("s1", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT session_id, created_at").
		WillReturnRows(rows)

	sessions, err := repo.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s2", sessions[0].SessionID)
	assert.Equal(t, "s1", sessions[1].SessionID)
}
