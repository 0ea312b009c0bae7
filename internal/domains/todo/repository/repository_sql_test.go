package repository_test

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"todoapi/infras/otel/mocks"
	"todoapi/infras/postgres"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	queryInsert = "INSERT INTO todos (title, completed) VALUES ($1, false) RETURNING id, title, completed"
	queryGetAll = "SELECT id, title, completed FROM todos"
	queryGet    = "SELECT id, title, completed FROM todos WHERE id = $1"
	queryUpdate = "UPDATE todos SET title = $1 WHERE id = $2 RETURNING id, title, completed"
	queryDelete = "DELETE FROM todos WHERE id = $1"
)

var (
	errDriver   = errors.New("driver: bad connection")
	todoColumns = []string{model.FieldID, model.FieldTitle, model.FieldCompleted}
)

// newSQLRepository builds the repository over a sqlmock driver with postgres
// bind variables.
func newSQLRepository(t *testing.T) (repository.Todo, sqlmock.Sqlmock, *mocks.Otel) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	otel := mocks.NewOtel()
	conn := &postgres.Connection{DB: sqlx.NewDb(db, "postgres")}

	return repository.New(conn, otel), mock, otel
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func assertStoreError(t *testing.T, err error, otel *mocks.Otel) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrStore)
	assert.ErrorIs(t, err, errDriver)
	assert.Len(t, otel.TracedErrors(), 1)
}

func TestRepositorySQL_Insert(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectPrepare(q(queryInsert)).
			ExpectQuery().
			WithArgs("Buy milk").
			WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(1, "Buy milk", false))

		todo, err := repo.Insert(context.Background(), "Buy milk")

		require.NoError(t, err)
		assert.Equal(t, model.Todo{ID: 1, Title: "Buy milk", Completed: false}, todo)
	})

	t.Run("prepare fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectPrepare(q(queryInsert)).WillReturnError(errDriver)

		_, err := repo.Insert(context.Background(), "Buy milk")

		assertStoreError(t, err, otel)
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectPrepare(q(queryInsert)).
			ExpectQuery().
			WithArgs("Buy milk").
			WillReturnError(errDriver)

		_, err := repo.Insert(context.Background(), "Buy milk")

		assertStoreError(t, err, otel)
	})
}

func TestRepositorySQL_GetAll(t *testing.T) {
	t.Run("returns every row", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectQuery(q(queryGetAll)).
			WillReturnRows(sqlmock.NewRows(todoColumns).
				AddRow(1, "Buy milk", false).
				AddRow(2, "Walk dog", true))

		todos, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.Todo{
			{ID: 1, Title: "Buy milk"},
			{ID: 2, Title: "Walk dog", Completed: true},
		}, todos)
	})

	t.Run("empty table is an empty slice", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectQuery(q(queryGetAll)).WillReturnRows(sqlmock.NewRows(todoColumns))

		todos, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectQuery(q(queryGetAll)).WillReturnError(errDriver)

		todos, err := repo.GetAll(context.Background())

		assert.Nil(t, todos)
		assertStoreError(t, err, otel)
	})
}

func TestRepositorySQL_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectPrepare(q(queryGet)).
			ExpectQuery().
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(7, "Buy milk", true))

		todo, err := repo.Get(context.Background(), 7)

		require.NoError(t, err)
		require.NotNil(t, todo)
		assert.Equal(t, model.Todo{ID: 7, Title: "Buy milk", Completed: true}, *todo)
	})

	t.Run("no row is nil without error", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectPrepare(q(queryGet)).
			ExpectQuery().
			WithArgs(999999).
			WillReturnRows(sqlmock.NewRows(todoColumns))

		todo, err := repo.Get(context.Background(), 999999)

		require.NoError(t, err)
		assert.Nil(t, todo)
		assert.Empty(t, otel.TracedErrors())
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectPrepare(q(queryGet)).
			ExpectQuery().
			WithArgs(7).
			WillReturnError(errDriver)

		todo, err := repo.Get(context.Background(), 7)

		assert.Nil(t, todo)
		assertStoreError(t, err, otel)
	})
}

func TestRepositorySQL_UpdateTitle(t *testing.T) {
	t.Run("returns the updated row", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectPrepare(q(queryUpdate)).
			ExpectQuery().
			WithArgs("Buy bread", 7).
			WillReturnRows(sqlmock.NewRows(todoColumns).AddRow(7, "Buy bread", true))

		todo, err := repo.UpdateTitle(context.Background(), 7, "Buy bread")

		require.NoError(t, err)
		require.NotNil(t, todo)
		assert.Equal(t, model.Todo{ID: 7, Title: "Buy bread", Completed: true}, *todo)
	})

	t.Run("no row is nil without error", func(t *testing.T) {
		repo, mock, _ := newSQLRepository(t)

		mock.ExpectPrepare(q(queryUpdate)).
			ExpectQuery().
			WithArgs("Ghost", 999999).
			WillReturnRows(sqlmock.NewRows(todoColumns))

		todo, err := repo.UpdateTitle(context.Background(), 999999, "Ghost")

		require.NoError(t, err)
		assert.Nil(t, todo)
	})

	t.Run("query fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectPrepare(q(queryUpdate)).
			ExpectQuery().
			WithArgs("Buy bread", 7).
			WillReturnError(errDriver)

		todo, err := repo.UpdateTitle(context.Background(), 7, "Buy bread")

		assert.Nil(t, todo)
		assertStoreError(t, err, otel)
	})
}

func TestRepositorySQL_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "existing row", affected: 1},
		{name: "missing row", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newSQLRepository(t)

			mock.ExpectExec(q(queryDelete)).
				WithArgs(7).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Delete(context.Background(), 7)

			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
		})
	}

	t.Run("exec fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectExec(q(queryDelete)).WithArgs(7).WillReturnError(errDriver)

		affected, err := repo.Delete(context.Background(), 7)

		assert.Zero(t, affected)
		assertStoreError(t, err, otel)
	})

	t.Run("rows affected fails", func(t *testing.T) {
		repo, mock, otel := newSQLRepository(t)

		mock.ExpectExec(q(queryDelete)).
			WithArgs(7).
			WillReturnResult(sqlmock.NewErrorResult(errDriver))

		_, err := repo.Delete(context.Background(), 7)

		assertStoreError(t, err, otel)
	})
}

func TestRepositorySQL_StoreErrorKeepsRequestLogger(t *testing.T) {
	repo, mock, _ := newSQLRepository(t)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("request_id", "req-42").Logger().WithContext(context.Background())

	mock.ExpectQuery(q(queryGetAll)).WillReturnError(errDriver)

	_, err := repo.GetAll(ctx)
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), errDriver.Error())
}
