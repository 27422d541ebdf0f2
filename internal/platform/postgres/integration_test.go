package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/o-magnata69/back-end-api/internal/domain"
	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
	"github.com/o-magnata69/back-end-api/internal/store"
	"github.com/o-magnata69/back-end-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_UserLifecycle(t *testing.T) {
	pool := testdb.Open(t)
	ctx := context.Background()

	users := postgres.NewPostgresUserStore(pool.DB(), nil)
	u := &domain.User{Nome: "Ana", Email: "ana@x.com", SenhaHash: "$2a$10$integration"}
	require.NoError(t, users.Create(ctx, u))
	require.NotZero(t, u.ID)
	t.Cleanup(func() { _ = users.Delete(context.Background(), u.ID) })

	tx := store.NewDBTransactor(pool.DB())
	err := tx.RunInTx(ctx, func(ctx context.Context, sqlTx *sql.Tx) error {
		s := users.WithTx(sqlTx)
		got, err := s.GetByIDForUpdate(ctx, u.ID)
		if err != nil {
			return err
		}
		got.Nome = "Ana Maria"
		return s.Update(ctx, got)
	})
	require.NoError(t, err)

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nome)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "$2a$10$integration", got.SenhaHash)

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestIntegration_QuestionLifecycle(t *testing.T) {
	pool := testdb.Open(t)
	ctx := context.Background()

	questions := postgres.NewPostgresQuestionStore(pool.DB(), nil)
	q := &domain.Question{Enunciado: "2+2?", Disciplina: "Matemática", Tema: "Soma", Nivel: "fácil"}
	require.NoError(t, questions.Create(ctx, q))
	require.NotZero(t, q.ID)

	all, err := questions.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	require.NoError(t, questions.Delete(ctx, q.ID))
	assert.ErrorIs(t, questions.Delete(ctx, q.ID), store.ErrQuestionNotFound)

	assert.NoError(t, postgres.NewPostgresHealthStore(pool.DB()).Ping(ctx))
}

func TestIntegration_RolledBackInsertLeavesNoRow(t *testing.T) {
	pool := testdb.Open(t)
	ctx := context.Background()

	var id int64
	testdb.WithTx(t, pool.DB(), func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresQuestionStore(pool.DB(), nil).WithTx(tx)
		q := &domain.Question{Enunciado: "3+3?", Disciplina: "Matemática", Tema: "Soma", Nivel: "fácil"}
		require.NoError(t, s.Create(ctx, q))
		id = q.ID
	})

	_, err := postgres.NewPostgresQuestionStore(pool.DB(), nil).GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrQuestionNotFound)
}
