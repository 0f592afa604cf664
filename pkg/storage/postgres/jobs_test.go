package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"

	"leadscore/internal/leads"
	"leadscore/pkg/domain"
	"leadscore/pkg/storage/postgres"
)

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()

	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func scoreJobArgs() leads.JobArgs {
	return leads.JobArgs{
		BatchID: domain.BatchID(uuid.New()),
		UserID:  domain.UserID(uuid.New()),
	}
}

func TestPgSQL_AddJob_InsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	// a transactional handle must route the insert through InsertTx so the
	// job only lands with the commit
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	args := scoreJobArgs()
	inserted, err := txStorage.AddJob(ctx, args, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&args,
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	args := scoreJobArgs()
	inserted, err := pg.AddJob(ctx, args, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, inserted)

	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&args,
		nil,
	)
}
