package database

import (
	"database/sql/driver"
	"testing"
	"time"

	"tekfix_jobboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestSeedDemoData_SkipsFilledTables(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	require.NoError(t, SeedDemoData(db, time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDemoData_InsertsJobs(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// первой в списке должна оказаться вакансия "1", поэтому она получает наибольший seq
	var args []driver.Value
	for _, id := range []string{"3", "2", "1"} {
		args = append(args, id)
		for i := 0; i < 11; i++ {
			args = append(args, sqlmock.AnyArg())
		}
	}
	mock.ExpectQuery(`INSERT INTO "jobs" .* RETURNING "seq"`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1).AddRow(2).AddRow(3))
	mock.ExpectCommit()

	require.NoError(t, SeedDemoData(db, time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_RejectsMemoryDriver(t *testing.T) {
	cfg := config.Default()
	_, err := Open(cfg)
	assert.Error(t, err)
}
