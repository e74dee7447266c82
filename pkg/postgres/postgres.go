package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const pingTimeout = 5 * time.Second

// PgDatabase инкапсулирует подключение к PostgreSQL и управление миграциями.
type PgDatabase struct {
	Pool *pgxpool.Pool
	Dsn  string
	cfg  *cfg.PGDBCfg
}

func NewPgDatabase(pool *pgxpool.Pool, cfg *cfg.PGDBCfg, dsn string) *PgDatabase {
	return &PgDatabase{Pool: pool, cfg: cfg, Dsn: dsn}
}

// DSN собирает строку подключения из конфигурации.
func DSN(cfg *cfg.PGDBCfg) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// Connect устанавливает соединение с PostgreSQL.
func Connect(ctx context.Context, cfg *cfg.PGDBCfg) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"
	dsn := DSN(cfg)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	db := NewPgDatabase(pool, cfg, dsn)
	if err := db.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap(op, err)
	}

	return db, nil
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции из migrations (корень: каталог с *.sql).
func (db *PgDatabase) RunMigrations(migrations fs.FS, dir string, logger logger.Logger) error {
	const (
		op                 = "PgDatabase.RunMigrations"
		driverName         = "pgx"
		sourceName         = "iofs"
		databaseDriverName = "postgres"
	)

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return e.Wrap(op, err)
	}

	sqlDb, err := sql.Open(driverName, db.Dsn)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer sqlDb.Close()

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithInstance(sourceName, src, databaseDriverName, driver)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Infof("migrations: no change")
			return nil
		}
		return e.Wrap(op, err)
	}

	logger.Infof("migrations applied successfully")
	return nil
}
