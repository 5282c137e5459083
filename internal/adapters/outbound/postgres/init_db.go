package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the pooled notes database, applies the embedded migrations and
// registers the *sql.DB. Credentials usually come from Vault.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger   `resolve:""`
	DBUser             string        `config:"DB_USER"`
	DBPass             string        `config:"DB_PASS"`
	DBHost             string        `config:"DB_HOST"`
	DBPort             string        `config:"DB_PORT" default:"5432"`
	DBName             string        `config:"DB_NAME"`
	ApplicationName    string        `config:"DB_APPLICATION_NAME" default:"chatgateway"`
	MaxConns           int           `config:"DB_MAX_CONNS" default:"10"`
	MaxConnIdleTime    time.Duration `config:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
}

// Initialize sets up the pool, instruments it and runs migrations.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("parse database config: %w", err)
	}

	cfg.ConnConfig.RuntimeParams["application_name"] = di.ApplicationName
	if di.MaxConns > 0 {
		cfg.MaxConns = int32(di.MaxConns)
	}
	if di.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = di.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("create pgx pool: %w", err)
	}

	dbAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbAttributes)
	if err != nil {
		return ctx, fmt.Errorf("register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.migrateUp(); err != nil {
			return ctx, fmt.Errorf("run migrations: %w", err)
		}
	}

	depend.Register(di.db)

	return ctx, nil
}

// dsn escapes the credentials, which may hold any character Vault allows.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (di *InitDB) migrateUp() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty", version)
	}

	di.Logger.Printf("InitDB: schema at version %d", version)
	return nil
}

func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
		}
	}
}

func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		commands, tables := summarizeQuery(logger, query)
		attrs := make([]attribute.KeyValue, 0, 2)
		if len(commands) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(
				strings.TrimSpace(strings.Join(commands, ",")+" "+strings.Join(tables, ",")),
			))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

// summarizeQuery returns the SQL commands and tables of query, e.g. SELECT and notes.
func summarizeQuery(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to summarize query: %v", err)
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
