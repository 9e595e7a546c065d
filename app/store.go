package app

import (
	"expense-tracker/config"
	"expense-tracker/db"
	"expense-tracker/logger"
	"expense-tracker/repository"
	"fmt"
)

// openStore builds the transaction repository selected by the configuration.
// The returned close function releases the underlying connection.
func openStore(cfg *config.Config) (repository.ITransactionRepository, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		if err := db.RunMigrations(db.DialectPostgres, cfg.Database.DSN()); err != nil {
			return nil, nil, fmt.Errorf("postgres migrations: %w", err)
		}
		conn, err := db.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewTransactionRepository(conn), conn.Close, nil

	case config.BackendSQLite:
		conn, err := db.ConnectSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(db.DialectSQLite, cfg.SQLite.Path); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("sqlite migrations: %w", err)
		}
		return repository.NewSQLiteTransactionRepository(conn), conn.Close, nil

	case config.BackendMemory:
		logger.Log.Warn("Using the in-memory store; transactions are lost on restart")
		return repository.NewMemoryTransactionRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

