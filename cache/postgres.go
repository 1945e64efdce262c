package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// OpenPostgres connects to Postgres and verifies the connection.
func OpenPostgres(uri string, maxOpenConns, maxIdleConns, connMaxLifetimeMin int) (*sql.DB, error) {
	db, err := sql.Open("postgres", uri)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMin) * time.Minute)

	log.Println("[DB] Connected successfully")
	return db, nil
}

// PostgresStore keeps one row per (hash, player) in a positions table.
type PostgresStore struct {
	db    *sql.DB
	table string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = "positions"
	}
	return &PostgresStore{db: db, table: table}
}

// Migrate creates the positions table if it does not exist. hash is a
// BIGINT: computed hashes stay within 63 bits so they always fit.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		hash   BIGINT   NOT NULL,
		player SMALLINT NOT NULL,
		depth  INTEGER  NOT NULL,
		moves  JSONB    NOT NULL,
		PRIMARY KEY (hash, player)
	);
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate %s table: %v", s.table, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, hash int64, player int) (*Record, error) {
	query := fmt.Sprintf(`
	SELECT depth, moves
	FROM %s
	WHERE hash = $1 AND player = $2;
	`, s.table)

	rec := Record{Hash: hash, Player: player}
	var movesJSON []byte
	err := s.db.QueryRowContext(ctx, query, hash, player).Scan(&rec.Depth, &movesJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %v", err)
	}

	if err := json.Unmarshal(movesJSON, &rec.Moves); err != nil {
		return nil, fmt.Errorf("failed to decode position moves: %v", err)
	}
	return &rec, nil
}

func (s *PostgresStore) Put(ctx context.Context, rec Record) error {
	movesJSON, err := json.Marshal(rec.Moves)
	if err != nil {
		return fmt.Errorf("failed to encode position moves: %v", err)
	}

	query := fmt.Sprintf(`
	INSERT INTO %s (hash, player, depth, moves)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (hash, player)
	DO UPDATE SET depth = EXCLUDED.depth, moves = EXCLUDED.moves;
	`, s.table)

	if _, err := s.db.ExecContext(ctx, query, rec.Hash, rec.Player, rec.Depth, movesJSON); err != nil {
		return fmt.Errorf("failed to store position: %v", err)
	}
	return nil
}
