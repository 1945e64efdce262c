// Command exportcache dumps the positions table to a Parquet file for
// offline analysis of what the AI has learned: depth distribution, score
// spreads per position, coverage by game phase.
//
// Usage:
//
//	exportcache -db postgres://... -table positions -out positions.parquet
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type PositionRow struct {
	Hash      int64  `parquet:"name=hash, type=INT64"`
	Player    int32  `parquet:"name=player, type=INT32"`
	Depth     int32  `parquet:"name=depth, type=INT32"`
	MovesJSON string `parquet:"name=moves_json, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func main() {
	dbURI := flag.String("db", os.Getenv("DB_URI"), "postgres connection string")
	table := flag.String("table", "positions", "positions table name")
	out := flag.String("out", "positions.parquet", "output parquet file")
	flag.Parse()

	if *dbURI == "" {
		log.Fatal("no database configured: pass -db or set DB_URI")
	}

	db, err := sql.Open("postgres", *dbURI)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	count, err := export(db, *table, *out)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("exported %d positions to %s", count, *out)
}

func export(db *sql.DB, table, path string) (int, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT hash, player, depth, moves FROM %s ORDER BY hash, player;", table))
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %v", table, err)
	}
	defer rows.Close()

	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(PositionRow), 1)
	if err != nil {
		return 0, err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	count := 0
	for rows.Next() {
		var row PositionRow
		var moves []byte
		if err := rows.Scan(&row.Hash, &row.Player, &row.Depth, &moves); err != nil {
			return count, fmt.Errorf("failed to scan row: %v", err)
		}
		row.MovesJSON = string(moves)

		if err := parquetWriter.Write(row); err != nil {
			return count, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, err
	}

	if err := parquetWriter.WriteStop(); err != nil {
		return count, err
	}
	return count, fileWriter.Close()
}
