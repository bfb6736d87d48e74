// cmd/tools/pool-seeder/main.go
//
// pool-seeder validates a candidate pool catalog and loads it into the
// candidate_pool table. Run with "validate" to only check a catalog file, or
// "seed" to validate and write it to Postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"

	"matchmaking-engine/internal/common/config"
	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/pkg/pool"
)

const createTableStmt = `
	CREATE TABLE IF NOT EXISTS candidate_pool (
		position               SERIAL,
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		project_type           TEXT NOT NULL,
		match_score            INT NOT NULL,
		current_members        INT NOT NULL,
		target_members         INT NOT NULL,
		needed_roles           TEXT[] NOT NULL,
		reason                 TEXT NOT NULL,
		eta                    TEXT NOT NULL,
		breakdown_skills       INT NOT NULL,
		breakdown_availability INT NOT NULL,
		breakdown_style        INT NOT NULL
	)`

const insertEntryStmt = `
	INSERT INTO candidate_pool (
		id, name, project_type, match_score,
		current_members, target_members, needed_roles,
		reason, eta,
		breakdown_skills, breakdown_availability, breakdown_style
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validatePath := validateCmd.String("path", "configs/candidate-pool.json", "Path to catalog file")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedPath := seedCmd.String("path", "configs/candidate-pool.json", "Path to catalog file")
	truncate := seedCmd.Bool("truncate", false, "Drop existing rows before seeding")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		cat, err := pool.Load(*validatePath)
		if err != nil {
			fmt.Printf("Error: catalog invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog OK: version %s, %d entries\n", cat.Version, len(cat.Entries))

	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := seed(*seedPath, *truncate); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

	default:
		help()
		os.Exit(1)
	}
}

func seed(path string, truncate bool) error {
	cat, err := pool.Load(path)
	if err != nil {
		return fmt.Errorf("catalog invalid: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	if _, err := pg.Exec(ctx, createTableStmt); err != nil {
		return fmt.Errorf("create table failed: %w", err)
	}

	if truncate {
		if _, err := pg.Exec(ctx, "TRUNCATE candidate_pool"); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	for _, e := range cat.Entries {
		_, err := pg.Exec(ctx, insertEntryStmt,
			e.ID, e.Name, e.ProjectType, e.MatchScore,
			e.CurrentMembers, e.TargetMembers, pq.Array(e.NeededRoles),
			e.Reason, e.ETA,
			e.Breakdown.Skills, e.Breakdown.Availability, e.Breakdown.Style,
		)
		if err != nil {
			return fmt.Errorf("insert entry %s failed: %w", e.ID, err)
		}
	}

	fmt.Printf("Seeded %d entries from %s\n", len(cat.Entries), path)
	return nil
}

func help() {
	fmt.Println("Usage: pool-seeder <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  validate -path <file>              Validate a catalog file")
	fmt.Println("  seed -path <file> [-truncate]      Validate and load into Postgres")
}
