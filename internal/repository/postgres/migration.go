package postgres

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// RunMigrations executes the schema.sql file to initialize the database
func RunMigrations(db *sqlx.DB) error {
	// the binary may be started from the repo root or from cmd/api
	possiblePaths := []string{
		"script/migration/schema.sql",
		"../script/migration/schema.sql",
		"../../script/migration/schema.sql",
	}

	schemaPath := ""
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			schemaPath = path
			break
		}
	}
	if schemaPath == "" {
		schemaPath = possiblePaths[0]
	}

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return fmt.Errorf("failed to read migration file %q (wd %s): %w", schemaPath, wd, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}
	return nil
}
