package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"dbvaultapi/models"
	"dbvaultapi/pkg/logger"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// ColumnInfo describes a single column of an introspected table.
type ColumnInfo struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Nullable bool    `json:"nullable"`
	Default  *string `json:"default"`
}

// TableInfo describes a single introspected table.
type TableInfo struct {
	TableName string       `json:"table_name"`
	Columns   []ColumnInfo `json:"columns"`
}

// DatabaseSchema is the normalized introspection result for one database.
type DatabaseSchema struct {
	DatabaseName string      `json:"database_name"`
	Tables       []TableInfo `json:"tables"`
}

// GetSchema opens a short-lived connection with the stored credentials and
// enumerates all tables with their columns. The connection is closed before
// returning; nothing is pooled across requests and no retry is attempted.
func GetSchema(ctx context.Context, cred *models.DBCredential) (*DatabaseSchema, error) {
	db, err := open(cred)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database %s at %s:%d: %w",
			cred.DatabaseEngine, cred.DatabaseName, cred.Host, cred.Port, err)
	}

	tableNames, err := listTables(ctx, db, cred)
	if err != nil {
		return nil, err
	}

	schema := &DatabaseSchema{
		DatabaseName: cred.DatabaseName,
		Tables:       []TableInfo{},
	}
	for _, name := range tableNames {
		columns, err := listColumns(ctx, db, cred, name)
		if err != nil {
			return nil, err
		}
		schema.Tables = append(schema.Tables, TableInfo{TableName: name, Columns: columns})
	}

	logger.Debugf("Introspected %d tables from %s database %s",
		len(schema.Tables), cred.DatabaseEngine, cred.DatabaseName)
	return schema, nil
}

// FindTable runs the same enumeration filtered to one table name.
// Returns (nil, nil) when the table is absent.
func FindTable(ctx context.Context, cred *models.DBCredential, tableName string) (*TableInfo, error) {
	db, err := open(cred)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database %s at %s:%d: %w",
			cred.DatabaseEngine, cred.DatabaseName, cred.Host, cred.Port, err)
	}

	tableNames, err := listTables(ctx, db, cred)
	if err != nil {
		return nil, err
	}

	for _, name := range tableNames {
		if name != tableName {
			continue
		}
		columns, err := listColumns(ctx, db, cred, name)
		if err != nil {
			return nil, err
		}
		return &TableInfo{TableName: name, Columns: columns}, nil
	}
	return nil, nil
}

// open builds a database/sql handle for the credential's engine. The handle is
// lazy; callers ping it to surface connection failures immediately.
func open(cred *models.DBCredential) (*sql.DB, error) {
	switch cred.DatabaseEngine {
	case "mysql":
		cfg := mysql.NewConfig()
		cfg.User = cred.DBUser
		cfg.Passwd = cred.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", cred.Host, cred.Port)
		cfg.DBName = cred.DatabaseName
		return sql.Open("mysql", cfg.FormatDSN())
	case "postgres", "postgresql":
		dsn := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cred.DBUser, cred.Password),
			Host:   fmt.Sprintf("%s:%d", cred.Host, cred.Port),
			Path:   "/" + cred.DatabaseName,
		}
		return sql.Open("pgx", dsn.String())
	case "sqlite", "sqlite3":
		// For SQLite the database name is the file path; host and port are unused.
		return sql.Open("sqlite3", cred.DatabaseName)
	default:
		return nil, fmt.Errorf("unsupported database engine: %s", cred.DatabaseEngine)
	}
}

func listTables(ctx context.Context, db *sql.DB, cred *models.DBCredential) ([]string, error) {
	var rows *sql.Rows
	var err error

	switch cred.DatabaseEngine {
	case "mysql":
		rows, err = db.QueryContext(ctx,
			`SELECT table_name FROM information_schema.tables
			 WHERE table_schema = ? AND table_type = 'BASE TABLE'
			 ORDER BY table_name`, cred.DatabaseName)
	case "postgres", "postgresql":
		rows, err = db.QueryContext(ctx,
			`SELECT table_name FROM information_schema.tables
			 WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
			 ORDER BY table_name`)
	case "sqlite", "sqlite3":
		rows, err = db.QueryContext(ctx,
			`SELECT name FROM sqlite_master
			 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
			 ORDER BY name`)
	default:
		return nil, fmt.Errorf("unsupported database engine: %s", cred.DatabaseEngine)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func listColumns(ctx context.Context, db *sql.DB, cred *models.DBCredential, tableName string) ([]ColumnInfo, error) {
	if cred.DatabaseEngine == "sqlite" || cred.DatabaseEngine == "sqlite3" {
		return listColumnsSQLite(ctx, db, tableName)
	}

	var rows *sql.Rows
	var err error

	switch cred.DatabaseEngine {
	case "mysql":
		rows, err = db.QueryContext(ctx,
			`SELECT column_name, column_type, is_nullable, column_default
			 FROM information_schema.columns
			 WHERE table_schema = ? AND table_name = ?
			 ORDER BY ordinal_position`, cred.DatabaseName, tableName)
	case "postgres", "postgresql":
		rows, err = db.QueryContext(ctx,
			`SELECT column_name, data_type, is_nullable, column_default
			 FROM information_schema.columns
			 WHERE table_schema = 'public' AND table_name = $1
			 ORDER BY ordinal_position`, tableName)
	default:
		return nil, fmt.Errorf("unsupported database engine: %s", cred.DatabaseEngine)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns := []ColumnInfo{}
	for rows.Next() {
		var name, colType, nullable string
		var colDefault sql.NullString
		if err := rows.Scan(&name, &colType, &nullable, &colDefault); err != nil {
			return nil, fmt.Errorf("failed to scan column of table %s: %w", tableName, err)
		}
		col := ColumnInfo{
			Name:     name,
			Type:     colType,
			Nullable: nullable == "YES",
		}
		if colDefault.Valid {
			col.Default = &colDefault.String
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func listColumnsSQLite(ctx context.Context, db *sql.DB, tableName string) ([]ColumnInfo, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of table %s: %w", tableName, err)
	}
	defer rows.Close()

	columns := []ColumnInfo{}
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var colDefault sql.NullString
		if err := rows.Scan(&cid, &name, &colType, &notNull, &colDefault, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of table %s: %w", tableName, err)
		}
		col := ColumnInfo{
			Name:     name,
			Type:     colType,
			Nullable: notNull == 0,
		}
		if colDefault.Valid {
			col.Default = &colDefault.String
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
