package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a sqlite table.
type ColumnInfo struct {
	Field string
	Type  string
}

// TableExists reports whether the named table is present. Galaxy schema
// versions differ in which tables exist, so readers probe before querying.
func TableExists(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		tableName,
	).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", tableName, err)
	}
	return count > 0, nil
}

// GetTableColumns retrieves the column definitions for a given table.
// Names and types come back lowercased.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	// SQLite uses PRAGMA table_info
	type sqliteColumn struct {
		Cid        int
		Name       string
		Type       string
		Notnull    int
		DefaultVal *string
		Pk         int
	}
	var sqliteCols []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&sqliteCols).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(sqliteCols))
	for _, col := range sqliteCols {
		columns = append(columns, ColumnInfo{
			Field: strings.ToLower(col.Name),
			Type:  strings.ToLower(col.Type),
		})
	}
	return columns, nil
}
