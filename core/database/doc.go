// Package database handles read-only sqlite access and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) configured
// for databases the launcher reads but does not own, like GOG Galaxy's
// galaxy-2.0.db. Open always uses a read-only DSN.
//
// # Schema Inspection
//
// Galaxy's schema varies between client versions. TableExists and
// GetTableColumns let readers probe which tables and columns are present
// before committing to a query strategy.
//
// # Usage
//
//	db, err := database.Open(path)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	ok, err := database.TableExists(db, "InstalledBaseProducts")
package database
