// Package storage provides the key-value substrate behind the durable
// collection store.
//
// # Overview
//
// Every console collection (applicants, openings, notifications, ...) is
// serialized as one JSON document and stored under its own key. The
// Repository interface is the minimal contract the durable adapter needs;
// two implementations exist:
//
//   - SQLiteRepository: rows in the "collections" table, over dbx.DBTX
//   - MemoryRepository: an in-process go-cache map for ephemeral sessions
//
// # Missing keys
//
// Get returns (nil, nil) for a key that was never written. Callers decide
// what the default is.
//
// Typical Usage
//
//	db, _ := storage.OpenSQLite(ctx, path)
//	repo := storage.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "company_applicants", payload)
//	raw, _ := repo.Get(ctx, "company_applicants")
package storage
