// Package kv provides the local key/value store behind the persistence
// adapter.
//
// # Overview
//
// The package defines a Repository interface (Get/Set/Delete/Clear plus a
// read-modify-write Update) and three implementations:
//
//   - SQLiteRepository: a metadata(key, value) table over dbx.DBTX, so it
//     works with both *sql.DB and *sql.Tx. Update runs inside a transaction
//     when the repository owns a *sql.DB.
//   - MemoryRepository: a mutex-guarded map; values are copied in and out.
//   - RedisRepository: a go-redis client with a key prefix; Update uses
//     WATCH/MULTI with a bounded number of retries.
//
// Absent keys are reported as (nil, nil), never as an error. Values are opaque
// bytes; encoding is the caller's business.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "foorum_auth_user", b)
//	v, _ := repo.Get(ctx, "foorum_auth_user")
package kv
