// Package store persists the reader's library in an embedded SQLite database.
//
// # Schema
//
// Three relations, created idempotently on open:
//
//	books             id (pk), title, author, file_path (unique), file_type,
//	                  cover_data, added_at, last_read_at, total_pages
//	annotations       id (pk), book_id (fk -> books, cascade, indexed),
//	                  annotation_type, start_percent, end_percent,
//	                  page_number, color, selected_text, note_text, created_at
//	reading_positions book_id (pk, fk -> books, cascade), percent,
//	                  page_number, updated_at
//
// Enumerations are persisted as their canonical lowercase tokens ("pdf",
// "epub", "highlight", "note") and colors as hex strings, so the store file
// stays inspectable. Timestamps are unix seconds.
//
// # Concurrency
//
// The store holds a single logical connection guarded by a mutex. Every
// operation acquires the lock, runs one statement (or one atomic conflict
// resolution), and releases it. Reads and writes are fully serialized;
// callers on multiple goroutines need no further coordination. Entities
// returned to callers are independent copies.
//
// # Errors
//
// Every storage failure is classified as a Database taxonomy error and
// returned; nothing is swallowed and nothing is retried. Single-entity
// lookups report absence as a nil result, never as an error.
package store
