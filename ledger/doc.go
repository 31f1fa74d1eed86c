// Package ledger implements an append-only, hash-chained hand history for
// the casino tables.
//
// # Core Components
//
// Blockchain: An in-memory log of finished hands with SHA-256 hash chaining
// for tamper detection.
//
// Block: A single hand record with its index, timestamp and the hash of the
// block before it.
//
// Store: Persistence for a table's chain. MemoryStore keeps it in process,
// RedisStore in a Redis list.
//
// # Usage
//
// Open a chain from a Store, Append a Record for every showdown and Save the
// returned block. Verify can be called at any time to check that the chain
// is intact.
package ledger
