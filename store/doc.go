// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the durable record of verified submissions and the read
views derived from it.

# Write Path

All writers go through RecordIfNew / RecordBatch. The insert is a single
atomic ON CONFLICT DO NOTHING keyed by the judge's submission id - never a
read-then-write - so verification calls for the same handle can race
freely: whichever insert lands first wins and every caller observes the
same final state.

	inserted, rec, err := store.RecordIfNew(db, rec)

Records are append-only; nothing in normal operation updates or deletes
them.

# Read Views

  - Resolve: earliest accepted submission for a (problem, handle) pair
  - SolvedBy: per problem, each handle's earliest accepted solve
  - Rank / RankSince: standings by distinct problems solved, ties broken
    by earliest overall solve then handle, sequential 1-based ranks
  - ByHandle: a handle's full record history

Views are computed on read from simple scans; there is no second write
path to keep consistent.
*/
package store
