// Package models defines the core domain types for the water tracker:
//
//   - User: a participant, keyed by the chat platform's stable ID
//   - Record: one logged intake event (append-only, immutable)
//   - LeaderboardEntry: one row of a points aggregate
//
// Design principles:
//
//  1. Plain structs, no storage or platform dependencies
//  2. One stable identifier (platform ID) for every relationship; display
//     names are denormalized attributes, never keys
//  3. Derived values (points) are fixed at creation, not recomputed
package models
