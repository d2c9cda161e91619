// Package store provides the per-entity services used by the CLI: food
// items, categories, and recipes over an attached Icebox backend, plus
// flat-file stores for the shopping list and widget preferences.
//
// Every store keeps an in-memory snapshot of its collection. Mutations
// persist first and then re-fetch, so readers always observe either the
// pre- or post-mutation collection. A failed fetch preserves the previous
// snapshot and records a user-facing message in Portuguese; programmatic
// callers get the wrapped error.
package store
