// Package ent holds the schema definitions for the generated client.
// Run `go generate ./ent` after changing any schema; the generated code
// is not committed.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
