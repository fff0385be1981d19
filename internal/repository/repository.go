// Package repository is the persistence layer: one interface per entity
// with a MongoDB implementation behind it. Services and handlers depend on
// the interfaces so tests can substitute in-memory fakes.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound is returned when a lookup resolves no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

// feedSort is the ordering shared by every post listing: newest first,
// _id as the tiebreaker for posts published in the same instant.
var feedSort = bson.D{{Key: "pub_date", Value: -1}, {Key: "_id", Value: -1}}
