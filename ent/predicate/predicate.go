// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Content is the predicate function for content builders.
type Content func(*sql.Selector)

// Parameter is the predicate function for parameter builders.
type Parameter func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)
