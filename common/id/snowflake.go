// Package id issues the identifiers this service mints itself: document-map
// file ids handed to the journey frontend and audit-record keys. Snowflake
// keeps them unique across replicas without a database round trip, and their
// time ordering makes audit rows sort by issue time for free.
package id

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init seeds the generator with the replica's node id. Each replica needs a
// distinct id or two instances can mint the same file id.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns a fresh id, used as the primary key of audit records.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns a fresh id in the decimal form the document map stores
// and the frontend echoes back in viewer URLs.
func NewString() string {
	return strconv.FormatInt(New(), 10)
}
