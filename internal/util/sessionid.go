package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewSessionID generates the server-side session identifier for a
// submission. ULIDs carry 80 bits of crypto-random entropy on top of a
// millisecond timestamp, so two submissions in the same millisecond still
// get distinct ids, which the durable record filenames rely on.
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
