package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/utils"
	"time"
)

// Permission - Permission level of the user an entry belongs to. The table stores it but never
// interprets it.
type Permission uint8

// Entry - One record in the table
//   - Key is the text key the entry is stored and looked up under
//   - Payload is an opaque byte string, e.g. a credential, stored verbatim
//   - SessionID is a numeric identifier set by the caller
//   - LastActivity is the time of the latest activity, set at creation and by Touch
//   - Permissions is the permission level of the user
type Entry struct {
	Key          string
	Payload      []byte
	SessionID    uint32
	LastActivity time.Time
	Permissions  Permission
}

// NewEntry - Returns a pointer to a new Entry ready to be inserted into a Table.
//   - key is the key to store the entry under, it can not be empty
//   - payload is copied into storage owned by the entry, nil or empty is allowed
//   - permissions is the permission level to record with the entry
//
// It returns:
//   - entry is a pointer to the new Entry
//   - err is of type InvalidArgument if key is empty
func NewEntry(key string, payload []byte, permissions Permission) (entry *Entry, err error) {
	if key == "" {
		err = InvalidArgument{msg: "key can not be empty"}
		return
	}

	entry = &Entry{
		Key:          key,
		Payload:      utils.CopyBytes(payload),
		LastActivity: time.Now(),
		Permissions:  permissions,
	}

	return
}

// clone - Returns a copy of the entry that shares no storage with it
func (E Entry) clone() Entry {
	E.Payload = utils.CopyBytes(E.Payload)
	return E
}
