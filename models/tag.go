package models

import (
	"encoding/json"
	"fmt"
)

// MutationTag marks the pending local write-intent of a record.
// A tag is set exclusively by local write operations and cleared
// exclusively by a successful server acknowledgment during sync.
type MutationTag int

const (
	// TagNone means the record is fully synchronized with the server.
	TagNone MutationTag = iota

	// TagCreate marks a record created locally that does not yet exist
	// on the server.
	TagCreate

	// TagUpdate marks a server-known record modified locally.
	TagUpdate

	// TagDelete marks a record deleted locally; the row is kept until
	// the server acknowledges the deletion.
	TagDelete

	// TagStart marks an activity initiated in the field but not yet
	// acknowledged by the server. Distinct from an ordinary update.
	TagStart
)

// Wire codes are the short string form used both in local storage rows
// and in backup envelopes.
var tagCodes = map[MutationTag]string{
	TagNone:   "",
	TagCreate: "C",
	TagUpdate: "U",
	TagDelete: "D",
	TagStart:  "S",
}

var tagFromCode = map[string]MutationTag{
	"": TagNone, "C": TagCreate, "U": TagUpdate, "D": TagDelete, "S": TagStart,
}

// Pending reports whether the record still awaits a server acknowledgment.
func (t MutationTag) Pending() bool {
	return t != TagNone
}

func (t MutationTag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagCreate:
		return "create"
	case TagUpdate:
		return "update"
	case TagDelete:
		return "delete"
	case TagStart:
		return "start"
	default:
		return fmt.Sprintf("MutationTag(%d)", int(t))
	}
}

// MarshalJSON encodes the tag as its short wire code.
// An out-of-range tag is an error rather than a silent empty code.
func (t MutationTag) MarshalJSON() ([]byte, error) {
	code, ok := tagCodes[t]
	if !ok {
		return nil, fmt.Errorf("unknown mutation tag %d", int(t))
	}
	return json.Marshal(code)
}

// UnmarshalJSON decodes a short wire code into a tag. The set of codes is
// closed: anything outside it is an error, never a silent no-op.
func (t *MutationTag) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return fmt.Errorf("decode mutation tag: %w", err)
	}

	tag, ok := tagFromCode[code]
	if !ok {
		return fmt.Errorf("unknown mutation tag code %q", code)
	}

	*t = tag
	return nil
}
