package models

import "time"

// SyncMeta is the synchronization metadata shared by every entity that
// participates in the local mutation queue.
//
// Invariant: Tag == TagNone implies TagSetAt == nil.
type SyncMeta struct {
	// ID is the record identifier. Assigned client-side (UUID) on local
	// creation and replaced by the server-assigned id once the create
	// call is acknowledged.
	ID string `json:"id"`

	// ParentID links the record to its owning entity: a transaction
	// references an activity, a task references a transaction (or is
	// empty for activity-level tasks).
	ParentID string `json:"parent_id,omitempty"`

	// Tag is the pending write-intent of the record.
	Tag MutationTag `json:"tag"`

	// TagSetAt records when the current tag was applied. Nil whenever
	// Tag is TagNone.
	TagSetAt *time.Time `json:"tag_set_at,omitempty"`
}

// Pending reports whether the record carries an unacknowledged mutation.
func (m SyncMeta) Pending() bool { return m.Tag.Pending() }

// Geolocation is a point capture attached to field operations. Acquisition
// is an external capability; a zero value means no fix was available.
type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero reports whether no location was captured.
func (g Geolocation) IsZero() bool { return g.Latitude == 0 && g.Longitude == 0 }

// Activity is a field collection/treatment activity. It is the root of the
// upload dependency chain: its transactions and their tasks may only be
// created on the server after the activity itself exists there.
type Activity struct {
	SyncMeta

	// Type distinguishes collection, storage, treatment and inventory
	// activities. Opaque to the sync engine.
	Type string `json:"type,omitempty"`

	// PointID references the collection point the activity happens at.
	PointID string `json:"point_id,omitempty"`

	// Status is the field-facing activity state (planned, started,
	// finished). Carried as a domain field; activity completion is not
	// encoded in the mutation tag.
	Status string `json:"status,omitempty"`

	StartedAt *time.Time  `json:"started_at,omitempty"`
	Location  Geolocation `json:"location,omitzero"`
}

// Transaction is a single waste movement inside an activity.
type Transaction struct {
	SyncMeta

	MaterialID   string  `json:"material_id,omitempty"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	VehicleID    string  `json:"vehicle_id,omitempty"`
	ThirdPartyID string  `json:"third_party_id,omitempty"`
	TreatmentID  string  `json:"treatment_id,omitempty"`
	PackagingID  string  `json:"packaging_id,omitempty"`

	Location Geolocation `json:"location,omitzero"`
}

// Task is a checklist item attached to a transaction, or to the activity
// itself when ParentID is empty.
type Task struct {
	SyncMeta

	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
}

// SyncRoot is the envelope holding the three transactional collections as
// one persisted unit. Reading and writing it whole keeps cross-entity
// relationships consistent: there is no torn state between collections.
type SyncRoot struct {
	Activities   []Activity    `json:"activities"`
	Transactions []Transaction `json:"transactions"`
	Tasks        []Task        `json:"tasks"`
}

// TransactionsOf returns the transactions belonging to the given activity.
func (r *SyncRoot) TransactionsOf(activityID string) []Transaction {
	var out []Transaction
	for _, tx := range r.Transactions {
		if tx.ParentID == activityID {
			out = append(out, tx)
		}
	}
	return out
}

// TasksOf returns the tasks belonging to the given transaction.
func (r *SyncRoot) TasksOf(transactionID string) []Task {
	var out []Task
	for _, task := range r.Tasks {
		if task.ParentID == transactionID {
			out = append(out, task)
		}
	}
	return out
}

// PendingCount counts entities across all three collections that still
// carry a mutation tag. Always derived from the root content, never stored.
func (r *SyncRoot) PendingCount() int {
	n := 0
	for _, a := range r.Activities {
		if a.Pending() {
			n++
		}
	}
	for _, tx := range r.Transactions {
		if tx.Pending() {
			n++
		}
	}
	for _, task := range r.Tasks {
		if task.Pending() {
			n++
		}
	}
	return n
}
