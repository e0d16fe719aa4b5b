package models

import "time"

// Reference (master) rows are downloaded from the server and replaced
// wholesale on every sync pass. They have no local mutation path, so
// last-write-wins from the server is correct by construction.

// Material is a waste material reference row.
type Material struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Code is the European Waste Catalogue code of the material.
	Code      string `json:"code,omitempty"`
	Dangerous bool   `json:"dangerous,omitempty"`
}

// Point is a collection or treatment point reference row.
type Point struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// ThirdParty is a producer, carrier or manager counterpart reference row.
// Unlike the other reference collections it can be registered in the field
// (a producer met on site), so it carries a mutation tag of its own. The
// upload of pending third parties is best-effort: a failure skips the row
// and never aborts the sync pass.
type ThirdParty struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Role  string `json:"role,omitempty"`

	Tag      MutationTag `json:"tag,omitempty"`
	TagSetAt *time.Time  `json:"tag_set_at,omitempty"`
}

// Treatment is a waste treatment operation reference row (R/D codes).
type Treatment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Vehicle is a transport vehicle reference row.
type Vehicle struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plate string `json:"plate,omitempty"`
}

// Packaging is a container/packaging type reference row.
type Packaging struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}
