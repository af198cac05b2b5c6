package entities

// ID represents a record identifier assigned by the remote API.
// The gateway normalizes both of the API's identifier conventions
// ("id" and "_id", string or numeric) into this one type on ingest.
type ID string

// Quantity represents an integer count of discrete stock units
type Quantity int64
