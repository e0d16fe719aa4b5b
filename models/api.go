package models

// CreateResponse is the minimal acknowledgment returned by every
// create/start endpoint: the server-assigned identifier of the record.
type CreateResponse struct {
	ID string `json:"id"`
}

// CertificateRequest triggers emission of the treatment certificate for an
// acknowledged transaction. Best-effort: a failed emission never fails the
// sync pass that requested it.
type CertificateRequest struct {
	TransactionID string `json:"transaction_id"`
}
