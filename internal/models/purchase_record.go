package models

import "time"

// PurchaseRecord is one order line. ItemCode and OrgCode are references that
// may dangle; nothing checks them at load time.
type PurchaseRecord struct {
	RecordID       int       `json:"record_id"`
	ItemCode       int       `json:"item_code"`
	OrgCode        int       `json:"org_code"`
	SequenceNumber int       `json:"sequence_number"`
	Quantity       int       `json:"quantity"`
	OrderedOn      time.Time `json:"ordered_on"`
}

// GetID returns the record id
func (r PurchaseRecord) GetID() int {
	return r.RecordID
}
