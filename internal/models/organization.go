package models

// Organization is a client of the order book. ContactPerson is the only field
// that changes after load.
type Organization struct {
	Code          int    `json:"code"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
}

// GetID returns the organization code
func (o Organization) GetID() int {
	return o.Code
}

// WithContact returns a copy of the organization with the contact replaced
func (o Organization) WithContact(contact string) Organization {
	o.ContactPerson = contact
	return o
}
