package types

import "strings"

// Address is the shipping address captured during checkout and snapshotted
// onto a placed order.
type Address struct {
	Line    string `json:"line"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// IsZero reports whether no field has been filled in.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Line) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.Pincode) == ""
}
