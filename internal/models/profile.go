package models

import "strings"

// ProfileUpdate is a partial profile edit as submitted by the client.
// Blank fields mean "leave unchanged".
type ProfileUpdate struct {
	Age         string
	Address     string
	PhoneNumber string
	State       string
	Country     string
}

// IsBlank reports whether no field carries a value.
func (p ProfileUpdate) IsBlank() bool {
	for _, v := range []string{p.Age, p.Address, p.PhoneNumber, p.State, p.Country} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
