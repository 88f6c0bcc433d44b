package entity

// AddressType classifies a shipping address.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Valid reports whether the type is one of the known values.
func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	}

	return false
}

// Address is a shipping address owned by the backend; the storefront only
// lists them and picks one during checkout.
type Address struct {
	ID         string      `json:"id"`
	FullName   string      `json:"fullName"`
	Phone      string      `json:"phone"`
	Street     string      `json:"street"`
	Apartment  string      `json:"apartment,omitempty"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	PostalCode string      `json:"postalCode"`
	Country    string      `json:"country"`
	Type       AddressType `json:"type"`
	IsDefault  bool        `json:"isDefault"`
}

// DefaultAddressIndex returns the index of the first default address, or 0
// when none is marked default, or -1 for an empty list. At most one default
// is expected but not enforced here; the backend owns that invariant.
func DefaultAddressIndex(addresses []Address) int {
	if len(addresses) == 0 {
		return -1
	}
	for i, a := range addresses {
		if a.IsDefault {
			return i
		}
	}

	return 0
}
