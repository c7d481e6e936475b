package entity

// CustomerStatus is the lifecycle state of a customer.
type CustomerStatus string

const (
	CustomerStatusAcquisition CustomerStatus = "ACQUISITION"
	CustomerStatusActive      CustomerStatus = "ACTIVE"
	CustomerStatusNonActive   CustomerStatus = "NONACTIVE"
)

// IsValid checks if the status is a known value.
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusAcquisition, CustomerStatusActive, CustomerStatusNonActive:
		return true
	default:
		return false
	}
}

// Customer is an invoiced party.
type Customer struct {
	Base
	Name       string
	Identifier *string // Short name used in order and invoice numbers.
	Status     CustomerStatus
}
