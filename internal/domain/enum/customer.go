package enum

// CustomerType classifies the kind of customer
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeBusiness   CustomerType = "business"
	CustomerTypeGovernment CustomerType = "government"
	CustomerTypeNonprofit  CustomerType = "nonprofit"
)

func (t CustomerType) String() string {
	return string(t)
}

// Valid reports whether the type is one of the known customer types
func (t CustomerType) Valid() bool {
	switch t {
	case CustomerTypeIndividual, CustomerTypeBusiness, CustomerTypeGovernment, CustomerTypeNonprofit:
		return true
	}
	return false
}

// CustomerStatus represents the relationship status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusPending  CustomerStatus = "pending"
	CustomerStatusBlocked  CustomerStatus = "blocked"
)

func (s CustomerStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known customer statuses
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusPending, CustomerStatusBlocked:
		return true
	}
	return false
}

// InteractionType classifies a logged customer interaction
type InteractionType string

const (
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypePhone   InteractionType = "phone"
	InteractionTypeMeeting InteractionType = "meeting"
	InteractionTypeNote    InteractionType = "note"
	InteractionTypeOther   InteractionType = "other"
)

func (t InteractionType) String() string {
	return string(t)
}

// Valid reports whether the type is one of the known interaction types
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionTypeEmail, InteractionTypePhone, InteractionTypeMeeting, InteractionTypeNote, InteractionTypeOther:
		return true
	}
	return false
}
