package order

import "strings"

// Field names one input of the checkout form.
type Field string

const (
	FieldName         Field = "name"
	FieldPhone        Field = "phone"
	FieldPostalCode   Field = "postal_code"
	FieldStreet       Field = "street"
	FieldNumber       Field = "number"
	FieldComplement   Field = "complement"
	FieldNeighborhood Field = "neighborhood"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldNotes        Field = "notes"
	// FieldReview is the cursor position once every field was asked.
	FieldReview Field = "review"
)

var (
	pickupFields   = []Field{FieldName, FieldPhone, FieldNotes}
	deliveryFields = []Field{
		FieldName, FieldPhone,
		FieldPostalCode, FieldStreet, FieldNumber, FieldComplement,
		FieldNeighborhood, FieldCity, FieldState,
		FieldNotes,
	}
	addressFields = []Field{FieldStreet, FieldNumber, FieldNeighborhood, FieldCity, FieldState}
)

// Optional fields may be left blank.
func (f Field) Optional() bool {
	switch f {
	case FieldPostalCode, FieldComplement, FieldNotes:
		return true
	}
	return false
}

// FormFields lists the fields asked for a checkout opened under mode, in order.
func FormFields(mode FulfillmentMode) []Field {
	if mode == Delivery {
		return deliveryFields
	}
	return pickupFields
}

type CustomerInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PostalCode   string `json:"postal_code,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (c *CustomerInfo) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldPostalCode:
		return c.PostalCode
	case FieldStreet:
		return c.Street
	case FieldNumber:
		return c.Number
	case FieldComplement:
		return c.Complement
	case FieldNeighborhood:
		return c.Neighborhood
	case FieldCity:
		return c.City
	case FieldState:
		return c.State
	case FieldNotes:
		return c.Notes
	}
	return ""
}

func (c *CustomerInfo) Set(f Field, value string) {
	switch f {
	case FieldName:
		c.Name = value
	case FieldPhone:
		c.Phone = value
	case FieldPostalCode:
		c.PostalCode = value
	case FieldStreet:
		c.Street = value
	case FieldNumber:
		c.Number = value
	case FieldComplement:
		c.Complement = value
	case FieldNeighborhood:
		c.Neighborhood = value
	case FieldCity:
		c.City = value
	case FieldState:
		c.State = value
	case FieldNotes:
		c.Notes = value
	}
}

// Missing returns the required fields left blank for mode, in form order.
func (c *CustomerInfo) Missing(mode FulfillmentMode) []Field {
	var missing []Field
	for _, f := range FormFields(mode) {
		if !f.Optional() && blank(c.Get(f)) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Validate checks contact data first and, for delivery, the address.
func (c *CustomerInfo) Validate(mode FulfillmentMode) error {
	if blank(c.Name) || blank(c.Phone) {
		return ErrMissingContact
	}
	if mode != Delivery {
		return nil
	}
	for _, f := range addressFields {
		if blank(c.Get(f)) {
			return ErrIncompleteAddress
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
