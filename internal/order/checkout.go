package order

import (
	"errors"
	"strings"

	"costela-bot/internal/mask"
)

// SkipValue is typed by the customer to leave an optional field blank.
const SkipValue = "-"

var ErrFieldRequired = errors.New("field is required")

type CheckoutState string

const (
	CheckoutClosed CheckoutState = "closed"
	CheckoutOpen   CheckoutState = "open"
)

// Checkout is the customer form. Section is the fulfillment mode captured when
// the form was opened and does not follow later mode changes.
type Checkout struct {
	State           CheckoutState   `json:"state,omitempty"`
	Section         FulfillmentMode `json:"section,omitempty"`
	Customer        CustomerInfo    `json:"customer"`
	Focus           Field           `json:"focus,omitempty"`
	Reached         int             `json:"reached,omitempty"`
	AddressRevealed bool            `json:"address_revealed,omitempty"`

	// LookupSeq only grows; PendingLookup is the token of the lookup whose
	// answer is still wanted, zero when none.
	LookupSeq     uint64 `json:"lookup_seq,omitempty"`
	PendingLookup uint64 `json:"pending_lookup,omitempty"`
}

// AddressFill is what a postal code lookup contributes to the form.
type AddressFill struct {
	Resolved     bool
	Street       string
	Neighborhood string
	City         string
	State        string
}

func (c *Checkout) IsOpen() bool {
	return c.State == CheckoutOpen
}

func (c *Checkout) open(section FulfillmentMode) {
	seq := c.LookupSeq
	*c = Checkout{
		State:     CheckoutOpen,
		Section:   section,
		LookupSeq: seq,
	}
	c.focusOn(FormFields(section)[0])
}

// reset closes the form and forgets everything typed so far.
func (c *Checkout) reset() {
	seq := c.LookupSeq
	*c = Checkout{State: CheckoutClosed, LookupSeq: seq}
}

// Fill stores value in the focused field and moves the cursor to the next
// blank field. Phone and postal code values are masked on the way in.
func (c *Checkout) Fill(value string) (Field, error) {
	if !c.IsOpen() || c.Focus == FieldReview || c.Focus == "" {
		return c.Focus, ErrCheckoutClosed
	}

	field := c.Focus
	value = strings.TrimSpace(value)
	if value == SkipValue {
		value = ""
	}
	if value == "" && !field.Optional() {
		return field, ErrFieldRequired
	}

	switch field {
	case FieldPhone:
		value = mask.Phone(value)
	case FieldPostalCode:
		value = mask.PostalCode(value)
		c.AddressRevealed = true
		c.PendingLookup = 0
	case FieldState:
		value = strings.ToUpper(value)
	}
	c.Customer.Set(field, value)

	c.advance()
	return c.Focus, nil
}

// Jump places the cursor on f. Used to re-ask a field, e.g. after a rejected submit.
func (c *Checkout) Jump(f Field) {
	c.focusOn(f)
	for _, af := range addressFields {
		if af == f {
			c.AddressRevealed = true
		}
	}
}

// FocusFirstMissing points the cursor at the first blank required field and
// reports whether one was found.
func (c *Checkout) FocusFirstMissing() bool {
	missing := c.Customer.Missing(c.Section)
	if len(missing) == 0 {
		return false
	}
	c.Jump(missing[0])
	return true
}

// BeginLookup registers a new postal code lookup. Answers to earlier lookups
// are ignored from now on, and the fields a lookup fills are cleared so a
// failed retry leaves them blank.
func (c *Checkout) BeginLookup(postalCode string) uint64 {
	c.LookupSeq++
	c.PendingLookup = c.LookupSeq
	c.Customer.PostalCode = mask.PostalCode(postalCode)
	c.Customer.Street = ""
	c.Customer.Neighborhood = ""
	c.Customer.City = ""
	c.Customer.State = ""
	return c.PendingLookup
}

// ApplyLookup merges the result of lookup token into the form. Stale tokens,
// or a form closed meanwhile, leave the checkout untouched and return false.
// Whatever the outcome, the address fields are revealed for manual entry.
func (c *Checkout) ApplyLookup(token uint64, fill AddressFill) bool {
	if !c.IsOpen() || token == 0 || token != c.PendingLookup {
		return false
	}
	c.PendingLookup = 0
	c.AddressRevealed = true

	if fill.Resolved {
		c.Customer.Street = fill.Street
		c.Customer.Neighborhood = fill.Neighborhood
		c.Customer.City = fill.City
		c.Customer.State = fill.State
		c.focusOn(FieldNumber)
		return true
	}

	c.focusOn(FieldStreet)
	return true
}

// advance moves to the next blank field. Optional fields are offered once,
// on the first pass; required ones are asked until filled.
func (c *Checkout) advance() {
	fields := FormFields(c.Section)
	start := indexOf(fields, c.Focus)

	for i := start + 1; i < len(fields); i++ {
		f := fields[i]
		if !blank(c.Customer.Get(f)) {
			continue
		}
		if f.Optional() && i <= c.Reached {
			continue
		}
		c.focusOn(f)
		return
	}

	if missing := c.Customer.Missing(c.Section); len(missing) > 0 {
		c.focusOn(missing[0])
		return
	}
	c.focusOn(FieldReview)
}

func (c *Checkout) focusOn(f Field) {
	c.Focus = f
	fields := FormFields(c.Section)
	i := indexOf(fields, f)
	if f == FieldReview {
		i = len(fields)
	}
	if i > c.Reached {
		c.Reached = i
	}
}

func indexOf(fields []Field, f Field) int {
	for i, candidate := range fields {
		if candidate == f {
			return i
		}
	}
	return -1
}
