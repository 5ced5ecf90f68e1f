package coordinator

import (
	"fmt"

	"github.com/gabapcia/txledger/internal/pkg/units"
	"github.com/gabapcia/txledger/internal/pkg/validator"
)

// DraftField names one editable field of a DraftForm.
type DraftField string

const (
	DraftReceiver DraftField = "receiver"
	DraftAmount   DraftField = "amount"
	DraftKeyword  DraftField = "keyword"
	DraftMessage  DraftField = "message"
)

// DraftForm holds the user's input for a transfer that has not been sent.
//
// Amount is expressed in display units (e.g. "0.5" ether), not base units.
type DraftForm struct {
	Receiver string `validate:"required,eth_addr"`
	Amount   string `validate:"required,positive_ether_amount"`
	Keyword  string
	Message  string
}

func init() {
	if err := validator.RegisterStringRule("positive_ether_amount", isPositiveEtherAmount); err != nil {
		panic(err)
	}
}

// isPositiveEtherAmount accepts decimal strings greater than zero with at
// most 18 fractional digits.
func isPositiveEtherAmount(s string) bool {
	amount, err := units.ParseAmount(s)
	return err == nil && amount.IsPositive()
}

// with returns a copy of the draft with field set to value.
func (d DraftForm) with(field DraftField, value string) (DraftForm, error) {
	switch field {
	case DraftReceiver:
		d.Receiver = value
	case DraftAmount:
		d.Amount = value
	case DraftKeyword:
		d.Keyword = value
	case DraftMessage:
		d.Message = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownDraftField, field)
	}

	return d, nil
}

func (d DraftForm) validate() error {
	if err := validator.Validate(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	return nil
}

// SetDraftField updates one field of the draft.
func (s *service) SetDraftField(field DraftField, value string) error {
	var err error
	s.update(func(st *State) {
		st.Draft, err = st.Draft.with(field, value)
	})

	return err
}

// ClearDraft resets every draft field.
func (s *service) ClearDraft() {
	s.update(func(st *State) {
		st.Draft = DraftForm{}
	})
}
