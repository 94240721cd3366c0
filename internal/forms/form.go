package forms

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

//go:generate mockgen -source form.go -destination mock_form.go -package forms

// State is the conversion form's lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Submitter runs validated conversions and owns the shared result slot.
type Submitter interface {
	Submit(ctx context.Context, input validation.FormInput) (*models.ProcessedConversionResult, error)
	Retry(ctx context.Context) (*models.ProcessedConversionResult, error)
}

// Form orchestrates the conversion form: it holds the field values and
// validation errors, gates submission on validation, and drives the
// state machine idle -> validating -> submitting -> success/error.
type Form struct {
	store Submitter

	mu          sync.Mutex
	state       State
	input       validation.FormInput
	fieldErrors validation.FieldErrors
}

// New creates a form in the idle state bound to the given store.
func New(store Submitter) *Form {
	return &Form{
		store: store,
		state: StateIdle,
	}
}

// SetFields replaces the form's field values. Field errors are kept until
// the next submission re-validates.
func (f *Form) SetFields(input validation.FormInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = input
}

// SwapCurrencies exchanges the from and to currencies, leaving amount and
// date untouched. No re-validation happens until the next submit.
func (f *Form) SwapCurrencies() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input.FromCurrency, f.input.ToCurrency = f.input.ToCurrency, f.input.FromCurrency
}

// Submit validates the current fields and, when valid, runs the conversion
// through the store. Invalid fields populate the field errors and return
// the form to idle.
func (f *Form) Submit(ctx context.Context) (*models.ProcessedConversionResult, error) {
	f.mu.Lock()
	f.state = StateValidating
	input := f.input

	if _, ferrs := validation.Validate(input); ferrs != nil {
		f.fieldErrors = ferrs
		f.state = StateIdle
		f.mu.Unlock()
		return nil, ferrs
	}
	f.fieldErrors = nil
	f.state = StateSubmitting
	f.mu.Unlock()

	result, err := f.store.Submit(ctx, input)

	f.mu.Lock()
	if err != nil {
		f.state = StateError
	} else {
		f.state = StateSuccess
	}
	f.mu.Unlock()

	return result, err
}

// Retry re-issues the last submission. It is only meaningful from the
// error state; when the current fields no longer validate it is a silent
// no-op and the form stays in the error state.
func (f *Form) Retry(ctx context.Context) (*models.ProcessedConversionResult, error) {
	f.mu.Lock()
	if f.state != StateError {
		f.mu.Unlock()
		return nil, nil
	}
	if _, ferrs := validation.Validate(f.input); ferrs != nil {
		f.mu.Unlock()
		return nil, nil
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	result, err := f.store.Retry(ctx)

	f.mu.Lock()
	switch {
	case err != nil:
		f.state = StateError
	case result != nil:
		f.state = StateSuccess
	default:
		// The store declined to retry; stay on the error affordance.
		f.state = StateError
	}
	f.mu.Unlock()

	return result, err
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the current field values.
func (f *Form) Fields() validation.FormInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// FieldErrors returns the validation failures from the last submission.
func (f *Form) FieldErrors() validation.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors
}

// Submitting reports whether a submission is in flight, which drives the
// transient "Converting..." button label.
func (f *Form) Submitting() bool {
	return f.State() == StateSubmitting
}
