package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-currency-converter/internal/forms"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/store"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

// FormSession pairs a form with the conversion store that owns its results.
type FormSession struct {
	Form  *forms.Form
	Store *store.ConversionStore
}

// SessionManager keeps one conversion form per session ID.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*FormSession
	factory  func() *FormSession
}

// NewSessionManager creates a manager that builds sessions with factory.
func NewSessionManager(factory func() *FormSession) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*FormSession),
		factory:  factory,
	}
}

// Create allocates a new session and returns its ID.
func (m *SessionManager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = m.factory()
	m.mu.Unlock()
	return id
}

// Get returns the session for id, or nil when it does not exist.
func (m *SessionManager) Get(id string) *FormSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// CreateFormSessionResponse carries a newly created session ID.
// swagger:model CreateFormSessionResponse
type CreateFormSessionResponse struct {
	SessionID string `json:"session_id"`
}

// FormStateResponse is the renderable snapshot of a conversion form.
// swagger:model FormStateResponse
type FormStateResponse struct {
	// Lifecycle state: idle, validating, submitting, success or error
	State string `json:"state"`

	// Current field values
	Fields validation.FormInput `json:"fields"`

	// Field-level validation messages from the last submission
	FieldErrors map[string]string `json:"field_errors,omitempty"`

	// Whether a submission is in flight
	Submitting bool `json:"submitting"`

	// Whether the last outcome was a failure
	HasError bool `json:"has_error"`

	// Last successful conversion, if any
	Result *models.ProcessedConversionResult `json:"result,omitempty"`
}

// FormErrorResponse represents a form endpoint failure.
// swagger:model FormErrorResponse
type FormErrorResponse struct {
	// Error message
	// default: session not found
	Error string `json:"error"`
}

func formState(s *FormSession) FormStateResponse {
	var fieldErrors map[string]string
	if ferrs := s.Form.FieldErrors(); ferrs != nil {
		fieldErrors = ferrs.ByField()
	}
	return FormStateResponse{
		State:       string(s.Form.State()),
		Fields:      s.Form.Fields(),
		FieldErrors: fieldErrors,
		Submitting:  s.Form.Submitting(),
		HasError:    s.Store.HasError(),
		Result:      s.Store.Result(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// session resolves the request's session or writes a 404.
func session(m *SessionManager, w http.ResponseWriter, r *http.Request) *FormSession {
	s := m.Get(chi.URLParam(r, "sessionID"))
	if s == nil {
		writeJSON(w, http.StatusNotFound, FormErrorResponse{Error: "session not found"})
	}
	return s
}

// NewCreateFormSessionHandler creates a new conversion form session.
// @Summary Create form session
// @Tags form
// @Produce json
// @Success 201 {object} handlers.CreateFormSessionResponse "Session created"
// @Router /form [post]
func NewCreateFormSessionHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, CreateFormSessionResponse{SessionID: m.Create()})
	}
}

// NewGetFormStateHandler returns the current form snapshot.
// @Summary Get form state
// @Tags form
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} handlers.FormStateResponse "Form state"
// @Failure 404 {object} handlers.FormErrorResponse "Session not found"
// @Router /form/{sessionID} [get]
func NewGetFormStateHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session(m, w, r)
		if s == nil {
			return
		}
		writeJSON(w, http.StatusOK, formState(s))
	}
}

// NewUpdateFormFieldsHandler replaces the form's field values.
// @Summary Update form fields
// @Tags form
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param fields body validation.FormInput true "Field values"
// @Success 200 {object} handlers.FormStateResponse "Updated form state"
// @Failure 400 {object} handlers.FormErrorResponse "Malformed body"
// @Failure 404 {object} handlers.FormErrorResponse "Session not found"
// @Router /form/{sessionID}/fields [put]
func NewUpdateFormFieldsHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session(m, w, r)
		if s == nil {
			return
		}

		// A non-numeric amount decodes to the zero value here and is caught
		// by validation on submit.
		input, _, err := decodeFormInput(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, FormErrorResponse{Error: "Invalid request body"})
			return
		}

		s.Form.SetFields(input)
		writeJSON(w, http.StatusOK, formState(s))
	}
}

// NewSwapFormCurrenciesHandler exchanges the form's currencies.
// @Summary Swap currencies
// @Description Exchanges from and to currencies, leaving amount and date untouched.
// @Tags form
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} handlers.FormStateResponse "Updated form state"
// @Failure 404 {object} handlers.FormErrorResponse "Session not found"
// @Router /form/{sessionID}/swap [post]
func NewSwapFormCurrenciesHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session(m, w, r)
		if s == nil {
			return
		}
		s.Form.SwapCurrencies()
		writeJSON(w, http.StatusOK, formState(s))
	}
}

// NewSubmitFormHandler validates the form and runs the conversion.
// @Summary Submit form
// @Tags form
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} handlers.FormStateResponse "Conversion outcome"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure"
// @Failure 404 {object} handlers.FormErrorResponse "Session not found"
// @Failure 502 {object} handlers.ConvertErrorResponse "Provider failure"
// @Router /form/{sessionID}/submit [post]
func NewSubmitFormHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session(m, w, r)
		if s == nil {
			return
		}

		_, err := s.Form.Submit(r.Context())
		var ferrs validation.FieldErrors
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, formState(s))
		case errors.As(err, &ferrs):
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: ferrs.ByField()})
		default:
			writeConversionError(w, err)
		}
	}
}

// NewRetryFormHandler re-issues the last submission.
// @Summary Retry last submission
// @Description Re-validates and re-issues the last submitted request; silently no-ops when the form is invalid.
// @Tags form
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} handlers.FormStateResponse "Conversion outcome"
// @Failure 404 {object} handlers.FormErrorResponse "Session not found"
// @Failure 502 {object} handlers.ConvertErrorResponse "Provider failure"
// @Router /form/{sessionID}/retry [post]
func NewRetryFormHandler(m *SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := session(m, w, r)
		if s == nil {
			return
		}

		_, err := s.Form.Retry(r.Context())
		if err != nil {
			writeConversionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, formState(s))
	}
}
