package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a ProviderError.
type Kind string

const (
	KindUnsupportedProvider Kind = "unsupported_provider"
	KindInvalidInput        Kind = "invalid_input"
	KindUnsupportedModel    Kind = "unsupported_model"
	KindRemoteHTTP          Kind = "remote_http"
	KindProvider            Kind = "provider"
)

// ProviderError is the single error type crossing the adapter boundary.
// Error() renders the bracketed form shown to end users.
type ProviderError struct {
	Kind Kind
	// Provider is the adapter label ("DeepSeek"), or the requested
	// identifier when Kind is KindUnsupportedProvider.
	Provider   string
	Model      string
	Allowed    []string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	switch e.Kind {
	case KindUnsupportedProvider:
		return fmt.Sprintf("[Unsupported provider: %s]", e.Provider)
	case KindInvalidInput:
		return fmt.Sprintf("[Invalid input format for %s]", e.Provider)
	case KindUnsupportedModel:
		return fmt.Sprintf("[%s Error] Unsupported model '%s'. Permitted: [%s]",
			e.Provider, e.Model, strings.Join(e.Allowed, ", "))
	case KindRemoteHTTP:
		return fmt.Sprintf("[%s Error] %d - %s", e.Provider, e.StatusCode, e.Body)
	default:
		msg := "unknown error"
		if e.Err != nil {
			msg = e.Err.Error()
		}
		return fmt.Sprintf("[%s Error] %s", e.Provider, msg)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Render converts any error into a GenerationResult string.
func Render(err error) string {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Error()
	}
	return fmt.Sprintf("[Error] %v", err)
}

// KindOf reports the kind of err, or KindProvider when err is not a ProviderError.
func KindOf(err error) Kind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindProvider
}

// UnsupportedProvider is returned by the router for identifiers it does not know.
func UnsupportedProvider(name string) *ProviderError {
	return &ProviderError{Kind: KindUnsupportedProvider, Provider: name}
}

func invalidInput(label string, err error) *ProviderError {
	return &ProviderError{Kind: KindInvalidInput, Provider: label, Err: err}
}

func unsupportedModel(label, model string, allowed []string) *ProviderError {
	return &ProviderError{
		Kind:     KindUnsupportedModel,
		Provider: label,
		Model:    model,
		Allowed:  append([]string(nil), allowed...),
	}
}

func remoteHTTP(label string, status int, body string) *ProviderError {
	return &ProviderError{Kind: KindRemoteHTTP, Provider: label, StatusCode: status, Body: body}
}

func providerFailure(label string, err error) *ProviderError {
	return &ProviderError{Kind: KindProvider, Provider: label, Err: err}
}

// checkModel validates model against an allow-list.
func checkModel(label, model string, allowed []string) error {
	for _, m := range allowed {
		if m == model {
			return nil
		}
	}
	return unsupportedModel(label, model, allowed)
}
