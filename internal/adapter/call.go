package adapter

import (
	"context"
	"errors"
	"fmt"
)

// Call runs one generation against p: model validation, input normalisation,
// then the provider request. Every failure, including a panic inside the
// adapter, comes back as a *ProviderError.
func Call(ctx context.Context, p Provider, input any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", providerFailure(p.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	if v, ok := p.(ModelValidator); ok {
		if err := v.ValidateModel(); err != nil {
			return "", asProviderError(p.Name(), err)
		}
	}

	if s, ok := input.(string); ok {
		if rp, ok := p.(RawPrompter); ok {
			text, err = rp.GenerateRaw(ctx, s)
			return text, asProviderError(p.Name(), err)
		}
	}

	messages, err := Normalize(input)
	if err != nil {
		return "", invalidInput(p.Name(), err)
	}

	text, err = p.Generate(ctx, messages)
	return text, asProviderError(p.Name(), err)
}

func asProviderError(label string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	return providerFailure(label, err)
}
