package domain

import "errors"

var (
	// ErrTextEmpty signals a missing or blank analysis text.
	ErrTextEmpty = errors.New("text is empty")
	// ErrTextTooLong signals text exceeding the configured length limit.
	ErrTextTooLong = errors.New("text too long")
	// ErrKeywordEmpty signals a blank keyword in an insert request.
	ErrKeywordEmpty = errors.New("keyword is empty")

	// ErrExtractionQuotaExceeded signals an exhausted extraction token budget.
	ErrExtractionQuotaExceeded = errors.New("extraction quota exceeded")
	// ErrExtractionProviderError signals an extraction provider failure.
	ErrExtractionProviderError = errors.New("extraction provider error")
)
