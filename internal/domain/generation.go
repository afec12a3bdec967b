package domain

import "strings"

// StatusSuccess is the status marker of every successful GenerationResult.
const StatusSuccess = "success"

// ErrMsgEmptyFeatureIdea is the caller-facing message for blank input.
const ErrMsgEmptyFeatureIdea = "Feature idea cannot be empty."

// GenerationRequest carries a short natural-language description of a
// desired capability.
type GenerationRequest struct {
	FeatureIdea string `json:"featureIdea" validate:"required"`
}

// Normalize trims surrounding whitespace and rejects blank ideas.
func (r GenerationRequest) Normalize() (string, error) {
	idea := strings.TrimSpace(r.FeatureIdea)
	if idea == "" {
		return "", NewValidationError("", ErrMsgEmptyFeatureIdea, ErrEmptyContent)
	}
	return idea, nil
}

// GenerationResult is the generated document together with the echoed,
// trimmed input. It lives for a single request and is never persisted.
type GenerationResult struct {
	SRSDocument string `json:"srs_document"`
	FeatureIdea string `json:"feature_idea"`
	Status      string `json:"status"`
}

// NewGenerationResult builds a successful result.
func NewGenerationResult(document, featureIdea string) *GenerationResult {
	return &GenerationResult{
		SRSDocument: document,
		FeatureIdea: featureIdea,
		Status:      StatusSuccess,
	}
}
