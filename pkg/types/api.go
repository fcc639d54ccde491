package types

// NERRequest is the payload accepted by POST /ner.
type NERRequest struct {
	// Required text to analyze. A pointer so that an absent field can be told
	// apart from an empty string.
	// example: Apple was founded by Steve Jobs.
	Text *string `json:"text" validate:"required" example:"Apple was founded by Steve Jobs." swaggertype:"string"`
}

// Span is one tagged piece of the input text returned by POST /ner.
type Span struct {
	// Covered substring of the input.
	// example: Steve Jobs
	Text string `json:"text" example:"Steve Jobs"`
	// Entity type (e.g. PERSON, GPE) or coarse part of speech (NOUN, PROPN, ADJ).
	// example: PERSON
	Label string `json:"label" example:"PERSON"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: text is required
	Error string `json:"error" example:"text is required"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// Extraction is the outcome of one analysis. Spans is what POST /ner serves;
// the first Entities of them came from named entities, the rest are tokens.
type Extraction struct {
	Spans    []Span
	Entities int
}
