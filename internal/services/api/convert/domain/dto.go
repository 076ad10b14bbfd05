// Package domain holds DTOs for conversion http and service contracts
package domain

import "time"

// Bases are plain integers here; the radix core is the only judge of what is supported

// ConvertInput is one conversion request
type ConvertInput struct {
	Input string `json:"input" example:"FF"`
	From  int    `json:"from" example:"16"`
	To    int    `json:"to" example:"2"`
}

// ConvertResult is a successful conversion
type ConvertResult struct {
	ID       string `json:"id" example:"01929a3c-7c1e-7a44-9d3e-2f1b6a0c9e11"`
	Input    string `json:"input" example:"FF"`
	From     int    `json:"from" example:"16"`
	To       int    `json:"to" example:"2"`
	Output   string `json:"output" example:"11111111"`
	Negative bool   `json:"negative" example:"false"`
	Digits   int    `json:"digits" example:"8"`
}

// AllInput asks for one value in every supported base
type AllInput struct {
	Input string `json:"input" example:"255"`
	From  int    `json:"from" example:"10"`
}

// AllResult maps each supported base, as a decimal string, to its digits
type AllResult struct {
	Input   string            `json:"input" example:"255"`
	From    int               `json:"from" example:"10"`
	Outputs map[string]string `json:"outputs"`
}

// BatchInput is a list of independent conversions
type BatchInput struct {
	Items []ConvertInput `json:"items" validate:"required,min=1"`
}

// ItemError explains why one batch item failed
type ItemError struct {
	Reason  string `json:"reason" example:"digit_out_of_range"`
	Field   string `json:"field,omitempty" example:"input"`
	Message string `json:"message" example:"digit '8' at position 0 is out of range for base 2"`
}

// BatchItem is the outcome of one batch entry; exactly one of Output or Error is set
type BatchItem struct {
	Index    int        `json:"index" example:"0"`
	ID       string     `json:"id,omitempty"`
	Input    string     `json:"input" example:"1010"`
	From     int        `json:"from" example:"2"`
	To       int        `json:"to" example:"16"`
	Output   string     `json:"output,omitempty" example:"A"`
	Negative bool       `json:"negative,omitempty"`
	Digits   int        `json:"digits,omitempty" example:"1"`
	Error    *ItemError `json:"error,omitempty"`
}

// BatchResult holds item outcomes in request order
type BatchResult struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded" example:"3"`
	Failed    int         `json:"failed" example:"1"`
}

// HistoryInput pages the ledger, newest first
type HistoryInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// History paging bounds
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// EffectiveLimit applies the default and the cap to Limit
func (in HistoryInput) EffectiveLimit() int {
	if in.Limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(in.Limit, MaxHistoryLimit)
}

// HistoryEntry is one recorded attempt
type HistoryEntry struct {
	ID        string    `json:"id"`
	Input     string    `json:"input" example:"FF"`
	From      int       `json:"from" example:"16"`
	To        int       `json:"to" example:"2"`
	Output    string    `json:"output,omitempty" example:"11111111"`
	Reason    string    `json:"reason,omitempty" example:"invalid_character"`
	CreatedAt time.Time `json:"created_at"`
}
