// Package domain holds DTOs for search http and service contracts
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run kinds recorded in history and events
const (
	KindSubstring = "substring"
	KindSubarray  = "subarray"
	KindFirstOf   = "first_of"
)

// SubstringInput asks for the first occurrence of Pattern in Text
// offsets are bytes of the normalized text
type SubstringInput struct {
	Text      string `json:"text" example:"Today is a very warm and sunny day."`
	Pattern   string `json:"pattern" example:"sunny"`
	Normalize string `json:"normalize,omitempty" validate:"omitempty,enum_ci=none nfc nfkc fold" example:"nfc"`
}

// SubstringResult reports the match offset or the sentinel when absent
type SubstringResult struct {
	Position     int    `json:"position" example:"25"`
	Found        bool   `json:"found" example:"true"`
	Sentinel     int    `json:"sentinel" example:"35"`
	RunePosition int    `json:"rune_position" example:"25"`
	Length       int    `json:"length" example:"35"`
	RunID        string `json:"run_id" example:"0b6f3c1e-4a5d-4d3b-9a55-2f0c3f1e8a10"`
}

// SubarrayInput asks for the longest contiguous run of Numbers summing to Sum
type SubarrayInput struct {
	Numbers  []int  `json:"numbers" example:"1,1,2,3,5,8,13"`
	Sum      int    `json:"sum" example:"18"`
	Strategy string `json:"strategy,omitempty" validate:"omitempty,enum_ci=scan prefix" example:"scan"`
}

// SubarrayResult reports the winning span, both fields equal Sentinel when absent
type SubarrayResult struct {
	Start    int    `json:"start" example:"2"`
	Length   int    `json:"length" example:"4"`
	Found    bool   `json:"found" example:"true"`
	Sentinel int    `json:"sentinel" example:"7"`
	Slice    []int  `json:"slice" example:"2,3,5,8"`
	RunID    string `json:"run_id" example:"0b6f3c1e-4a5d-4d3b-9a55-2f0c3f1e8a10"`
}

// FirstOfInput asks for the leftmost match of any pattern
type FirstOfInput struct {
	Text     string   `json:"text" example:"the cat sat on the mat"`
	Patterns []string `json:"patterns" validate:"max=256" example:"mat,sat"`
}

// FirstOfResult reports the match start and which pattern matched, index -1 when absent
type FirstOfResult struct {
	Position     int    `json:"position" example:"8"`
	PatternIndex int    `json:"pattern_index" example:"1"`
	Pattern      string `json:"pattern" example:"sat"`
	Found        bool   `json:"found" example:"true"`
	RunID        string `json:"run_id" example:"0b6f3c1e-4a5d-4d3b-9a55-2f0c3f1e8a10"`
}

// FirstWordInput holds the text to cut at the first space
type FirstWordInput struct {
	Text string `json:"text" example:"hello world"`
}

// FirstWordResult is the prefix before the first space
type FirstWordResult struct {
	Word   string `json:"word" example:"hello"`
	Length int    `json:"length" example:"5"`
}

// history page size, the validate tag on RunsInput.Limit repeats RunsLimitMax
const (
	RunsLimitDefault = 50
	RunsLimitMax     = 500
)

// RunsInput filters recent history, Limit defaults to RunsLimitDefault
type RunsInput struct {
	Kind  string `json:"kind,omitempty" validate:"omitempty,enum_ci=substring subarray first_of" example:"substring"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// Run is one recorded search
type Run struct {
	ID        uuid.UUID     `json:"id"`
	Kind      string        `json:"kind" example:"substring"`
	Found     bool          `json:"found" example:"true"`
	Elapsed   time.Duration `json:"-"`
	ElapsedUS int64         `json:"elapsed_us" example:"3"`
	Input     string        `json:"input" example:"text=\"Today is...\" pattern=\"sunny\""`
	Result    string        `json:"result" example:"position=25"`
	CreatedAt time.Time     `json:"created_at"`
}
