// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"needle/internal/modkit/httpkit"
	"needle/internal/services/api/search/domain"
	svc "needle/internal/services/api/search/service"
)

// slack for JSON framing around the largest allowed payload
const bodySlack = 64 << 10

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service, limits svc.Limits) {
	h := &handlers{svc: s}
	body := httpkit.MaxBody(BodyLimit(limits))

	httpkit.PostJSON[domain.SubstringInput](r, "/substring", h.substring, body)
	httpkit.PostJSON[domain.SubarrayInput](r, "/subarray", h.subarray, body)
	httpkit.PostJSON[domain.FirstOfInput](r, "/first-of", h.firstOf, body)
	httpkit.PostJSON[domain.FirstWordInput](r, "/first-word", h.firstWord, body)

	// history filter is optional, an empty body lists everything
	runs := httpkit.MaxBody(bodySlack)
	runs.AllowEmptyBody = true
	httpkit.PostJSON[domain.RunsInput](r, "/runs", h.runs, runs)
}

// BodyLimit sizes the request cap so the service limits, not the decoder, reject oversized input
// text and pattern may both be at the limit, numbers are at most 21 bytes each with the comma
func BodyLimit(l svc.Limits) int64 {
	text := 2 * int64(l.MaxTextBytes)
	nums := 21 * int64(l.MaxNumbers)
	return max(text, nums) + bodySlack
}

type handlers struct{ svc svc.Service }

// swagger:route POST /search/substring Search searchSubstring
// @Summary Locate the first occurrence of a pattern
// @Description position is a byte offset, equal to sentinel (len of text) when not found
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.SubstringInput true "Query"
// @Success 200 {object} domain.SubstringResult "ok"
// @Failure 422 {object} httpkit.Envelope "input too large"
// @Router /search/substring [post]
func (h *handlers) substring(r *stdhttp.Request, in domain.SubstringInput) (any, error) {
	return h.svc.Substring(r.Context(), in)
}

// swagger:route POST /search/subarray Search searchSubarray
// @Summary Find the longest contiguous run with the given sum
// @Description start and length both equal sentinel (len of numbers) when not found
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.SubarrayInput true "Query"
// @Success 200 {object} domain.SubarrayResult "ok"
// @Failure 422 {object} httpkit.Envelope "input too large"
// @Router /search/subarray [post]
func (h *handlers) subarray(r *stdhttp.Request, in domain.SubarrayInput) (any, error) {
	return h.svc.Subarray(r.Context(), in)
}

// swagger:route POST /search/first-of Search searchFirstOf
// @Summary Locate the leftmost match of any pattern
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.FirstOfInput true "Query"
// @Success 200 {object} domain.FirstOfResult "ok"
// @Router /search/first-of [post]
func (h *handlers) firstOf(r *stdhttp.Request, in domain.FirstOfInput) (any, error) {
	return h.svc.FirstOf(r.Context(), in)
}

// swagger:route POST /search/first-word Search searchFirstWord
// @Summary Return the text up to the first space
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.FirstWordInput true "Query"
// @Success 200 {object} domain.FirstWordResult "ok"
// @Router /search/first-word [post]
func (h *handlers) firstWord(r *stdhttp.Request, in domain.FirstWordInput) (any, error) {
	return h.svc.FirstWord(r.Context(), in)
}

// swagger:route POST /search/runs Search searchRuns
// @Summary List recent recorded runs
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.RunsInput false "Filter"
// @Success 200 {array} domain.Run "ok"
// @Failure 503 {object} httpkit.Envelope "history disabled"
// @Router /search/runs [post]
func (h *handlers) runs(r *stdhttp.Request, in domain.RunsInput) (any, error) {
	return h.svc.Runs(r.Context(), in)
}
