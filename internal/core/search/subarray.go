package search

import (
	"fmt"
	"strings"
)

// Strategy picks the summation technique used by LocateSubarray
type Strategy uint8

const (
	// StrategyScan re-sums every candidate slice
	StrategyScan Strategy = iota

	// StrategyPrefix answers each candidate from a prefix sum table
	StrategyPrefix
)

// String implements fmt.Stringer
func (s Strategy) String() string {
	switch s {
	case StrategyPrefix:
		return "prefix"
	default:
		return "scan"
	}
}

// ParseStrategy maps "scan" or "prefix" to a Strategy, empty means scan
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scan":
		return StrategyScan, nil
	case "prefix":
		return StrategyPrefix, nil
	default:
		return StrategyScan, fmt.Errorf("search: unknown strategy %q", s)
	}
}

// Span is a contiguous run identified by start offset and length
type Span struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// End returns the exclusive end offset of the span
func (s Span) End() int { return s.Start + s.Length }

// FindSubarrayWithSum returns the longest contiguous run of nums summing to sum
// ties on length go to the leftmost start
// it returns (len(nums), len(nums)) when no run matches
// sums use int arithmetic and wrap on overflow
func FindSubarrayWithSum(nums []int, sum int) (start, length int) {
	n := len(nums)
	for l := n; l >= 1; l-- {
		for s := 0; s+l <= n; s++ {
			if sumOf(nums[s:s+l]) == sum {
				return s, l
			}
		}
	}
	return n, n
}

// FindSubarrayWithSumPrefix has the same contract as FindSubarrayWithSum
// each candidate is answered in O(1) from a prefix table so the search is O(n^2)
func FindSubarrayWithSumPrefix(nums []int, sum int) (start, length int) {
	n := len(nums)
	if n == 0 {
		return 0, 0
	}
	prefix := make([]int, n+1)
	for i, v := range nums {
		prefix[i+1] = prefix[i] + v
	}
	for l := n; l >= 1; l-- {
		for s := 0; s+l <= n; s++ {
			if prefix[s+l]-prefix[s] == sum {
				return s, l
			}
		}
	}
	return n, n
}

// LocateSubarray runs the chosen strategy and reports the match as a Span
func LocateSubarray(nums []int, sum int, strategy Strategy) (Span, bool) {
	var s, l int
	switch strategy {
	case StrategyPrefix:
		s, l = FindSubarrayWithSumPrefix(nums, sum)
	default:
		s, l = FindSubarrayWithSum(nums, sum)
	}
	if s == len(nums) {
		return Span{}, false
	}
	return Span{Start: s, Length: l}, true
}

func sumOf(xs []int) int {
	total := 0
	for _, v := range xs {
		total += v
	}
	return total
}
