package speech

import "fmt"

// LineDrawn is the announcement for a drawn number, e.g. "Número 42!".
func LineDrawn(prefix string, n int) string {
	if prefix == "" {
		return fmt.Sprintf("%d!", n)
	}
	return fmt.Sprintf("%s %d!", prefix, n)
}

// DrawLines returns the announcements for every number in nums, in order.
// Used to prefetch the audio for the numbers still in play.
func DrawLines(prefix string, nums []int) []string {
	lines := make([]string, len(nums))
	for i, n := range nums {
		lines[i] = LineDrawn(prefix, n)
	}
	return lines
}
