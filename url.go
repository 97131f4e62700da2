package askweb

import (
	"iter"
	"strings"
)

// NormalizeURLs yields individual URLs from raw input strings. Each input
// may contain comma-separated sub-URLs and surrounding whitespace. Empty and
// whitespace-only entries are dropped. URLs without an explicit scheme are
// rewritten to https://.
//
// Duplicates are NOT removed; a URL supplied twice is scraped twice and
// produces duplicate documents downstream.
func NormalizeURLs(inputs []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, raw := range inputs {
			for part := range strings.SplitSeq(raw, ",") {
				u := strings.TrimSpace(part)
				if u == "" {
					continue
				}
				if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
					u = "https://" + u
				}
				if !yield(u) {
					return
				}
			}
		}
	}
}
