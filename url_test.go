package askweb_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/askweb/askweb"
	"github.com/stretchr/testify/assert"
)

func collect(inputs []string) []string {
	return slices.Collect(askweb.NormalizeURLs(inputs))
}

func TestNormalizeURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "adds https scheme when missing",
			inputs: []string{"example.com"},
			want:   []string{"https://example.com"},
		},
		{
			name:   "preserves existing schemes",
			inputs: []string{"http://a.com", "https://b.com"},
			want:   []string{"http://a.com", "https://b.com"},
		},
		{
			name:   "splits comma separated entries",
			inputs: []string{"a.com, b.com,c.com"},
			want:   []string{"https://a.com", "https://b.com", "https://c.com"},
		},
		{
			name:   "trims surrounding whitespace",
			inputs: []string{"  a.com  ", "\tb.com\n"},
			want:   []string{"https://a.com", "https://b.com"},
		},
		{
			name:   "drops empty and whitespace-only entries",
			inputs: []string{"", "   ", "a.com,,  ,b.com"},
			want:   []string{"https://a.com", "https://b.com"},
		},
		{
			name:   "keeps duplicates",
			inputs: []string{"a.com", "a.com"},
			want:   []string{"https://a.com", "https://a.com"},
		},
		{
			name:   "empty input yields nothing",
			inputs: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, collect(tt.inputs))
		})
	}
}

func TestNormalizeURLs_NeverEmitsEmptyOrSchemeless(t *testing.T) {
	t.Parallel()

	inputs := []string{"", " , ,", "a.com", " b.com ,", "http://c.com", ",,", "\t"}
	for url := range askweb.NormalizeURLs(inputs) {
		assert.NotEmpty(t, strings.TrimSpace(url))
		assert.True(t, strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://"),
			"url %q must carry an explicit scheme", url)
	}
}

func TestNormalizeURLs_Lazy(t *testing.T) {
	t.Parallel()

	// Stopping early must not consume the remaining inputs.
	var got []string
	for url := range askweb.NormalizeURLs([]string{"a.com", "b.com", "c.com"}) {
		got = append(got, url)
		if len(got) == 1 {
			break
		}
	}
	assert.Equal(t, []string{"https://a.com"}, got)
}
