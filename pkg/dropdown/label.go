package dropdown

import (
	"sync"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicy     *bluemonday.Policy
	labelPolicyOnce sync.Once
)

// richLabelPolicy allows inline formatting only: labels live inside
// buttons and list items, so block and interactive elements are stripped.
func richLabelPolicy() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.NewPolicy()
		labelPolicy.AllowElements("strong", "b", "em", "i", "small", "mark", "code", "span", "sub", "sup")
		labelPolicy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	})
	return labelPolicy
}

// labelHTML returns the markup for an option label.
func (s *Select) labelHTML(label string) string {
	if s.cfg.richLabels {
		return richLabelPolicy().Sanitize(label)
	}
	return templ.EscapeString(label)
}
