package dropdown

import "github.com/sahilm/fuzzy"

// typeahead accumulates printable input while the menu is open and jumps
// focus to the best-matching option. The buffer clears on every open, close,
// and arrow movement, so navigation always starts fresh.
type typeahead struct {
	query string
}

func (t *typeahead) reset() {
	t.query = ""
}

func (t *typeahead) push(runes []rune) {
	t.query += string(runes)
}

func (t *typeahead) backspace() {
	if t.query == "" {
		return
	}
	r := []rune(t.query)
	t.query = string(r[:len(r)-1])
}

// match returns the index of the option that best matches the current query.
// An empty query or no match reports ok=false.
func (t *typeahead) match(options []string) (int, bool) {
	if t.query == "" || len(options) == 0 {
		return 0, false
	}
	matches := fuzzy.Find(t.query, options)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}
