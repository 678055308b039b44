package album

import (
	"strings"

	"postrec/internal/textutil"
)

// Category is a show name written into the album tag.
type Category string

// Fallback is returned for titles that match no known show.
const Fallback Category = "Specials"

type rule struct {
	category Category
	match    func(key string) bool
}

// rules is evaluated top to bottom. Order matters: "Saturday Vibes" is tested
// before "Saturday Night Vibes", and a title naming two shows resolves to the
// earlier one.
var rules = []rule{
	contains("Unser Freitag"),
	contains("Throwback Night"),
	contains("Saturday Vibes"),
	contains("Saturday Night Vibes"),
	contains("Saturday Night Beats"),
	contains("Samstags Short Session"),
	contains("We Will Rock You"),
	contains("Monday Motivation"),
	contains("Genre Wheel"),
}

func contains(name string) rule {
	pattern := textutil.CompactKey(name)
	return rule{
		category: Category(name),
		match: func(key string) bool {
			return strings.Contains(key, pattern)
		},
	}
}

// Classify returns the show a title belongs to, or Fallback.
func Classify(title string) Category {
	key := textutil.CompactKey(title)
	for _, r := range rules {
		if r.match(key) {
			return r.category
		}
	}
	return Fallback
}

// Categories lists the known shows in priority order, followed by Fallback.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, Fallback)
}
