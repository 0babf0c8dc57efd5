package catalog

import (
	"strings"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// Matches reports whether the query appears, case-insensitively, in any
// of the gadget's text fields. The haystack joins only fields that are
// actually present, so absent fields can never produce phantom matches.
//
// An empty or whitespace-only query matches everything; callers that
// mean "clear the search" must restore the unfiltered list instead of
// calling this.
func Matches(item models.DerivedGadget, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}

	fields := []string{
		item.Name,
		item.Title,
		item.Description,
		item.Brand,
		item.Model,
		item.Category,
	}

	present := fields[:0]
	for _, f := range fields {
		if f != "" {
			present = append(present, f)
		}
	}

	haystack := strings.ToLower(strings.Join(present, " "))
	return strings.Contains(haystack, strings.ToLower(query))
}
