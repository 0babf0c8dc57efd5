package catalog

import (
	"math/rand"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// Shuffle returns a uniformly shuffled copy of items (Fisher–Yates).
// Used instead of sorting when the filter context has no explicit
// in/out-of-stock constraint, so repeated visits to the unfiltered
// catalog don't always lead with the same gadgets.
func Shuffle(items []models.DerivedGadget) []models.DerivedGadget {
	return shuffleWithRand(items, rand.Intn)
}

// shuffleWithRand takes the j-draw as a parameter so tests can seed it.
func shuffleWithRand(items []models.DerivedGadget, intn func(n int) int) []models.DerivedGadget {
	shuffled := append([]models.DerivedGadget(nil), items...)
	for i := len(shuffled) - 1; i >= 1; i-- {
		j := intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
