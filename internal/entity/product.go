package entity

// Product is one of the offered Focus-IN products. The set is closed: the
// enrichment model is only allowed to classify into these four.
type Product string

const (
	ProductFocusAI     Product = "Focus AI"
	ProductFocusCast   Product = "Focus Cast"
	ProductFocusCase   Product = "Focus Case"
	ProductFocusClinic Product = "Focus Clinic"
)

var AllProducts = []Product{
	ProductFocusAI,
	ProductFocusCast,
	ProductFocusCase,
	ProductFocusClinic,
}

func (p Product) Valid() bool {
	for _, known := range AllProducts {
		if p == known {
			return true
		}
	}
	return false
}
