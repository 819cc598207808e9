package model

// Document is the whole persisted state of the marketplace: every car and
// every rental request, held in one JSON file.  There is no schema version
// marker; the two arrays are the entire contract with the backing store.
type Document struct {
	Cars    []Car    `json:"cars"`
	Rentals []Rental `json:"rentals"`
}

// EmptyDocument returns a Document with both collections allocated but
// empty.  The store substitutes this whenever the backing file is missing
// or unreadable, so callers never observe nil slices.
func EmptyDocument() Document {
	return Document{Cars: []Car{}, Rentals: []Rental{}}
}
