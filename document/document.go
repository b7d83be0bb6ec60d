// Package document materializes a traversal as an ordered in-memory document;
// entry order follows field visitation order exactly.
package document

type (
	//E represents a single document entry
	E struct {
		Key   string
		Value interface{}
	}

	//D represents a document, an ordered collection of entries
	D []E

	//A represents an array of values
	A []interface{}
)

// Lookup returns the value of the first entry matched by key
func (d D) Lookup(key string) (interface{}, bool) {
	for _, entry := range d {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}
