package r4

import (
	"github.com/damedic/fhir-binding-go/model"
	"github.com/google/uuid"
)

// NewTransactionEntry wraps r as an entry of a transaction bundle. The entry
// gets a fresh urn:uuid fullUrl so other entries can reference r before the
// server assigned an id.
func NewTransactionEntry(r model.Resource, method Httpverb, url string) BundleEntry {
	return NewBundleEntry().
		SetFullUrl(uuid.New().URN()).
		SetResource(r).
		SetRequest(NewBundleEntryRequest(method, url).Build()).
		Build()
}

// NewTransaction assembles a transaction bundle of the given entries.
func NewTransaction(entries ...BundleEntry) Bundle {
	return NewBundle(BundleTypeTransaction).
		SetEntry(entries...).
		Build()
}
