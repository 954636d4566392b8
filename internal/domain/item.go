package domain

// KeyPrefix namespaces all keys written by this service.
const KeyPrefix = "shlrec:"

// Storage layout for catalog items.
const (
	// ItemKeyPrefix prefixes every item hash key.
	ItemKeyPrefix = KeyPrefix + "item:"
	// ItemIndexName is the FT index over item hashes.
	ItemIndexName = KeyPrefix + "item-idx"
)

// ItemKey returns the hash key for an item id.
func ItemKey(id string) string { return ItemKeyPrefix + id }

// Hash field names for catalog items. The same names are used in the
// FT index schema, so search results come back with these keys.
const (
	FieldName            = "name"
	FieldURL             = "url"
	FieldTestType        = "test_type"
	FieldRemoteSupport   = "remote_support"
	FieldAdaptiveSupport = "adaptive_support"
	FieldJobLevels       = "job_levels"
	FieldLongDescription = "long_description"
	FieldVector          = "embedding"
)

// MetadataFields lists the string-valued display fields of an item, in the
// order they are requested back from the index.
func MetadataFields() []string {
	return []string{
		FieldName,
		FieldURL,
		FieldTestType,
		FieldRemoteSupport,
		FieldAdaptiveSupport,
		FieldJobLevels,
		FieldLongDescription,
	}
}

// Item is a catalog entry. Immutable once ingested; metadata fields may be
// empty when the source page lacked them.
type Item struct {
	ID              string
	Name            string
	URL             string
	TestType        string
	RemoteSupport   string
	AdaptiveSupport string
	JobLevels       string
	LongDescription string
}

// ItemFromFields builds an Item from stored hash fields.
// Absent fields stay empty strings; partial metadata is never an error.
func ItemFromFields(id string, fields map[string]string) Item {
	return Item{
		ID:              id,
		Name:            fields[FieldName],
		URL:             fields[FieldURL],
		TestType:        fields[FieldTestType],
		RemoteSupport:   fields[FieldRemoteSupport],
		AdaptiveSupport: fields[FieldAdaptiveSupport],
		JobLevels:       fields[FieldJobLevels],
		LongDescription: fields[FieldLongDescription],
	}
}

// Fields returns the hash representation of the item, excluding the vector.
func (it Item) Fields() map[string]string {
	return map[string]string{
		FieldName:            it.Name,
		FieldURL:             it.URL,
		FieldTestType:        it.TestType,
		FieldRemoteSupport:   it.RemoteSupport,
		FieldAdaptiveSupport: it.AdaptiveSupport,
		FieldJobLevels:       it.JobLevels,
		FieldLongDescription: it.LongDescription,
	}
}

// EmbeddingText is the text that gets vectorized for an item.
func (it Item) EmbeddingText() string {
	return it.Name + " " + it.LongDescription + " " + it.JobLevels
}
