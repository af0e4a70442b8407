package record

// ChamberNone is the sentinel value of the chamber-of-accounts reference
// meaning the act was not also registered at the Chambre des comptes.
const ChamberNone = "0"

// Record is one catalogued act registered by the Parlement de Paris.
type Record struct {
	ID         int64  `json:"id"`
	Nature     string `json:"nature,omitempty"`
	Regeste    string `json:"regeste"`
	DocDate    string `json:"doc_date,omitempty"`
	Motive     string `json:"motive,omitempty"`
	RegDate    string `json:"reg_date"`
	RegMode    string `json:"reg_mode,omitempty"`
	ChamberRef string `json:"chamber_ref"`
}

// Fields carries the mutable attributes of a record; an update replaces all
// of them at once.
type Fields struct {
	Nature     string
	Regeste    string
	DocDate    string
	Motive     string
	RegDate    string
	RegMode    string
	ChamberRef string
}

// Field names a record attribute usable as a sort key or filter target.
type Field string

const (
	FieldID         Field = "id"
	FieldNature     Field = "nature"
	FieldRegeste    Field = "regeste"
	FieldDocDate    Field = "doc_date"
	FieldMotive     Field = "motive"
	FieldRegDate    Field = "reg_date"
	FieldRegMode    Field = "reg_mode"
	FieldChamberRef Field = "chamber_ref"
)

// Column returns the column name for the field, or "" if the field is not
// part of the whitelist. Order-by and filter input never reaches SQL without
// passing through this mapping.
func (f Field) Column() string {
	switch f {
	case FieldID, FieldNature, FieldRegeste, FieldDocDate,
		FieldMotive, FieldRegDate, FieldRegMode, FieldChamberRef:
		return string(f)
	}
	return ""
}

// SearchFields are the text attributes scanned by the advanced search, one
// result group per attribute.
func SearchFields() []Field {
	return []Field{
		FieldNature, FieldRegeste, FieldDocDate,
		FieldMotive, FieldRegDate, FieldRegMode, FieldChamberRef,
	}
}

// Filter restricts a listing to records whose field matches Value, either
// exactly or by substring.
type Filter struct {
	Field     Field
	Value     string
	Substring bool
}

// ListQuery describes a read-only listing: sort key, optional single-field
// filter, optional pagination.
type ListQuery struct {
	OrderBy Field
	Filter  *Filter
	Limit   int
	Offset  int
}

// FieldGroup is one group of advanced-search results: the records whose
// given attribute matched the keyword.
type FieldGroup struct {
	Field   Field    `json:"field"`
	Records []Record `json:"records"`
}
