package models

// Field is one (name, value) pair of a record. The name is the raw key as
// produced upstream; sanitization happens at encode time.
type Field struct {
	Name  string
	Value Value
}

// Record is one log entry as an ordered list of fields. Field order is
// preserved through encoding.
type Record []Field

// Add appends a field and returns the extended record.
func (r Record) Add(name string, v Value) Record {
	return append(r, Field{Name: name, Value: v})
}
