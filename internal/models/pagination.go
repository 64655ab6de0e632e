package models

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// ListOptions carries the limit/offset/sort parameters of product listings.
type ListOptions struct {
	Limit     int
	Offset    int
	SortField string
	SortDir   string
}

func (o ListOptions) Normalized() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.SortField == "" {
		o.SortField = "id"
	}
	if o.SortDir != SortDesc {
		o.SortDir = SortAsc
	}
	return o
}
