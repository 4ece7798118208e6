package model

//Keyed is implemented by records that can be looked up by their name inside one directory.
type Keyed interface {
	Key() string
}

//Table is a name-keyed lookup of the entries of a single directory level.
//It's built fresh for every directory and never shared between levels or runs.
type Table[R Keyed] map[string]R

func NewTable[R Keyed](records []R) Table[R] {
	t := make(Table[R], len(records))
	for _, r := range records {
		t[r.Key()] = r
	}
	return t
}

//Find returns a pointer to a copy of the record named name, or nil if there is no such record.
func (t Table[R]) Find(name string) *R {
	r, ok := t[name]
	if !ok {
		return nil
	}
	return &r
}

func (t Table[R]) Has(name string) bool {
	_, ok := t[name]
	return ok
}
