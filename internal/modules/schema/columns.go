package schema

// columns records which model columns an Apply call wrote.
type columns struct {
	present Fields
	list    []string
}

func newColumns(present Fields) *columns {
	return &columns{present: present}
}

func (c *columns) has(key string) bool {
	if !c.present.Has(key) {
		return false
	}
	c.list = append(c.list, key)
	return true
}
