package schema

import "strings"

// Text is a loosely typed spreadsheet cell. Every JSON value is kept as text
// and null becomes "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*t = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := api.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(v))
	case strings.HasPrefix(s, "{"), strings.HasPrefix(s, "["):
		// Object and array cells are kept as compact JSON text.
		var v interface{}
		if err := api.Unmarshal(b, &v); err != nil {
			return err
		}
		out, err := api.Marshal(v)
		if err != nil {
			return err
		}
		*t = Text(out)
	default:
		*t = Text(s)
	}
	return nil
}

// ImageList accepts either a JSON array of URLs or one comma separated cell.
type ImageList []string

func (l *ImageList) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var items []Text
		if err := api.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				out = append(out, string(item))
			}
		}
		*l = out
		return nil
	}
	var cell Text
	if err := cell.UnmarshalJSON(b); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(string(cell), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}
