package webshare

import (
	"encoding/json"
	"maps"
)

// ShareData is the payload handed to the native share layer. For typed
// callers an empty string means the member is absent and a nil Files slice
// means no files were given.
type ShareData struct {
	Title string
	Text  string
	URL   string
	Files []any
	// Extra holds members other than title, text, url and files. They are
	// forwarded untouched.
	Extra map[string]any
}

// MarshalJSON writes the known members over Extra and omits absent ones.
func (d ShareData) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Extra)+4)
	maps.Copy(out, d.Extra)
	delete(out, "title")
	delete(out, "text")
	delete(out, "url")
	delete(out, "files")
	if d.Title != "" {
		out["title"] = d.Title
	}
	if d.Text != "" {
		out["text"] = d.Text
	}
	if d.URL != "" {
		out["url"] = d.URL
	}
	if d.Files != nil {
		out["files"] = d.Files
	}
	return json.Marshal(out)
}

// UnmarshalJSON is lenient about member types: a title, text or url that
// is not a non-empty string ends up in Extra under its own name so that
// Normalize can reject it, as does a files member that is not an array.
func (d *ShareData) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*d = ShareData{}
	for k, v := range m {
		s, isString := v.(string)
		switch {
		case k == "title" && isString && s != "":
			d.Title = s
		case k == "text" && isString && s != "":
			d.Text = s
		case k == "url" && isString && s != "":
			d.URL = s
		case k == "files" && isArray(v):
			d.Files = v.([]any)
		default:
			if d.Extra == nil {
				d.Extra = map[string]any{}
			}
			d.Extra[k] = v
		}
	}
	return nil
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// fields is the loosely typed view the validator works on. A nil member
// is absent.
type fields struct {
	title any
	text  any
	url   any
	files any
	extra map[string]any
}

func fieldsFromMap(m map[string]any) fields {
	f := fields{
		title: m["title"],
		text:  m["text"],
		url:   m["url"],
		files: m["files"],
	}
	for k, v := range m {
		switch k {
		case "title", "text", "url", "files":
			continue
		}
		if f.extra == nil {
			f.extra = make(map[string]any)
		}
		f.extra[k] = v
	}
	return f
}

func fieldsFromData(d ShareData) fields {
	f := fieldsFromMap(d.Extra)
	if d.Title != "" {
		f.title = d.Title
	}
	if d.Text != "" {
		f.text = d.Text
	}
	if d.URL != "" {
		f.url = d.URL
	}
	if d.Files != nil {
		f.files = d.Files
	}
	return f
}
