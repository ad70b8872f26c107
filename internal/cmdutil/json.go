package cmdutil

import (
	"bytes"
	"encoding/json"
	"io"
)

// WriteJSON encodes data as pretty-printed JSON to the given writer.
// Used by list when --json is specified.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteIndentedJSON re-indents a JSON document produced elsewhere, such as
// `mason info --format=json`, keeping key order.
func WriteIndentedJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
