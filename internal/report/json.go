package report

import (
	"encoding/json"
	"io"
)

// WriteScanJSON encodes r as indented JSON.
func WriteScanJSON(w io.Writer, r ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
