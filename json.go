package tblf

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, t Table) error {
	rows := t
	if rows == nil {
		rows = Table{}
	}
	return json.NewEncoder(w).Encode(rows)
}
