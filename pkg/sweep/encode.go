package sweep

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// WriteCSV writes the sweep records as T,VGS,VDS,ID rows with a trailing
// error column for failed points.
func WriteCSV(w io.Writer, res Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"T", "VGS", "VDS", "ID", "ERR"}); err != nil {
		return err
	}
	for _, r := range res.Records {
		row := []string{
			strconv.FormatFloat(r.Temp, 'g', -1, 64),
			strconv.FormatFloat(r.Vgs, 'g', -1, 64),
			strconv.FormatFloat(r.Vds, 'g', -1, 64),
			strconv.FormatFloat(r.Id, 'g', -1, 64),
			r.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole result, run metadata included.
func WriteJSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
