package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteRunsCSV writes runs as CSV with a header row.
func WriteRunsCSV(w io.Writer, runs []Run) error {
	if err := gocsv.Marshal(runs, w); err != nil {
		return fmt.Errorf("storage: writing runs csv: %w", err)
	}
	return nil
}
