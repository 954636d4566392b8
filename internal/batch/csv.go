// Package batch submits a CSV of queries to the recommend API and
// collects the top URLs per query.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadQueries reads one query per CSV row (first column). A leading
// "Query" header row is skipped; blank rows are dropped.
func ReadQueries(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var queries []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read queries csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		q := strings.TrimSpace(record[0])
		if q == "" {
			continue
		}
		if len(queries) == 0 && strings.EqualFold(q, "Query") {
			continue
		}
		queries = append(queries, q)
	}
	return queries, nil
}

// WriteResults writes rows of Query,URL1..URLn. Every row is padded to
// exactly n URL columns.
func WriteResults(w io.Writer, rows []ResultRow, n int) error {
	writer := csv.NewWriter(w)

	header := make([]string, 0, n+1)
	header = append(header, "Query")
	for i := 1; i <= n; i++ {
		header = append(header, fmt.Sprintf("URL%d", i))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, n+1)
		record[0] = row.Query
		for i := 0; i < n && i < len(row.URLs); i++ {
			record[i+1] = row.URLs[i]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row for %q: %w", row.Query, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush results csv: %w", err)
	}
	return nil
}
