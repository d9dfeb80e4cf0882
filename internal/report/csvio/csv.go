package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"dapka/internal/lib"
	"dapka/internal/models"
)

// DefaultFileName is the CSV written by a collection run.
const DefaultFileName = "pr_reviews.csv"

var ErrBadHeader = errors.New("csv header does not match record columns")

// encoding/csv turns \r\n inside a quoted field into \n on read, so carriage
// returns in free text are stored as the two characters `\r` and backslashes are doubled.
var (
	bodyEscaper   = strings.NewReplacer(`\`, `\\`, "\r", `\r`)
	bodyUnescaper = strings.NewReplacer(`\\`, `\`, `\r`, "\r")
)

// Write stores records at path. An empty table is logged and skipped, leaving no file behind.
func Write(log *slog.Logger, path string, records []models.Record) error {
	const op = "csvio.Write"

	if len(records) == 0 {
		log.Warn("no data provided to write to CSV", slog.String("path", path))
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return lib.Err(op, err)
	}
	defer f.Close()

	if err := Encode(f, records); err != nil {
		return lib.Err(op, err)
	}
	if err := f.Close(); err != nil {
		return lib.Err(op, err)
	}

	log.Info("data written to CSV", slog.String("path", path), slog.Int("rows", len(records)))
	return nil
}

// Encode writes the header and one line per record. Null values become empty cells.
func Encode(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.RecordColumns); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(toRow(&records[i])); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func toRow(r *models.Record) []string {
	row := make([]string, 0, len(models.RecordColumns))
	for _, col := range models.RecordColumns {
		v := r.Value(col)
		if col == models.ColBody {
			v = bodyEscaper.Replace(v)
		}
		row = append(row, v)
	}
	return row
}

// Read loads a table previously written by Write.
func Read(path string) ([]models.Record, error) {
	const op = "csvio.Read"

	f, err := os.Open(path)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	return records, nil
}

// Decode parses CSV produced by Encode. Columns may come in any order but all must be present.
func Decode(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Record{}, nil
		}
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range models.RecordColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrBadHeader, col)
		}
	}

	records := []models.Record{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		rec, err := fromRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func fromRow(row []string, index map[string]int) (models.Record, error) {
	get := func(col string) string { return row[index[col]] }

	var (
		rec models.Record
		err error
	)

	if rec.PRNumber, err = strconv.Atoi(get(models.ColPRNumber)); err != nil {
		return rec, fmt.Errorf("%s: %w", models.ColPRNumber, err)
	}
	if v := get(models.ColReviewID); v != "" {
		rec.ReviewID = &v
	}
	rec.AuthorLogin = get(models.ColAuthorLogin)
	rec.Body = bodyUnescaper.Replace(get(models.ColBody))
	rec.ReviewState = get(models.ColReviewState)
	if v := get(models.ColReviewedAt); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", models.ColReviewedAt, err)
		}
		rec.ReviewedAt = &t
	}
	rec.Owner = get(models.ColOwner)
	rec.Repo = get(models.ColRepo)
	if rec.Additions, err = strconv.Atoi(get(models.ColAdditions)); err != nil {
		return rec, fmt.Errorf("%s: %w", models.ColAdditions, err)
	}
	if rec.Deletions, err = strconv.Atoi(get(models.ColDeletions)); err != nil {
		return rec, fmt.Errorf("%s: %w", models.ColDeletions, err)
	}
	if v := get(models.ColTimeToMerge); v != "" {
		ttm, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", models.ColTimeToMerge, err)
		}
		rec.TimeToMerge = &ttm
	}

	return rec, nil
}
