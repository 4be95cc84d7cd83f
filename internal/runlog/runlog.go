// Package runlog keeps an append-only CSV history of reconciliation runs so
// operators can see which statement files were processed, when, and with
// what outcome.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is one row in the run log.
type Entry struct {
	RunID         uuid.UUID
	Timestamp     time.Time
	StatementFile string
	BankFormat    string
	Transactions  int
	Matches       int
	MatchedAmount decimal.Decimal
	Errors        int
}

// Header is the CSV header for reconcile-log.csv.
const Header = "run_id,timestamp,statement_file,bank_format,transactions,matches,matched_amount,errors"

const (
	numFields    = 8
	logDir       = "logs"
	logFile      = "logs/reconcile-log.csv"
	colRunID     = 0
	colTimestamp = 1
	colFile      = 2
	colFormat    = 3
	colTxns      = 4
	colMatches   = 5
	colAmount    = 6
	colErrors    = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID.String()
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.StatementFile
	row[colFormat] = e.BankFormat
	row[colTxns] = strconv.Itoa(e.Transactions)
	row[colMatches] = strconv.Itoa(e.Matches)
	row[colAmount] = e.MatchedAmount.StringFixed(2)
	row[colErrors] = strconv.Itoa(e.Errors)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	runID, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run_id %q: %w", record[colRunID], err)
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	txns, err := strconv.Atoi(record[colTxns])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transactions %q: %w", record[colTxns], err)
	}

	matches, err := strconv.Atoi(record[colMatches])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing matches %q: %w", record[colMatches], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing matched_amount %q: %w", record[colAmount], err)
	}

	errCount, err := strconv.Atoi(record[colErrors])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing errors %q: %w", record[colErrors], err)
	}

	return Entry{
		RunID:         runID,
		Timestamp:     ts,
		StatementFile: record[colFile],
		BankFormat:    record[colFormat],
		Transactions:  txns,
		Matches:       matches,
		MatchedAmount: amount,
		Errors:        errCount,
	}, nil
}

// Append writes entries to <root>/logs/reconcile-log.csv, creating the file
// and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/reconcile-log.csv.
// Returns nil if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
