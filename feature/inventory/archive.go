package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"shortage-tracker/feature/inventory/reconcile"

	"github.com/minio/minio-go/v7"
)

// ErrNoStorage is returned when a bucket-backed operation is requested but
// no object storage client is configured.
var ErrNoStorage = errors.New("object storage not configured")

// ParseCSVRows reads a CSV stream into raw import rows, keyed by the header
// line. The engine only sees the parsed rows; this is the spreadsheet ingest
// boundary. Separator is auto-detected between comma and semicolon, since
// Italian locale exports use the semicolon.
func ParseCSVRows(r io.Reader) ([]reconcile.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import data: %w", err)
	}

	comma := ','
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first := data[:i]
		if bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}) {
			comma = ';'
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	rows := make([]reconcile.Row, 0)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		row := make(reconcile.Row, len(header))
		for i, h := range header {
			if i < len(fields) {
				row[h] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchImportRows downloads a CSV object from the configured bucket and
// parses it into import rows.
func (s *Service) FetchImportRows(ctx context.Context, objectName string) ([]reconcile.Row, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get import object %s: %w", objectName, err)
	}
	defer reader.Close()

	return ParseCSVRows(reader)
}

// UploadDuplicatesReport archives the current cross-department duplicates
// report as JSON in the configured bucket and returns the object name.
func (s *Service) UploadDuplicatesReport(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", ErrNoStorage
	}

	groups, err := s.Duplicates(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal duplicates report: %w", err)
	}

	objectName := fmt.Sprintf("reports/duplicates-%s.json", time.Now().UTC().Format("20060102-150405"))
	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload duplicates report: %w", err)
	}
	return objectName, nil
}
