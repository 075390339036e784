package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// csvColumns is the fixed export column order and the set of columns an
// import file must carry (matched case-insensitively).
var csvColumns = []string{"name", "tax_id", "address", "contact_email"}

type ImportRowError struct {
	RowNumber int               `json:"row_number"`
	Field     string            `json:"field"`
	Error     string            `json:"error"`
	RawData   map[string]string `json:"raw_data"`
}

type ImportResult struct {
	TotalRows    int              `json:"total_rows"`
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	Errors       []ImportRowError `json:"errors"`
}

// ExportVendorsCSV serializes vendors in a fixed column order. An empty
// input still produces the header row.
func (s *vendorService) ExportVendorsCSV(vendors []VendorResponse) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvColumns); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, v := range vendors {
		record := []string{v.Name, v.TaxID, v.Address, v.ContactEmail}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return sb.String(), nil
}

// ImportVendorsCSV processes rows independently: file-level problems
// (unparseable input, missing columns) abort the whole import, while
// per-row problems are recorded and the batch continues. Rows go through
// CreateVendor, so a tax_id inserted by an earlier row is already visible
// to the duplicate check of later rows in the same file.
func (s *vendorService) ImportVendorsCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return ImportResult{}, fmt.Errorf("%w: file is empty", ErrInvalidCSV)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range csvColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return ImportResult{}, fmt.Errorf("%w: missing required columns: %s", ErrInvalidCSV, strings.Join(missing, ", "))
	}

	result := ImportResult{Errors: []ImportRowError{}}

	// First data row is row 2: the header occupies row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		result.TotalRows++

		cell := func(col string) string {
			idx := colIndex[col]
			if idx >= len(record) {
				return ""
			}
			return record[idx]
		}
		rawData := make(map[string]string, len(csvColumns))
		for _, col := range csvColumns {
			rawData[col] = cell(col)
		}

		name := strings.TrimSpace(cell("name"))
		taxID := strings.TrimSpace(cell("tax_id"))

		if name == "" {
			result.Errors = append(result.Errors, ImportRowError{
				RowNumber: rowNum,
				Field:     "name",
				Error:     "Name is required",
				RawData:   rawData,
			})
			continue
		}
		if taxID == "" {
			result.Errors = append(result.Errors, ImportRowError{
				RowNumber: rowNum,
				Field:     "tax_id",
				Error:     "Tax ID is required",
				RawData:   rawData,
			})
			continue
		}

		// Duplicate check against live storage state, so earlier rows of
		// this same file count as existing vendors.
		existing, err := s.vendorRepo.FindByTaxID(ctx, taxID)
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to check tax ID: %w", err)
		}
		if existing != nil {
			result.Errors = append(result.Errors, ImportRowError{
				RowNumber: rowNum,
				Field:     "tax_id",
				Error:     fmt.Sprintf("Vendor with tax ID '%s' already exists", taxID),
				RawData:   rawData,
			})
			continue
		}

		_, err = s.CreateVendor(ctx, CreateVendorRequest{
			Name:         name,
			TaxID:        taxID,
			Address:      cell("address"),
			ContactEmail: cell("contact_email"),
		})
		if err != nil {
			field := "general"
			if errors.Is(err, ErrDuplicateTaxID) {
				field = "tax_id"
			}
			result.Errors = append(result.Errors, ImportRowError{
				RowNumber: rowNum,
				Field:     field,
				Error:     err.Error(),
				RawData:   rawData,
			})
			continue
		}

		result.SuccessCount++
	}

	result.ErrorCount = len(result.Errors)
	return result, nil
}
