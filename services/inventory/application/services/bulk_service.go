package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"

	invdomain "github.com/stockflow/backend/services/inventory/domain"
	"github.com/stockflow/backend/services/inventory/domain/models"
	"github.com/stockflow/backend/services/inventory/domain/repositories"
	domainsvcs "github.com/stockflow/backend/services/inventory/domain/services"
)

// ExportFilename is the attachment name for CSV exports.
const ExportFilename = "stockflow_inventory_export.csv"

// importDefaults are applied to optional columns missing from the import file.
const (
	defaultCategory = "Uncategorized"
	defaultSupplier = "Unknown"
	defaultMinLevel = 10
)

var exportHeader = []string{"ID", "Name", "SKU", "Category", "Quantity", "Min Level", "Price", "Supplier"}

// columnKeywords resolve semantic columns by case-insensitive substring match
// against header cells, so no fixed column order is required.
var columnKeywords = map[string][]string{
	"name":     {"name", "product"},
	"sku":      {"sku", "code"},
	"category": {"category", "type"},
	"quantity": {"quantity", "qty", "stock"},
	"price":    {"price", "cost"},
	"supplier": {"supplier", "vendor"},
}

// BulkService handles CSV export and import of the product collection.
type BulkService struct {
	repo repositories.ProductRepository
}

// NewBulkService returns a BulkService backed by the given repository.
func NewBulkService(repo repositories.ProductRepository) *BulkService {
	return &BulkService{repo: repo}
}

// ExportCSV serializes the tenant's full product collection to CSV with the
// fixed 8-column header. Fields containing commas or quotes are escaped by
// the writer.
func (s *BulkService) ExportCSV(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	products, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return EncodeProductsCSV(products)
}

// EncodeProductsCSV renders products as CSV text, one row per product.
func EncodeProductsCSV(products []*models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.ID.String(),
			p.Name,
			p.SKU.String(),
			p.Category,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinLevel),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.Supplier,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ImportResult reports a successful import.
type ImportResult struct {
	Imported int
}

// ImportCSV parses and validates the uploaded CSV and, only when every row is
// valid, inserts all rows in a single transaction. Validation is
// all-or-nothing: any row failure blocks the batch with zero writes.
func (s *BulkService) ImportCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (*ImportResult, error) {
	products, err := ParseImportCSV(userID, r)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveBatch(ctx, products); err != nil {
		return nil, fmt.Errorf("import products: %w", err)
	}
	return &ImportResult{Imported: len(products)}, nil
}

// ParseImportCSV decodes CSV text into validated product aggregates.
// The header row is resolved by keyword matching; name, quantity and price
// are required columns. Row-level failures are collected into a
// BatchValidationError instead of failing fast.
func ParseImportCSV(userID uuid.UUID, r io.Reader) ([]*models.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	records = dropEmptyRows(records)
	if len(records) < 2 {
		return nil, errors.New("file appears to be empty or missing data rows")
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	var (
		products  []*models.Product
		rowErrors []string
	)
	for i, record := range records[1:] {
		lineNo := i + 2 // 1-based, after the header
		product, err := buildImportedProduct(userID, record, cols)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", lineNo, err))
			continue
		}
		products = append(products, product)
	}

	if len(rowErrors) > 0 {
		return nil, &invdomain.BatchValidationError{RowErrors: rowErrors}
	}
	if len(products) == 0 {
		return nil, errors.New("no valid data rows found")
	}
	return products, nil
}

// columnMap holds resolved column indexes; -1 means the column is absent.
type columnMap map[string]int

func resolveColumns(header []string) (columnMap, error) {
	cols := columnMap{}
	for name, keywords := range columnKeywords {
		cols[name] = -1
		for idx, cell := range header {
			cell = strings.ToLower(strings.TrimSpace(cell))
			for _, kw := range keywords {
				if strings.Contains(cell, kw) {
					cols[name] = idx
					break
				}
			}
			if cols[name] != -1 {
				break
			}
		}
	}

	var missing []string
	if cols["name"] == -1 {
		missing = append(missing, "Name")
	}
	if cols["quantity"] == -1 {
		missing = append(missing, "Quantity")
	}
	if cols["price"] == -1 {
		missing = append(missing, "Price")
	}
	if len(missing) > 0 {
		return nil, &invdomain.MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

func buildImportedProduct(userID uuid.UUID, record []string, cols columnMap) (*models.Product, error) {
	cell := func(name string) string {
		idx := cols[name]
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := cell("name")
	quantity, err := strconv.Atoi(cell("quantity"))
	if err != nil {
		return nil, errors.New("invalid number format")
	}
	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return nil, errors.New("invalid number format")
	}

	skuStr := cell("sku")
	if skuStr == "" {
		skuStr = placeholderSKU()
	}
	category := cell("category")
	if category == "" {
		category = defaultCategory
	}
	supplier := cell("supplier")
	if supplier == "" {
		supplier = defaultSupplier
	}

	sku, err := models.NewSKU(skuStr)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return nil, err
	}
	product, err := models.NewProduct(userID, name, sku, category, quantity, defaultMinLevel, price, 0, supplier)
	if err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateProductForCreation(product); err != nil {
		return nil, err
	}
	return product, nil
}

func placeholderSKU() string {
	return fmt.Sprintf("SKU-%04d", rand.IntN(10000))
}

func dropEmptyRows(records [][]string) [][]string {
	out := records[:0]
	for _, record := range records {
		empty := true
		for _, cell := range record {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, record)
		}
	}
	return out
}
