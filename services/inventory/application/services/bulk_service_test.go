package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	invdomain "github.com/stockflow/backend/services/inventory/domain"
	"github.com/stockflow/backend/services/inventory/domain/models"
)

type fakeProductRepo struct {
	products   []*models.Product
	saveBatch  int
	batchSizes []int
}

func (f *fakeProductRepo) Save(_ context.Context, p *models.Product) error {
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) SaveBatch(_ context.Context, products []*models.Product) error {
	f.saveBatch++
	f.batchSizes = append(f.batchSizes, len(products))
	f.products = append(f.products, products...)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Product, error) {
	for _, p := range f.products {
		if p.UserID == userID && p.ID == id {
			return p, nil
		}
	}
	return nil, invdomain.ErrProductNotFound
}

func (f *fakeProductRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, userID, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	p, err := f.GetByID(context.Background(), userID, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, p := range f.products {
		if p.UserID == userID && p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return invdomain.ErrProductNotFound
}

func bulkProduct(t *testing.T, userID uuid.UUID, name, sku string, quantity int, price float64) *models.Product {
	t.Helper()
	s, err := models.NewSKU(sku)
	if err != nil {
		t.Fatalf("NewSKU: %v", err)
	}
	p, err := models.NewProduct(userID, name, s, "Electronics", quantity, 10, price, 0, "Acme")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	return p
}

// An export must be importable again with every product surviving the trip,
// including fields containing commas and quotes.
func TestExportImportRoundTrip(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProductRepo{}
	repo.products = []*models.Product{
		bulkProduct(t, userID, "Wireless Keyboard", "SKU-1001", 42, 79.99),
		bulkProduct(t, userID, `Cable, 2m "premium"`, "SKU-1002", 5, 9.99),
	}
	svc := NewBulkService(repo)

	exported, err := svc.ExportCSV(context.Background(), userID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	importRepo := &fakeProductRepo{}
	importSvc := NewBulkService(importRepo)
	result, err := importSvc.ImportCSV(context.Background(), userID, bytes.NewReader(exported))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d", result.Imported)
	}
	if importRepo.saveBatch != 1 || importRepo.batchSizes[0] != 2 {
		t.Fatalf("expected a single batch of 2, got %d batches %v", importRepo.saveBatch, importRepo.batchSizes)
	}

	got := importRepo.products
	if got[0].Name != "Wireless Keyboard" || got[0].Quantity != 42 || got[0].Price != 79.99 {
		t.Fatalf("first product did not survive round trip: %+v", got[0])
	}
	if got[1].Name != `Cable, 2m "premium"` {
		t.Fatalf("quoted name did not survive round trip: %q", got[1].Name)
	}
}

func TestImportCSV_MissingColumnsRejectedBeforeWrites(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewBulkService(repo)

	csvText := "Name,Category\nWidget,Tools\n"
	_, err := svc.ImportCSV(context.Background(), uuid.New(), strings.NewReader(csvText))

	var missing *invdomain.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if len(missing.Columns) != 2 || missing.Columns[0] != "Quantity" || missing.Columns[1] != "Price" {
		t.Fatalf("unexpected missing columns: %v", missing.Columns)
	}
	if repo.saveBatch != 0 {
		t.Fatal("rejected import must perform zero writes")
	}
}

func TestImportCSV_RowErrorsBlockTheBatch(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewBulkService(repo)

	csvText := strings.Join([]string{
		"Product Name,SKU Code,Qty,Unit Price",
		"Widget,SKU-2001,10,5.50",
		"Broken,SKU-2002,abc,5.50",
		"Gadget,SKU-2003,3,oops",
	}, "\n")

	_, err := svc.ImportCSV(context.Background(), uuid.New(), strings.NewReader(csvText))

	var batch *invdomain.BatchValidationError
	if !errors.As(err, &batch) {
		t.Fatalf("expected BatchValidationError, got %v", err)
	}
	if len(batch.RowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", batch.RowErrors)
	}
	if !strings.HasPrefix(batch.RowErrors[0], "Row 3:") || !strings.HasPrefix(batch.RowErrors[1], "Row 4:") {
		t.Fatalf("expected 1-based row numbers after header, got %v", batch.RowErrors)
	}
	if repo.saveBatch != 0 {
		t.Fatal("one bad row must block the whole batch with zero writes")
	}
}

func TestImportCSV_KeywordHeaderResolutionAndDefaults(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewBulkService(repo)
	userID := uuid.New()

	// Shuffled columns, keyword-matched header names, optional columns absent.
	csvText := "Unit Price,Stock Level,Product Name\n19.99,25,Desk Lamp\n"
	result, err := svc.ImportCSV(context.Background(), userID, strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", result.Imported)
	}

	p := repo.products[0]
	if p.Name != "Desk Lamp" || p.Quantity != 25 || p.Price != 19.99 {
		t.Fatalf("columns not resolved by keyword: %+v", p)
	}
	if p.Category != "Uncategorized" || p.Supplier != "Unknown" || p.MinLevel != 10 {
		t.Fatalf("expected defaults for absent columns: %+v", p)
	}
	if p.SKU.String() == "" {
		t.Fatal("expected generated placeholder SKU")
	}
	if p.UserID != userID {
		t.Fatal("expected tenant scope bound")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	svc := NewBulkService(&fakeProductRepo{})

	for name, body := range map[string]string{
		"empty":       "",
		"header only": "Name,Quantity,Price\n",
		"blank rows":  "Name,Quantity,Price\n,,\n  ,  ,  \n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.ImportCSV(context.Background(), uuid.New(), strings.NewReader(body)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
