package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/wvmart/kiosk/internal/models"
	"github.com/wvmart/kiosk/internal/utils"
)

// OutOfStockLabel is the literal used by the products file (and the stock
// guide) for a depleted row.
const OutOfStockLabel = "재고 없음"

// stockUnitSuffix is tolerated on quantity cells, e.g. "10개".
const stockUnitSuffix = "개"

// CatalogRepository loads the product and promotion catalogs from flat files
// and serves the live in-memory catalog for the duration of the run.
type CatalogRepository struct {
	productsPath   string
	promotionsPath string

	catalog    models.Catalog
	promotions map[string]models.Promotion
}

// NewCatalogRepository creates a repository over the given catalog files.
func NewCatalogRepository(productsPath, promotionsPath string) *CatalogRepository {
	return &CatalogRepository{
		productsPath:   productsPath,
		promotionsPath: promotionsPath,
		promotions:     make(map[string]models.Promotion),
	}
}

// Load reads both catalog files and validates promotion linkage. A product
// row naming a promotion that is not defined is a fatal configuration error:
// the kiosk must refuse to start on a corrupt catalog.
func (r *CatalogRepository) Load() error {
	if err := r.loadPromotions(); err != nil {
		return err
	}
	if err := r.loadProducts(); err != nil {
		return err
	}

	for _, row := range r.catalog.Rows {
		if row.IsPromotional() {
			if _, ok := r.promotions[row.Promotion]; !ok {
				return fmt.Errorf("%w: product %q references promotion %q", utils.ErrPromotionNotDefined, row.Name, row.Promotion)
			}
		}
	}

	log.Info().
		Int("products", len(r.catalog.Rows)).
		Int("promotions", len(r.promotions)).
		Msg("catalog loaded")
	return nil
}

func (r *CatalogRepository) loadProducts() error {
	f, err := os.Open(r.productsPath)
	if err != nil {
		return fmt.Errorf("opening products file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	// Field count is validated per row so the error carries a row number.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading products file %s: %w", r.productsPath, err)
	}

	var rows []models.Product
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		if len(rec) != 4 {
			return fmt.Errorf("%w: products row %d has %d fields, want 4", utils.ErrCatalogCorrupted, i+1, len(rec))
		}

		row, err := parseProductRow(rec)
		if err != nil {
			return fmt.Errorf("%w: products row %d: %v", utils.ErrCatalogCorrupted, i+1, err)
		}
		rows = append(rows, row)
	}

	r.catalog = models.Catalog{Rows: rows}
	return nil
}

func parseProductRow(rec []string) (models.Product, error) {
	name := strings.TrimSpace(rec[0])
	if name == "" {
		return models.Product{}, fmt.Errorf("empty product name")
	}

	price, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil || price < 0 {
		return models.Product{}, fmt.Errorf("invalid price %q", rec[1])
	}

	row := models.Product{Name: name, Price: price}

	qty := strings.TrimSpace(rec[2])
	if qty == OutOfStockLabel {
		row.OutOfStock = true
	} else {
		n, err := strconv.Atoi(strings.TrimSuffix(qty, stockUnitSuffix))
		if err != nil || n < 0 {
			return models.Product{}, fmt.Errorf("invalid quantity %q", rec[2])
		}
		row.SetQuantity(n)
	}

	promo := strings.TrimSpace(rec[3])
	if promo != "" && !strings.EqualFold(promo, "null") {
		row.Promotion = promo
	}
	return row, nil
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name")
}

// promotionsDoc mirrors the promotions.yaml layout.
type promotionsDoc struct {
	Promotions []promotionRow `yaml:"promotions"`
}

type promotionRow struct {
	Name      string `yaml:"name"`
	Buy       int    `yaml:"buy"`
	Get       int    `yaml:"get"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

func (r *CatalogRepository) loadPromotions() error {
	data, err := os.ReadFile(r.promotionsPath)
	if err != nil {
		return fmt.Errorf("opening promotions file: %w", err)
	}

	var doc promotionsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing promotions file %s: %w", r.promotionsPath, err)
	}

	for _, row := range doc.Promotions {
		promo, err := parsePromotionRow(row)
		if err != nil {
			return fmt.Errorf("%w: promotion %q: %v", utils.ErrCatalogCorrupted, row.Name, err)
		}
		r.promotions[promo.Name] = promo
	}
	return nil
}

func parsePromotionRow(row promotionRow) (models.Promotion, error) {
	if row.Name == "" {
		return models.Promotion{}, fmt.Errorf("empty promotion name")
	}
	if row.Buy < 1 || row.Get < 1 {
		return models.Promotion{}, fmt.Errorf("buy and get must be >= 1, got buy=%d get=%d", row.Buy, row.Get)
	}

	start, err := time.Parse("2006-01-02", row.StartDate)
	if err != nil {
		return models.Promotion{}, fmt.Errorf("invalid start_date %q", row.StartDate)
	}
	end, err := time.Parse("2006-01-02", row.EndDate)
	if err != nil {
		return models.Promotion{}, fmt.Errorf("invalid end_date %q", row.EndDate)
	}
	if end.Before(start) {
		return models.Promotion{}, fmt.Errorf("end_date precedes start_date")
	}

	return models.Promotion{
		Name:      row.Name,
		Buy:       row.Buy,
		Get:       row.Get,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// Catalog returns the live catalog snapshot.
func (r *CatalogRepository) Catalog() *models.Catalog {
	return &r.catalog
}

// Replace swaps the live catalog wholesale. Callers clone, edit the clone,
// then swap; the kiosk has a single writer so no locking is needed.
func (r *CatalogRepository) Replace(c models.Catalog) {
	r.catalog = c
}

// Promotions returns the promotion definitions by name.
func (r *CatalogRepository) Promotions() map[string]models.Promotion {
	return r.promotions
}

// DeductRegularStock subtracts qty from the non-promotional row of a product,
// flooring at zero. Used when the customer accepts full-price billing for the
// shortage part of a promotional order.
func (r *CatalogRepository) DeductRegularStock(name string, qty int) {
	next := r.catalog.Clone()
	for _, row := range next.RowsFor(name) {
		if !row.IsPromotional() {
			row.SetQuantity(row.Sellable() - qty)
		}
	}
	r.Replace(next)
}

// StockGuide renders the current-stock listing shown when a customer walks up.
func (r *CatalogRepository) StockGuide() string {
	var b strings.Builder
	for _, row := range r.catalog.Rows {
		b.WriteString("- ")
		b.WriteString(row.Name)
		b.WriteString(" ")
		b.WriteString(utils.FormatMoney(row.Price))
		b.WriteString("원 ")
		if row.OutOfStock {
			b.WriteString(OutOfStockLabel)
		} else {
			b.WriteString(strconv.Itoa(row.Quantity))
			b.WriteString(stockUnitSuffix)
		}
		if row.IsPromotional() {
			b.WriteString(" ")
			b.WriteString(row.Promotion)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
