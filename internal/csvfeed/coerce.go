package csvfeed

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"florify-catalog/internal/domain"
)

const (
	feedDateLayout = "2/1/2006"
	isoDateLayout  = "2006-01-02"
)

// buildRecord maps trimmed column values onto a record. onBadPrice is called
// when a unit price is present but cannot be parsed.
func buildRecord(v map[string]string, onBadPrice func(col, raw string)) domain.CatalogRecord {
	rec := domain.CatalogRecord{
		ItemCode:         v[domain.ColItemCode],
		Barcode:          v[domain.ColBarcode],
		Description:      v[domain.ColDescription],
		ShortDescription: v[domain.ColShortDescription],
		CategoryCode:     v[domain.ColCategoryCode],
		CategoryLabel:    v[domain.ColCategoryLabel],
		GroupCode:        v[domain.ColGroupCode],
		GroupLabel:       v[domain.ColGroupLabel],
		RegisteredOn:     ParseDate(v[domain.ColRegisteredOn]),
		NCM:              v[domain.ColNCM],
		ClassCond:        v[domain.ColClassCond],
		CommercialGroup:  v[domain.ColCommercialGroup],
		LogisticsGroup:   v[domain.ColLogisticsGroup],
		CSTSP:            v[domain.ColCSTSP],
		CPC:              v[domain.ColCPC],
		EPC:              v[domain.ColEPC],
		UPC:              v[domain.ColUPC],
		Color:            v[domain.ColColor],
		Photo:            v[domain.ColPhoto],
		UnitOfMeasure:    v[domain.ColUnitOfMeasure],
		Packaging:        v[domain.ColPackaging],
	}

	if w, ok := ParseDecimal(v[domain.ColWeight]); ok {
		rec.Weight = &w
	}

	raw := v[domain.ColUnitPrice]
	price, ok := ParseDecimal(raw)
	if !ok && raw != "" && onBadPrice != nil {
		onBadPrice(domain.ColUnitPrice, raw)
	}
	rec.UnitPrice = price

	return rec
}

// ParseDecimal parses a decimal written with either a comma or a dot as the
// decimal mark. When both appear, dots are thousands separators.
// Returns false for empty or unparsable input.
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate converts DD/MM/YYYY into YYYY-MM-DD. Anything else, including
// impossible calendar dates, yields the empty string.
func ParseDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Count(s, "/") != 2 {
		return ""
	}
	t, err := time.Parse(feedDateLayout, s)
	if err != nil {
		return ""
	}
	return t.Format(isoDateLayout)
}

// FormatDecimal renders a decimal with a comma decimal mark.
func FormatDecimal(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

// FormatDate renders YYYY-MM-DD as DD/MM/YYYY; unknown input yields "".
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return ""
	}
	return t.Format("02/01/2006")
}
