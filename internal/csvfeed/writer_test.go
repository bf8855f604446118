package csvfeed_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
)

func TestWriter_RoundTrip(t *testing.T) {
	weight := decimal.RequireFromString("0.35")
	in := []domain.CatalogRecord{
		{
			ItemCode:      "IC-1",
			Barcode:       "789",
			Description:   "Rosa; Vermelha",
			RegisteredOn:  "2024-03-15",
			Weight:        &weight,
			UnitPrice:     decimal.RequireFromString("2.5"),
			UnitOfMeasure: "UN",
		},
		{Barcode: "790", Description: "Lirio \"Branco\""},
	}

	var buf bytes.Buffer
	w := csvfeed.NewWriter(&buf)
	for _, rec := range in {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Flush())

	rows, err := csvfeed.ReadAll(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	got := rows[0].Record
	assert.Equal(t, "IC-1", got.ItemCode)
	assert.Equal(t, "Rosa; Vermelha", got.Description)
	assert.Equal(t, "2024-03-15", got.RegisteredOn)
	require.NotNil(t, got.Weight)
	assert.True(t, weight.Equal(*got.Weight))
	assert.True(t, in[0].UnitPrice.Equal(got.UnitPrice))

	assert.Equal(t, "Lirio \"Branco\"", rows[1].Record.Description)
	assert.Nil(t, rows[1].Record.Weight)
}

func TestWriter_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	w := csvfeed.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), "item_code;codbarra;descricao")
}
