package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"florify-catalog/internal/logger"
	"florify-catalog/internal/service"
)

// ProductHandler serves catalog reads and the CSV export.
type ProductHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService service.CatalogServiceInterface) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GetProduct handles GET /api/v1/products/:barcode
func (h *ProductHandler) GetProduct(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode is required"})
		return
	}

	rec, err := h.catalogService.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to get product", slog.String("barcode", barcode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product"})
		return
	}

	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// FindProducts handles GET /api/v1/products?item_code=...
func (h *ProductHandler) FindProducts(c *gin.Context) {
	itemCode := strings.TrimSpace(c.Query("item_code"))
	if itemCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_code query parameter is required"})
		return
	}

	records, err := h.catalogService.FindByItemCode(c.Request.Context(), itemCode)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to find products", slog.String("item_code", itemCode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": records})
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// ExportCatalog handles GET /api/v1/products/export
func (h *ProductHandler) ExportCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	filename := "catalog-" + time.Now().UTC().Format("20060102-150405") + ".csv"

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Transfer-Encoding", "chunked")
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Status(http.StatusOK)

	count, err := h.catalogService.StreamCatalog(ctx, &ginStreamWriter{writer: c.Writer})
	if err != nil {
		// Headers are already sent.
		logger.ErrorContext(ctx, "Catalog export failed", slog.Int("records", count), slog.String("error", err.Error()))
		return
	}

	logger.InfoContext(ctx, "Catalog export completed", slog.Int("records", count))
}
