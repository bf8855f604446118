package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Feed column names, as they appear in the supplier CSV header.
const (
	ColItemCode         = "item_code"
	ColBarcode          = "codbarra"
	ColDescription      = "descricao"
	ColShortDescription = "descricao_curta"
	ColCategoryCode     = "cod_categoria"
	ColCategoryLabel    = "descricao_categoria"
	ColGroupCode        = "cod_grupo"
	ColGroupLabel       = "descricao_grupo"
	ColRegisteredOn     = "data_cadastro"
	ColNCM              = "ncm"
	ColClassCond        = "class_cond"
	ColCommercialGroup  = "grupo_com"
	ColLogisticsGroup   = "grupo_log"
	ColCSTSP            = "cst_sp"
	ColWeight           = "peso"
	ColCPC              = "cpc"
	ColEPC              = "epc"
	ColUPC              = "upc"
	ColColor            = "cor"
	ColPhoto            = "foto"
	ColUnitPrice        = "preco_unitario"
	ColUnitOfMeasure    = "unidade_medida"
	ColPackaging        = "embalagem"
)

// FeedColumns lists every column of the catalog feed in export order.
var FeedColumns = []string{
	ColItemCode, ColBarcode, ColDescription, ColShortDescription,
	ColCategoryCode, ColCategoryLabel, ColGroupCode, ColGroupLabel,
	ColRegisteredOn, ColNCM, ColClassCond, ColCommercialGroup,
	ColLogisticsGroup, ColCSTSP, ColWeight, ColCPC, ColEPC, ColUPC,
	ColColor, ColPhoto, ColUnitPrice, ColUnitOfMeasure, ColPackaging,
}

// CatalogRecord is a persisted catalog product. Barcode is its only identity;
// ItemCode is informational and may repeat across records.
type CatalogRecord struct {
	ID               int64            `json:"id,omitempty"`
	ItemCode         string           `json:"item_code,omitempty"`
	Barcode          string           `json:"codbarra"`
	Description      string           `json:"descricao"`
	ShortDescription string           `json:"descricao_curta,omitempty"`
	CategoryCode     string           `json:"cod_categoria,omitempty"`
	CategoryLabel    string           `json:"descricao_categoria,omitempty"`
	GroupCode        string           `json:"cod_grupo,omitempty"`
	GroupLabel       string           `json:"descricao_grupo,omitempty"`
	RegisteredOn     string           `json:"data_cadastro,omitempty"`
	NCM              string           `json:"ncm,omitempty"`
	ClassCond        string           `json:"class_cond,omitempty"`
	CommercialGroup  string           `json:"grupo_com,omitempty"`
	LogisticsGroup   string           `json:"grupo_log,omitempty"`
	CSTSP            string           `json:"cst_sp,omitempty"`
	Weight           *decimal.Decimal `json:"peso,omitempty"`
	CPC              string           `json:"cpc,omitempty"`
	EPC              string           `json:"epc,omitempty"`
	UPC              string           `json:"upc,omitempty"`
	Color            string           `json:"cor,omitempty"`
	Photo            string           `json:"foto,omitempty"`
	UnitPrice        decimal.Decimal  `json:"preco_unitario"`
	UnitOfMeasure    string           `json:"unidade_medida,omitempty"`
	Packaging        string           `json:"embalagem,omitempty"`
	ImportBatchID    *string          `json:"importacao_id,omitempty"`
	UpdatedAt        *time.Time       `json:"lastupdatedate,omitempty"`
}

// Field is a single named feed value of a record.
type Field struct {
	Name  string
	Value any
}

// FeedFields returns the record's feed values in FeedColumns order.
// An absent weight is reported as a nil Value.
func (r CatalogRecord) FeedFields() []Field {
	var weight any
	if r.Weight != nil {
		weight = *r.Weight
	}
	return []Field{
		{ColItemCode, r.ItemCode},
		{ColBarcode, r.Barcode},
		{ColDescription, r.Description},
		{ColShortDescription, r.ShortDescription},
		{ColCategoryCode, r.CategoryCode},
		{ColCategoryLabel, r.CategoryLabel},
		{ColGroupCode, r.GroupCode},
		{ColGroupLabel, r.GroupLabel},
		{ColRegisteredOn, r.RegisteredOn},
		{ColNCM, r.NCM},
		{ColClassCond, r.ClassCond},
		{ColCommercialGroup, r.CommercialGroup},
		{ColLogisticsGroup, r.LogisticsGroup},
		{ColCSTSP, r.CSTSP},
		{ColWeight, weight},
		{ColCPC, r.CPC},
		{ColEPC, r.EPC},
		{ColUPC, r.UPC},
		{ColColor, r.Color},
		{ColPhoto, r.Photo},
		{ColUnitPrice, r.UnitPrice},
		{ColUnitOfMeasure, r.UnitOfMeasure},
		{ColPackaging, r.Packaging},
	}
}

// Overlay returns r with the listed feed columns taken from incoming. A nil
// columns takes every feed column. The barcode of r is always kept.
func (r CatalogRecord) Overlay(incoming CatalogRecord, columns []string) CatalogRecord {
	if columns == nil {
		columns = FeedColumns
	}
	out := r
	for _, col := range columns {
		switch col {
		case ColItemCode:
			out.ItemCode = incoming.ItemCode
		case ColDescription:
			out.Description = incoming.Description
		case ColShortDescription:
			out.ShortDescription = incoming.ShortDescription
		case ColCategoryCode:
			out.CategoryCode = incoming.CategoryCode
		case ColCategoryLabel:
			out.CategoryLabel = incoming.CategoryLabel
		case ColGroupCode:
			out.GroupCode = incoming.GroupCode
		case ColGroupLabel:
			out.GroupLabel = incoming.GroupLabel
		case ColRegisteredOn:
			out.RegisteredOn = incoming.RegisteredOn
		case ColNCM:
			out.NCM = incoming.NCM
		case ColClassCond:
			out.ClassCond = incoming.ClassCond
		case ColCommercialGroup:
			out.CommercialGroup = incoming.CommercialGroup
		case ColLogisticsGroup:
			out.LogisticsGroup = incoming.LogisticsGroup
		case ColCSTSP:
			out.CSTSP = incoming.CSTSP
		case ColWeight:
			out.Weight = incoming.Weight
		case ColCPC:
			out.CPC = incoming.CPC
		case ColEPC:
			out.EPC = incoming.EPC
		case ColUPC:
			out.UPC = incoming.UPC
		case ColColor:
			out.Color = incoming.Color
		case ColPhoto:
			out.Photo = incoming.Photo
		case ColUnitPrice:
			out.UnitPrice = incoming.UnitPrice
		case ColUnitOfMeasure:
			out.UnitOfMeasure = incoming.UnitOfMeasure
		case ColPackaging:
			out.Packaging = incoming.Packaging
		}
	}
	return out
}
