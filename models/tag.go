package models

import (
	"fmt"
)

// TagPoolSize is the number of tag records every workspace holds
const TagPoolSize = 4

// TagRecord is one editable price tag. All content fields are opaque text;
// they are positioned by the layout engine but never parsed.
type TagRecord struct {
	ID int `json:"id"`

	ProductDescription string `json:"product_description" form:"product_description"`
	Brand              string `json:"brand" form:"brand"`
	Code               string `json:"code" form:"code"`
	InstallmentsCount  string `json:"installments_count" form:"installments_count"`
	InstallmentsText   string `json:"installments_text" form:"installments_text"`
	InstallmentsPrice  string `json:"installments_price" form:"installments_price"`
	ListPriceLabel     string `json:"list_price_label" form:"list_price_label"`
	ListPrice          string `json:"list_price" form:"list_price"`
	ValidityDate       string `json:"validity_date" form:"validity_date"`
}

// NewDefaultTagRecord returns a record filled with the placeholder values
// shown when the editor first opens
func NewDefaultTagRecord(id int) TagRecord {
	return TagRecord{
		ID:                 id,
		ProductDescription: "DESCRIPCIÓN DE PRODUCTO",
		Brand:              "MARCA",
		Code:               "CÓD. 32513",
		InstallmentsCount:  "24",
		InstallmentsText:   "CUOTITAS TEXTO\nEDITABLE PARA TC Ó CP",
		InstallmentsPrice:  "29.999",
		ListPriceLabel:     "PRECIO LISTA",
		ListPrice:          "119.999",
		ValidityDate:       "DISPONIBLE HASTA EL 31-12-2026",
	}
}

// NewDefaultTagPool returns the initial pool of TagPoolSize records with ids 0..n-1
func NewDefaultTagPool() []TagRecord {
	pool := make([]TagRecord, TagPoolSize)
	for i := range pool {
		pool[i] = NewDefaultTagRecord(i)
	}
	return pool
}

// TagField describes one editable field of a TagRecord
type TagField struct {
	Name      string // form / column name
	Label     string
	Multiline bool
	get       func(*TagRecord) string
	set       func(*TagRecord, string)
}

// Value returns the field's value in r
func (f TagField) Value(r TagRecord) string {
	return f.get(&r)
}

// Set writes v into the field of r
func (f TagField) Set(r *TagRecord, v string) {
	f.set(r, v)
}

// TagFields lists the content fields in editor order
var TagFields = []TagField{
	{Name: "product_description", Label: "Descripción Producto",
		get: func(r *TagRecord) string { return r.ProductDescription }, set: func(r *TagRecord, v string) { r.ProductDescription = v }},
	{Name: "brand", Label: "Marca",
		get: func(r *TagRecord) string { return r.Brand }, set: func(r *TagRecord, v string) { r.Brand = v }},
	{Name: "code", Label: "Código",
		get: func(r *TagRecord) string { return r.Code }, set: func(r *TagRecord, v string) { r.Code = v }},
	{Name: "installments_count", Label: "Nº Cuotas",
		get: func(r *TagRecord) string { return r.InstallmentsCount }, set: func(r *TagRecord, v string) { r.InstallmentsCount = v }},
	{Name: "installments_price", Label: "Valor Cuota",
		get: func(r *TagRecord) string { return r.InstallmentsPrice }, set: func(r *TagRecord, v string) { r.InstallmentsPrice = v }},
	{Name: "installments_text", Label: "Texto Cuotas", Multiline: true,
		get: func(r *TagRecord) string { return r.InstallmentsText }, set: func(r *TagRecord, v string) { r.InstallmentsText = v }},
	{Name: "list_price_label", Label: "Etiqueta Precio Lista",
		get: func(r *TagRecord) string { return r.ListPriceLabel }, set: func(r *TagRecord, v string) { r.ListPriceLabel = v }},
	{Name: "list_price", Label: "Precio Lista",
		get: func(r *TagRecord) string { return r.ListPrice }, set: func(r *TagRecord, v string) { r.ListPrice = v }},
	{Name: "validity_date", Label: "Vigencia",
		get: func(r *TagRecord) string { return r.ValidityDate }, set: func(r *TagRecord, v string) { r.ValidityDate = v }},
}

// LayoutMode selects how many tags are printed per A4 sheet
type LayoutMode string

const (
	LayoutSingle LayoutMode = "1x"
	LayoutDouble LayoutMode = "2x"
	LayoutQuad   LayoutMode = "4x"
)

// LayoutModes lists the modes in the order the editor offers them
var LayoutModes = []LayoutMode{LayoutSingle, LayoutDouble, LayoutQuad}

// ParseLayoutMode validates a mode coming from user input
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch LayoutMode(s) {
	case LayoutSingle, LayoutDouble, LayoutQuad:
		return LayoutMode(s), nil
	}
	return "", fmt.Errorf("unknown layout mode %q", s)
}

// VisibleCount is the number of tags shown in this mode
func (m LayoutMode) VisibleCount() int {
	switch m {
	case LayoutDouble:
		return 2
	case LayoutQuad:
		return 4
	default:
		return 1
	}
}

// Label is the editor button caption for the mode
func (m LayoutMode) Label() string {
	return fmt.Sprintf("%d x Hoja", m.VisibleCount())
}
