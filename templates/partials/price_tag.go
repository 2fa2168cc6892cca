package partials

import (
	"context"
	"io"

	"price_tag_app_go/models"
	"price_tag_app_go/services/layout"

	"github.com/a-h/templ"
)

// PriceTag renders one tag on the master frame. The frame is always authored
// at 1122x794 and shrunk by a single uniform scale around its centre, so the
// artwork letterboxes instead of stretching. Slot positions live in app.css
// as percentages of the frame.
func PriceTag(tag models.TagRecord, background string, scale float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.rawf(`<div class="tag-frame" data-tag-id="%d" style="width: %gpx; height: %gpx; transform: scale(%s);">`,
			tag.ID, layout.MasterWidth, layout.MasterHeight, layout.FormatScale(scale))

		if background != "" {
			h.rawf(`<img class="tag-bg" src="%s" alt="" draggable="false">`, esc(background))
		}

		h.raw(`<div class="tag-slots">`)

		h.raw(`<div class="slot-heading">`)
		h.raw(`<h2 class="slot-description truncate">`)
		h.text(tag.ProductDescription)
		h.raw(`</h2><h3 class="slot-brand truncate">`)
		h.text(tag.Brand)
		h.raw(`</h3><p class="slot-code truncate">`)
		h.text(tag.Code)
		h.raw(`</p></div>`)

		h.raw(`<div class="slot-installments"><div class="slot-installments-left"><span class="slot-installments-count">`)
		h.text(tag.InstallmentsCount)
		h.raw(`</span><div class="slot-installments-text">`)
		h.text(tag.InstallmentsText)
		h.raw(`</div></div><div class="slot-installments-right"><span class="currency">$</span><span class="slot-installments-price truncate">`)
		h.text(tag.InstallmentsPrice)
		h.raw(`</span></div></div>`)

		// the list price label is carried as data but not printed on the artwork
		h.raw(`<div class="slot-list-price"><div class="slot-list-price-value"><span class="currency">$</span><span class="truncate">`)
		h.text(tag.ListPrice)
		h.raw(`</span></div></div>`)

		h.raw(`<div class="slot-validity truncate">`)
		h.text(tag.ValidityDate)
		h.raw(`</div>`)

		h.raw(`</div></div>`)
		return h.err
	})
}
