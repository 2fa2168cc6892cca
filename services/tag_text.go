package services

import (
	"strings"

	"price_tag_app_go/models"
)

// NormalizeTagText keeps field text as typed apart from line endings. Fields
// are opaque: markup-looking text and entity text are stored verbatim and
// escaped when rendered.
func NormalizeTagText(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// NormalizeTagRecord applies NormalizeTagText to every content field
func NormalizeTagRecord(r models.TagRecord) models.TagRecord {
	for _, f := range models.TagFields {
		f.Set(&r, NormalizeTagText(f.Value(r)))
	}
	return r
}
