package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_Locales(t *testing.T) {
	Init("en")
	ctx := context.Background()

	assert.Equal(t, "Date", T(ctx, "csv.date"))
	assert.Equal(t, "Data", T(WithLocale(ctx, "it"), "csv.date"))
	assert.Equal(t, "Datum", T(WithLocale(ctx, "de"), "csv.date"))
}

func TestT_TemplateData(t *testing.T) {
	Init("en")
	ctx := context.Background()

	got := T(ctx, "report.title", map[string]any{"Month": "March", "Year": 2024})
	assert.Equal(t, "Monthly report - March 2024", got)
}

func TestT_FallsBackToMessageID(t *testing.T) {
	Init("en")
	assert.Equal(t, "does.not.exist", T(context.Background(), "does.not.exist"))
}

func TestT_UnknownLocaleUsesDefault(t *testing.T) {
	Init("it")
	ctx := WithLocale(context.Background(), "xx")

	// go-i18n falls back to the bundle default language (English).
	assert.Equal(t, "Date", T(ctx, "csv.date"))
}
