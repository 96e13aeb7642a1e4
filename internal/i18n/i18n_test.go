package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LocaleMatching(t *testing.T) {
	assert.Equal(t, "es", New("es").Tag().String())
	assert.Equal(t, "Material Agregado", New("es").T("toast.added.title"))
	assert.Equal(t, "Material Added", New("en").T("toast.added.title"))

	// region variants resolve to their base
	assert.Equal(t, "Material Added", New("en-US").T("toast.added.title"))

	// unknown locales fall back to the default (Spanish)
	assert.Equal(t, "Material Agregado", New("de").T("toast.added.title"))
	assert.Equal(t, "Material Agregado", New("").T("toast.added.title"))
}

func TestT_Formatting(t *testing.T) {
	b := New("es")
	assert.Equal(t, "Bolts ha sido agregado al inventario.", b.T("toast.added.body", "Bolts"))
	assert.Equal(t, "¡Stock bajo! Cantidad: 3, Umbral: 5", b.T("tooltip.lowstock", 3, 5))
}

func TestT_UnknownIDIsVisible(t *testing.T) {
	assert.Equal(t, "no.such.id", New("es").T("no.such.id"))
}

func TestTables_HaveSameKeys(t *testing.T) {
	for id := range messagesES {
		_, ok := messagesEN[id]
		assert.True(t, ok, "missing english message %q", id)
	}
	for id := range messagesEN {
		_, ok := messagesES[id]
		assert.True(t, ok, "missing spanish message %q", id)
	}
}
