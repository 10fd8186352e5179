// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mikyai/website/config"
)

func TestTr(t *testing.T) {
	require.NoError(t, Setup())

	tests := []struct {
		name   string
		locale Locale
		msgid  string
		want   string
	}{
		{name: "base language is the msgid", locale: English, msgid: "Skip to content", want: "Skip to content"},
		{name: "spanish", locale: Spanish, msgid: "Skip to content", want: "Saltar al contenido"},
		{name: "italian", locale: Italian, msgid: "Page not found", want: "Pagina non trovata"},
		{name: "untranslated msgid is returned unchanged", locale: Italian, msgid: "No such string", want: "No such string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithLocale(context.Background(), tt.locale)
			assert.Equal(t, tt.want, Tr(ctx, tt.msgid))
		})
	}
}

func TestTrFormatting(t *testing.T) {
	require.NoError(t, Setup())

	ctx := WithLocale(context.Background(), Spanish)

	assert.Equal(t, "ID de solicitud: abc", Tr(ctx, "Request ID: {{.ID}}", "ID", "abc"))
	assert.Equal(t, "1 clave", TrN(ctx, "{{.Count}} key", "{{.Count}} keys", 1, "Count", 1))
	assert.Equal(t, "3 claves", TrN(ctx, "{{.Count}} key", "{{.Count}} keys", 3, "Count", 3))
	assert.Equal(t, "3 keys", TrN(context.Background(), "{{.Count}} key", "{{.Count}} keys", 3, "Count", 3))
}

func TestUserError(t *testing.T) {
	require.NoError(t, Setup())

	err := NewUserError(WithLocale(context.Background(), Italian), "Invalid password.")
	assert.EqualError(t, err, "Password non valida.")
}

func TestPairsPanicsOnBadArgs(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { pairs([]any{"Count"}) })
	assert.Panics(t, func() { pairs([]any{1, 2}) })
}

func TestStrictMissingKeys(t *testing.T) {
	require.NoError(t, Setup())

	config.Global.Internationalization.StrictMissingKeys = true
	t.Cleanup(func() { config.Global.Internationalization.StrictMissingKeys = false })

	ctx := WithLocale(context.Background(), Italian)

	assert.Equal(t, "⟦No such string⟧", Tr(ctx, "No such string"))
	assert.Equal(t, "Pagina non trovata", Tr(ctx, "Page not found"))
	assert.Equal(t, "No such string", Tr(WithLocale(context.Background(), English), "No such string"),
		"the base locale never misses")
	assert.Equal(t, "⟦{{.Nope}}⟧", Tr(context.Background(), "{{.Nope}}"), "broken placeholders are flagged")
}
