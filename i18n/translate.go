// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"

	"github.com/leonelquinteros/gotext"

	"codeberg.org/mikyai/website/config"
)

var (
	// translators holds the parsed po/<locale>.po of every locale but the
	// base one. A locale without an entry shows msgids as they are.
	translators map[Locale]*gotext.Po

	// templates caches parsed placeholders, keyed by the translated text.
	templates sync.Map

	// reportedMissing deduplicates strict-mode warnings per locale and msgid.
	reportedMissing sync.Map
)

// Vars holds the values for the {{.Name}} placeholders of a message.
type Vars map[string]any

// UserError is an error whose message is already translated and safe to show
// to the visitor who caused it.
type UserError struct {
	msg string
}

// NewUserError translates msgid for the locale in ctx.
func NewUserError(ctx context.Context, msgid string, kv ...any) *UserError {
	return &UserError{msg: Tr(ctx, msgid, kv...)}
}

func (e *UserError) Error() string {
	return e.msg
}

// Tr translates msgid, the English interface text, into the locale stored in
// ctx. kv are alternating placeholder names and values:
//
//	i18n.Tr(ctx, "Request ID: {{.ID}}", "ID", id)
//
// An untranslated msgid is returned as is, or wrapped in ⟦ ⟧ when
// StrictMissingKeys is set.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	return translate(ctx, msgid, "", 0, pairs(kv))
}

// TrN picks the plural form of a message for n.
func TrN(ctx context.Context, singular, plural string, n int, kv ...any) string {
	return translate(ctx, singular, plural, n, pairs(kv))
}

func translate(ctx context.Context, msgid, plural string, n int, vars Vars) string {
	l := LocaleFrom(ctx)

	text := msgid
	if plural != "" && n != 1 {
		text = plural
	}

	if po := translators[l]; po != nil {
		switch {
		case plural != "" && po.IsTranslatedN(msgid, n):
			text = po.GetN(msgid, plural, n)
		case plural == "" && po.IsTranslated(msgid):
			text = po.Get(msgid)
		default:
			text = missing(l, msgid, text)
		}
	}

	return format(l, text, vars)
}

func strictMissingKeys() bool {
	return config.Global.Internationalization.StrictMissingKeys
}

// missing returns the text shown for an untranslated msgid.
func missing(l Locale, msgid, text string) string {
	if !strictMissingKeys() {
		return text
	}

	if _, seen := reportedMissing.LoadOrStore(string(l)+"\x00"+msgid, struct{}{}); !seen {
		Logger.Warn().
			Str("locale", string(l)).
			Str("msgid", msgid).
			Msg("Missing i18n translation")
	}

	return "⟦" + text + "⟧"
}

// format fills the placeholders of s. Text without placeholders is returned
// untouched, so a stray "{{" in a msgid only matters once it has data.
func format(l Locale, s string, vars Vars) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var tmpl *template.Template

	if cached, ok := templates.Load(s); ok {
		tmpl = cached.(*template.Template)
	} else {
		parsed, err := template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			return broken(l, s, err)
		}

		templates.Store(s, parsed)
		tmpl = parsed
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(vars)); err != nil {
		return broken(l, s, err)
	}

	return buf.String()
}

func broken(l Locale, s string, err error) string {
	if strictMissingKeys() {
		return "⟦" + s + "⟧"
	}

	Logger.Warn().Err(err).Str("locale", string(l)).Str("text", s).Msg("Bad message placeholders")

	return s
}

// pairs builds Vars from alternating key, value arguments. It panics on a
// malformed list, which is always a programming error.
func pairs(kv []any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n: odd number of placeholder arguments")
	}

	vars := make(Vars, len(kv)/2)

	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic("i18n: placeholder name must be a string")
		}

		vars[name] = kv[i+1]
	}

	return vars
}
