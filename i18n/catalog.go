// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Catalog holds the page copy for one locale as a flat map of dotted keys,
// e.g. "howItWorks.faq.questions.3.answer".
//
// Lookups that miss fall back to the default locale's catalog, then to "".
// A Catalog is read-only once built and safe for concurrent use.
type Catalog struct {
	locale   Locale
	messages map[string]string
	fallback *Catalog
}

// emptyCatalog is returned by Messages before Setup has run.
var emptyCatalog = &Catalog{locale: DefaultLocale, messages: map[string]string{}}

// ParseCatalog decodes a YAML (or JSON) document of nested objects into a Catalog.
func ParseCatalog(l Locale, data []byte, fallback *Catalog) (*Catalog, error) {
	doc, err := decodeCatalog(l, data)
	if err != nil {
		return nil, err
	}

	return NewCatalog(l, doc, fallback), nil
}

func decodeCatalog(l Locale, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s catalog: %w", l, err)
	}

	return doc, nil
}

// NewCatalog flattens doc into a Catalog.
//
// Nested objects join their keys with ".", arrays use their index as the key
// segment, and scalars are stored as strings.
func NewCatalog(l Locale, doc map[string]any, fallback *Catalog) *Catalog {
	c := &Catalog{
		locale:   l,
		messages: make(map[string]string),
		fallback: fallback,
	}

	flatten("", doc, c.messages)

	return c
}

func flatten(prefix string, value any, out map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}

		return prefix + "." + k
	}

	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(k), child, out)
		}
	case map[any]any:
		for k, child := range v {
			flatten(join(fmt.Sprint(k)), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(strconv.Itoa(i)), child, out)
		}
	case nil:
		out[prefix] = ""
	case string:
		out[prefix] = v
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Locale returns the locale the catalog was built for.
func (c *Catalog) Locale() Locale {
	if c == nil {
		return DefaultLocale
	}

	return c.locale
}

func (c *Catalog) lookup(key string) (string, bool) {
	for cur := c; cur != nil; cur = cur.fallback {
		if s, ok := cur.messages[key]; ok {
			return s, true
		}
	}

	return "", false
}

// Has reports whether key resolves in c or its fallback.
func (c *Catalog) Has(key string) bool {
	_, ok := c.lookup(key)

	return ok
}

// Own reports whether key is defined in c itself, ignoring the fallback.
func (c *Catalog) Own(key string) bool {
	if c == nil {
		return false
	}

	_, ok := c.messages[key]

	return ok
}

// T returns the message for key, formatted with the optional key-value pairs
// as text/template data:
//
//	c.T("footer.copyright", "Year", 2025)
//
// A missing key yields "", or "⟦key⟧" when strict mode is enabled.
func (c *Catalog) T(key string, kv ...any) string {
	s, ok := c.lookup(key)
	if !ok {
		if strictMissingKeys() {
			return missing(c.Locale(), key, key)
		}

		return ""
	}

	return format(c.Locale(), s, pairs(kv))
}

// HTML renders the message for key as Markdown and returns sanitized HTML.
func (c *Catalog) HTML(key string, kv ...any) string {
	s := c.T(key, kv...)
	if s == "" {
		return ""
	}

	return renderMarkdown(s)
}

// Len returns the number of consecutive array elements stored under prefix,
// e.g. 8 for "howItWorks.faq.questions".
func (c *Catalog) Len(prefix string) int {
	n := 0

	for ; ; n++ {
		if !c.hasPrefix(prefix + "." + strconv.Itoa(n)) {
			return n
		}
	}
}

func (c *Catalog) hasPrefix(p string) bool {
	for cur := c; cur != nil; cur = cur.fallback {
		if _, ok := cur.messages[p]; ok {
			return true
		}

		for k := range cur.messages {
			if strings.HasPrefix(k, p+".") {
				return true
			}
		}
	}

	return false
}

// Keys returns the keys defined in c itself, sorted.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}

	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Missing returns the keys of the fallback catalog that c does not define, sorted.
func (c *Catalog) Missing() []string {
	if c == nil || c.fallback == nil {
		return nil
	}

	var missing []string

	for _, k := range c.fallback.Keys() {
		if _, ok := c.messages[k]; !ok {
			missing = append(missing, k)
		}
	}

	return missing
}

// catalogs is replaced wholesale by Setup.
var catalogs map[Locale]*Catalog

// Messages returns the catalog for l. Unknown locales get the default catalog.
func Messages(l Locale) *Catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}

	if c, ok := catalogs[DefaultLocale]; ok {
		return c
	}

	return emptyCatalog
}

// M returns the catalog for the locale stored in ctx.
func M(ctx context.Context) *Catalog {
	return Messages(LocaleFrom(ctx))
}
