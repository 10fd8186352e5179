// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/mikyai/website/assets"
)

// Logger is the logger used by package i18n.
var Logger zerolog.Logger

// ErrDefaultCatalog is returned by Setup when the default locale's message
// catalog cannot be loaded. Every other catalog falls back to it.
var ErrDefaultCatalog = errors.New("default message catalog unavailable")

// Setup initialises package i18n from the embedded assets.
//
// It loads two kinds of catalogues:
//
//	messages/<locale>.yaml   page copy, addressed by dotted keys (see [Catalog])
//	po/<locale>.po           interface strings, addressed by English msgids (see [Tr])
//
// Message catalogs are loaded concurrently. A broken or absent catalog for a
// non-default locale is logged and that locale is served from the default
// catalog; failure to load the default catalog is fatal.
//
// Calling Setup again replaces everything previously loaded.
func Setup() error {
	Logger = log.With().Str("sys", "i18n").Logger()

	loadGettext()

	loaded, err := loadCatalogs(assets.FS)
	if err != nil {
		return err
	}

	catalogs = loaded

	return nil
}

// loadGettext parses po/<locale>.po for every locale but the base one. A
// missing or unreadable file leaves that locale showing English msgids.
func loadGettext() {
	loaded := make(map[Locale]*gotext.Po)

	for _, l := range Locales() {
		if string(l) == BaseLocale {
			continue
		}

		name := path.Join("po", string(l)+".po")

		data, err := fs.ReadFile(assets.FS, name)
		if err != nil {
			Logger.Warn().Err(err).Str("locale", string(l)).Msg("No gettext catalogue, showing English text")

			continue
		}

		po := gotext.NewPo()
		po.Parse(data)
		loaded[l] = po

		Logger.Debug().
			Str("locale", string(l)).
			Str("file", name).
			Msg("Loaded gettext catalogue")
	}

	translators = loaded
}

// catalogPath returns the embedded path of l's message catalog.
func catalogPath(l Locale) string {
	return path.Join("messages", string(l)+".yaml")
}

// loadCatalogs reads and decodes every catalog concurrently. Only a failure
// of the default catalog stops the group; other locales degrade to it.
func loadCatalogs(fsys fs.FS) (map[Locale]*Catalog, error) {
	locales := Locales()
	docs := make([]map[string]any, len(locales))
	errs := make([]error, len(locales))

	var g errgroup.Group

	for i, l := range locales {
		g.Go(func() error {
			docs[i], errs[i] = readCatalog(fsys, l)
			if l == DefaultLocale && errs[i] != nil {
				return fmt.Errorf("%w: %w", ErrDefaultCatalog, errs[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	def := NewCatalog(DefaultLocale, docs[0], nil)
	loaded := map[Locale]*Catalog{DefaultLocale: def}

	for i, l := range locales {
		if l == DefaultLocale {
			continue
		}

		if errs[i] != nil {
			Logger.Warn().
				Err(errs[i]).
				Str("locale", string(l)).
				Msg("Message catalog unavailable, serving default locale copy")
		}

		loaded[l] = NewCatalog(l, docs[i], def)
	}

	for l, cat := range loaded {
		Logger.Info().
			Str("locale", string(l)).
			Int("keys", len(cat.messages)).
			Int("missing", len(cat.Missing())).
			Msg("Loaded message catalog")
	}

	return loaded, nil
}

func readCatalog(fsys fs.FS, l Locale) (map[string]any, error) {
	data, err := fs.ReadFile(fsys, catalogPath(l))
	if err != nil {
		return nil, err
	}

	return decodeCatalog(l, data)
}
