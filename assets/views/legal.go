// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/i18n"
)

// Legal documents, also the last path segment under /legal.
const (
	LegalTerms   = "terms"
	LegalPrivacy = "privacy"
	LegalCookie  = "cookie"
)

// LegalDocs lists the documents in footer order.
var LegalDocs = []string{LegalTerms, LegalPrivacy, LegalCookie}

type LegalData struct {
	// Doc is one of LegalDocs.
	Doc string
	// Updated is the "last updated" date as shown.
	Updated string
}

// termsSections is the order of the numbered sections of the terms.
var termsSections = []string{
	"acceptanceOfTerms", "platformDescription", "aiDisclaimer", "referralProgram",
	"oceanCleanup", "paymentTerms", "userResponsibilities", "intellectualProperty",
	"limitationOfLiability", "indemnification", "termination", "governingLaw",
	"modifications", "contact",
}

// LegalPage renders one of the legal documents. Copy is Markdown.
func LegalPage(data LegalData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		k := i18n.Key("legal").Sub(data.Doc)

		var body g.Node

		switch data.Doc {
		case LegalTerms:
			body = termsBody(ctx, k)
		case LegalPrivacy:
			body = privacyBody(ctx, k)
		default:
			body = g.Group(indexed(ctx, k.Sub("sections"), func(s i18n.Key, _ int) g.Node {
				return legalSection(ctx, s)
			}))
		}

		return f.Layout(ctx, f.PageConfig{Title: f.StringOf(ctx, k.Sub("title"))},
			Section(
				Div(Class("narrow prose"),
					backLink(ctx, k.Sub("back")),
					H1(f.TextOf(ctx, k.Sub("title"))),
					P(Class("muted"), f.TextOf(ctx, k.Sub("lastUpdated"), "Date", data.Updated)),
					body,
				),
			),
		)
	})
}

// legalSection renders a heading and its Markdown content.
func legalSection(ctx context.Context, k i18n.Key) g.Node {
	return g.Group([]g.Node{
		H2(f.TextOf(ctx, k.Sub("title"))),
		f.MarkdownOf(ctx, k.Sub("content")),
	})
}

func termsBody(ctx context.Context, k i18n.Key) g.Node {
	nodes := make([]g.Node, 0, len(termsSections))

	for _, name := range termsSections {
		s := k.Sub(name)
		if name == "aiDisclaimer" {
			nodes = append(nodes,
				H2(f.TextOf(ctx, s.Sub("title"))),
				Div(Class("notice error"), Role("note"), f.MarkdownOf(ctx, s.Sub("criticalDisclaimer"))),
				f.MarkdownOf(ctx, s.Sub("content")),
			)

			continue
		}

		nodes = append(nodes, legalSection(ctx, s))
	}

	return g.Group(nodes)
}

// list renders the named children of k as a bulleted list.
func list(ctx context.Context, k i18n.Key, names ...string) g.Node {
	return Ul(g.Group(g.Map(names, func(n string) g.Node {
		return Li(f.MarkdownOf(ctx, k.Sub(n)))
	})))
}

// subsections renders each named child of k as a titled block.
func subsections(ctx context.Context, k i18n.Key, names ...string) g.Node {
	return g.Group(g.Map(names, func(n string) g.Node {
		return g.Group([]g.Node{
			H3(f.TextOf(ctx, k.Sub(n).Sub("title"))),
			f.MarkdownOf(ctx, k.Sub(n).Sub("content")),
		})
	}))
}

func privacyBody(ctx context.Context, k i18n.Key) g.Node {
	principles := k.Sub("keyPrinciples")
	collected := k.Sub("informationCollected")
	personal := collected.Sub("personalInfo")
	ai := collected.Sub("aiInteraction")
	automatic := collected.Sub("automaticInfo")
	use := k.Sub("howWeUse")
	sharing := k.Sub("informationSharing")
	security := k.Sub("dataSecurity")
	rights := k.Sub("privacyRights")
	regional := rights.Sub("regionalRights")

	nodes := []g.Node{
		legalSection(ctx, k.Sub("introduction")),

		H2(f.TextOf(ctx, principles.Sub("title"))),
		list(ctx, principles, "transparency", "minimal", "security", "control", "compliance"),

		H2(f.TextOf(ctx, collected.Sub("title"))),
		H3(f.TextOf(ctx, personal.Sub("title"))),
		list(ctx, personal, "account", "payment", "profile", "contact", "referral"),
		H3(f.TextOf(ctx, ai.Sub("title"))),
		list(ctx, ai, "inputs", "responses", "metadata", "patterns", "performance"),
		Div(Class("notice error"), Role("note"), f.MarkdownOf(ctx, ai.Sub("warning"))),
		H3(f.TextOf(ctx, automatic.Sub("title"))),
		list(ctx, automatic, "device", "usage", "technical", "location"),

		H2(f.TextOf(ctx, use.Sub("title"))),
		subsections(ctx, use, "primaryService", "aiImprovement", "networkMarketing"),

		H2(f.TextOf(ctx, sharing.Sub("title"))),
		subsections(ctx, sharing, "serviceProviders", "legalRequirements"),

		H2(f.TextOf(ctx, security.Sub("title"))),
		subsections(ctx, security, "technicalSafeguards", "organizationalMeasures"),
		f.MarkdownOf(ctx, security.Sub("limitations")),

		H2(f.TextOf(ctx, rights.Sub("title"))),
		subsections(ctx, rights, "accountManagement"),
		H3(f.TextOf(ctx, regional.Sub("title"))),
		list(ctx, regional, "ccpa", "gdpr"),
	}

	for _, name := range []string{"dataRetention", "internationalTransfers", "childrenPrivacy", "policyUpdates", "contact"} {
		nodes = append(nodes, legalSection(ctx, k.Sub(name)))
	}

	return g.Group(nodes)
}
