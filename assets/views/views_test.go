// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/contact"
	"codeberg.org/mikyai/website/core/referral"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/request_context"
	"codeberg.org/mikyai/website/server/template"
)

func TestMain(m *testing.M) {
	config.Global.SetDefaults()
	config.Global.Admin.PasswordHash = "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold"
	config.Global.Internationalization.StrictMissingKeys = true

	if err := i18n.Setup(); err != nil {
		panic(err)
	}

	if err := template.LoadIcons("img/icons"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// render renders c as if it were served at path in locale l.
func render(t *testing.T, l i18n.Locale, path string, c templ.Component) (*goquery.Document, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := i18n.WithLocale(req.Context(), l)
	ctx = request_context.WithRequestContext(ctx, req.WithContext(ctx))

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))

	html := buf.String()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	return doc, html
}

func allPages() map[string]templ.Component {
	return map[string]templ.Component{
		"/":             HomePage(),
		"/how-it-works": HowItWorksPage(HowItWorksData{Subscribers: 1000, SignInURL: "/auth/login", SignUpURL: "/auth/signup"}),
		"/pricing":      PricingPage(PricingData{SignUpURL: "/auth/signup"}),
		"/refer":        ReferPage(ReferData{Subscribers: 1000, SignUpURL: "/auth/signup"}),
		"/chat":         ChatPage(ChatData{SignInURL: "/auth/login", SignUpURL: "/auth/signup"}),
		"/contact":      ContactPage(ContactData{}),
		"/legal/terms":  LegalPage(LegalData{Doc: LegalTerms, Updated: "2025-01-15"}),
		"/legal/privacy": LegalPage(LegalData{Doc: LegalPrivacy, Updated: "2025-01-15"}),
		"/legal/cookie": LegalPage(LegalData{Doc: LegalCookie, Updated: "2025-01-15"}),
	}
}

func TestPagesResolveEveryKey(t *testing.T) {
	t.Parallel()

	for _, l := range i18n.Locales() {
		for path, page := range allPages() {
			t.Run(l.String()+path, func(t *testing.T) {
				t.Parallel()

				doc, html := render(t, l, l.Path(path), page)

				assert.NotContains(t, html, "⟦", "unresolved catalog key")
				assert.NotContains(t, html, "[missing icon")
				assert.Equal(t, l.String(), doc.Find("html").AttrOr("lang", ""))
				assert.Equal(t, 1, doc.Find("h1").Length())
			})
		}
	}
}

func TestCatalogsComplete(t *testing.T) {
	t.Parallel()

	en := i18n.Messages(i18n.English)
	for _, k := range en.Keys() {
		assert.NotEmpty(t, en.T(k), k)
	}

	for _, l := range []i18n.Locale{i18n.Spanish, i18n.Italian} {
		assert.Empty(t, i18n.Messages(l).Missing(), l)
	}
}

func TestHowItWorksCalculator(t *testing.T) {
	t.Parallel()

	doc, _ := render(t, i18n.English, "/how-it-works", HowItWorksPage(HowItWorksData{Subscribers: 1000}))

	form := doc.Find("form[data-calculator]")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "/how-it-works#calculator", form.AttrOr("action", ""))
	assert.Equal(t, "458", form.AttrOr("data-per-member", ""))

	input := form.Find("input#subscribers")
	assert.Equal(t, "1000", input.AttrOr("value", ""))
	assert.Equal(t, "100", input.AttrOr("min", ""))
	assert.Equal(t, "10000", input.AttrOr("max", ""))

	assert.Equal(t, "$4,580", strings.TrimSpace(form.Find("[data-earnings]").Text()))
	assert.Equal(t, "9", form.Find("[data-position]").AttrOr("value", ""))
	assert.Contains(t, form.Find("[data-count]").AttrOr("data-count", ""), "{count}")
	assert.Contains(t, form.Find("[data-count]").Text(), "1,000")

	assert.Equal(t, 2, doc.Find("[data-plan] table.levels").Length())
	assert.Equal(t, 8, doc.Find("#faq details").Length())
}

func TestCalculatorLocalized(t *testing.T) {
	t.Parallel()

	doc, _ := render(t, i18n.Italian, "/it/how-it-works", HowItWorksPage(HowItWorksData{Subscribers: referral.MaxSubscribers}))

	form := doc.Find("form[data-calculator]")
	assert.Equal(t, "/it/how-it-works#calculator", form.AttrOr("action", ""))
	assert.Equal(t, "$45.800", strings.TrimSpace(form.Find("[data-earnings]").Text()))
	assert.Equal(t, "100", form.Find("[data-position]").AttrOr("value", ""))
}

func TestPricingPlans(t *testing.T) {
	t.Parallel()

	doc, _ := render(t, i18n.English, "/pricing", PricingPage(PricingData{SignUpURL: "/auth/signup?ref=site"}))

	plans := doc.Find(".plan")
	require.Equal(t, 2, plans.Length())

	pro := doc.Find(`.plan[data-plan="pro"]`)
	assert.True(t, pro.HasClass("popular"))
	assert.Equal(t, 1, pro.Find(".badge").Length())
	assert.Contains(t, pro.Find(".price").Text(), "$15")
	assert.Equal(t, "/auth/signup?plan=pro&ref=site", pro.Find("a.btn").AttrOr("href", ""))
	assert.Equal(t, "Choose Pro", strings.TrimSpace(pro.Find("a.btn").Text()))

	plus := doc.Find(`.plan[data-plan="plus"]`)
	assert.False(t, plus.HasClass("popular"))
	assert.Equal(t, 4, plus.Find("li").Length())

	proLevels := doc.Find(`.card[data-plan="pro"] table.levels tr`)
	assert.Equal(t, 5, proLevels.Length())
	assert.Contains(t, proLevels.Eq(1).Text(), "$4.05")
}

func TestLegalDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		doc      string
		sections int
	}{
		{LegalTerms, len(termsSections)},
		{LegalCookie, 5},
	}

	for _, tt := range tests {
		doc, _ := render(t, i18n.English, "/legal/"+tt.doc, LegalPage(LegalData{Doc: tt.doc, Updated: "2025-01-15"}))

		assert.Equal(t, tt.sections, doc.Find(".prose h2").Length(), tt.doc)
		assert.Contains(t, doc.Find(".prose p.muted").First().Text(), "2025-01-15")
	}

	doc, _ := render(t, i18n.English, "/legal/terms", LegalPage(LegalData{Doc: LegalTerms}))
	assert.Equal(t, 1, doc.Find(".notice strong").Length(), "markdown emphasis in the disclaimer")

	doc, _ = render(t, i18n.English, "/legal/privacy", LegalPage(LegalData{Doc: LegalPrivacy}))
	assert.Positive(t, doc.Find(".prose li").Length())
}

func TestContactFormStates(t *testing.T) {
	t.Parallel()

	invalid := contact.Form{
		State:  contact.Failed,
		Values: contact.Submission{Name: "Ada", Email: "nope", Message: "Hi"},
		Error:  &contact.ValidationError{Fields: []string{contact.FieldEmail}},
	}

	doc, _ := render(t, i18n.English, "/contact", ContactPage(ContactData{Form: invalid}))
	form := doc.Find("main form.contact-form")
	assert.Equal(t, "/contact", form.AttrOr("action", ""))
	assert.Equal(t, 1, form.Find(".notice.error").Length())
	assert.Equal(t, "true", form.Find("#contact-email").AttrOr("aria-invalid", ""))
	assert.Empty(t, form.Find("#contact-name").AttrOr("aria-invalid", ""))
	assert.Equal(t, "Ada", form.Find("#contact-name").AttrOr("value", ""))
	assert.Equal(t, "Hi", form.Find("#contact-message").Text())

	markup := contact.Form{
		State:  contact.Failed,
		Values: contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi <iframe>"},
		Error:  &contact.ValidationError{Fields: []string{contact.FieldMessage}, Markup: true},
	}
	doc, _ = render(t, i18n.English, "/contact", ContactPage(ContactData{Form: markup}))
	assert.Equal(t, "Please write plain text without HTML tags.", doc.Find("main .notice.error p").Text())
	assert.Equal(t, "Hi <iframe>", doc.Find("#contact-message").Text())

	endpoint := contact.Form{State: contact.Failed, Error: &contact.EndpointError{Message: "Mailbox full", StatusCode: 503}}
	doc, _ = render(t, i18n.English, "/contact", ContactPage(ContactData{Form: endpoint}))
	assert.Contains(t, doc.Find("main .notice.error").Text(), "Mailbox full")

	doc, _ = render(t, i18n.Spanish, "/es/contact", ContactPage(ContactData{Form: contact.Form{State: contact.Sent}}))
	assert.Equal(t, "/es/contact", doc.Find("main form.contact-form").AttrOr("action", ""))
	assert.Equal(t, 1, doc.Find("main .notice.success").Length())

	// The footer modal is left out so that the field IDs stay unique.
	assert.Equal(t, 1, doc.Find("#contact-name").Length())
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	doc, _ := render(t, i18n.English, "/missing", ErrorPage(ErrorData{StatusCode: http.StatusNotFound, RequestID: "abc123"}))
	assert.Equal(t, "404", doc.Find(".error-page .code").Text())
	assert.Equal(t, "Page not found", doc.Find("h1").Text())
	assert.Contains(t, doc.Find(".error-page").Text(), "abc123")
	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))

	userErr := i18n.NewUserError(context.Background(), "Invalid password.")
	doc, _ = render(t, i18n.English, "/admin", ErrorPage(ErrorData{StatusCode: http.StatusUnauthorized, Error: userErr}))
	assert.Contains(t, doc.Find(".error-page").Text(), "Invalid password.")

	doc, _ = render(t, i18n.Italian, "/it/x", ErrorPage(ErrorData{StatusCode: http.StatusTooManyRequests}))
	assert.NotEqual(t, "Too many requests", doc.Find("h1").Text())
}

func TestAdminPages(t *testing.T) {
	t.Parallel()

	doc, html := render(t, i18n.English, "/admin", AdminStatusPage(AdminStatusData{
		Version: "v1.0.0",
		Catalogs: []CatalogStatus{
			{Locale: i18n.English, Keys: 297},
			{Locale: i18n.Spanish, Keys: 295, Missing: []string{"a", "b"}},
		},
	}))
	assert.NotContains(t, html, "⟦")
	assert.Contains(t, doc.Find("table").First().Text(), "Not configured")
	assert.Contains(t, doc.Find(`tr[data-locale="en"]`).Text(), "297 keys")
	assert.Equal(t, "2", doc.Find(`tr[data-locale="es"] td`).Last().Text())
	assert.Equal(t, AdminLogoutPath, doc.Find(`main form[method="post"]`).AttrOr("action", ""))

	doc, _ = render(t, i18n.English, "/admin/login", AdminLoginPage(AdminLoginData{Error: "Invalid password."}))
	gate := doc.Find("main form.admin-gate")
	assert.Equal(t, "/admin/login", gate.AttrOr("action", ""))
	assert.Contains(t, gate.Find(".notice.error").Text(), "Invalid password.")
}
