package commands

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/pkg/errs"
)

var actionMailHTML = template.Must(template.New("action").Parse(
	`<p>{{.Intro}}</p><p><a href="{{.URL}}">{{.Label}}</a></p><p>This link expires at {{.ExpiresAt}}.</p>`,
))

var alertMailHTML = template.Must(template.New("alert").Parse(
	`<p>"{{.Title}}" was published.</p><p>Slug: {{.Slug}}<br>Content ID: {{.ContentID}}<br>Published at: {{.PublishedAt}}</p>`,
))

type actionMail struct {
	Subject   string
	Intro     string
	Label     string
	URL       string
	ExpiresAt string
}

// actionURL joins the public base URL, a path and the raw token.
func actionURL(baseURL, path, rawToken string) string {
	return strings.TrimRight(baseURL, "/") + path + "?token=" + url.QueryEscape(rawToken)
}

func (m actionMail) payload(to string) (job.EmailPayload, error) {
	var html bytes.Buffer
	if err := actionMailHTML.Execute(&html, m); err != nil {
		return job.EmailPayload{}, errs.Wrap(err, "failed to render action mail")
	}
	text := m.Intro + "\n\n" + m.URL + "\n\nThis link expires at " + m.ExpiresAt + ".\n"
	return job.EmailPayload{
		To:        []string{to},
		Subject:   m.Subject,
		Text:      text,
		HTML:      html.String(),
		ActionURL: m.URL,
	}, nil
}

func verificationMail(to, link string, expiresAt time.Time) (job.EmailPayload, error) {
	return actionMail{
		Subject:   "Confirm your email address",
		Intro:     "Confirm your email address by opening the link below.",
		Label:     "Confirm email",
		URL:       link,
		ExpiresAt: expiresAt.UTC().Format(time.RFC1123),
	}.payload(to)
}

func passwordResetMail(to, link string, expiresAt time.Time) (job.EmailPayload, error) {
	return actionMail{
		Subject:   "Reset your password",
		Intro:     "A password reset was requested for your account. If it was not you, ignore this mail.",
		Label:     "Choose a new password",
		URL:       link,
		ExpiresAt: expiresAt.UTC().Format(time.RFC1123),
	}.payload(to)
}

func publishedAlertMail(to []string, p job.ContentPayload) (job.EmailPayload, error) {
	var html bytes.Buffer
	err := alertMailHTML.Execute(&html, map[string]string{
		"Title":       p.Title,
		"Slug":        p.Slug,
		"ContentID":   p.ContentID.String(),
		"PublishedAt": p.OccurredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return job.EmailPayload{}, errs.Wrap(err, "failed to render alert mail")
	}
	return job.EmailPayload{
		To:      to,
		Subject: "Published: " + p.Title,
		Text:    "\"" + p.Title + "\" was published.\n\nSlug: " + p.Slug + "\nContent ID: " + p.ContentID.String() + "\n",
		HTML:    html.String(),
	}, nil
}
