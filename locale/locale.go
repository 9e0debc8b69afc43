// Package locale holds the user facing messages in every supported language.
package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle    = newBundle()
	fallbacks = map[string]*i18n.Message{}
)

func init() {
	for _, m := range english {
		fallbacks[m.ID] = m
	}
}

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.MustAddMessages(language.English, english...)
	b.MustAddMessages(language.Chinese, chinese...)
	return b
}

// Localizer renders messages in the first supported language among the
// requested ones, English otherwise.
type Localizer struct {
	localizer *i18n.Localizer
}

func New(langs ...string) *Localizer {
	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, append(langs, language.English.String())...),
	}
}

// Text renders message id with data. It never fails: a message missing from
// the catalogue renders as its id.
func (l *Localizer) Text(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: fallbacks[id],
		TemplateData:   data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// Languages lists the tags of every catalogue.
func Languages() []string {
	tags := bundle.LanguageTags()
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		result = append(result, t.String())
	}
	return result
}
