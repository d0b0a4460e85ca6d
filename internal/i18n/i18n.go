// Package i18n translates user-facing text. Message bundles are embedded TOML
// files under locales/, English is the fallback for missing languages and ids.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves message ids for one language.
type Translator struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New builds a translator for lang (a BCP 47 tag such as "en" or "es-MX").
// Unknown or malformed tags fall back to English.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}
	for _, file := range files {
		data, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(file)); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// MustNew is New for tests and start-up code that cannot continue without text.
func MustNew(lang string) *Translator {
	t, err := New(lang)
	if err != nil {
		panic(err)
	}
	return t
}

// Language returns the requested language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the text for id. Template data is optional. A missing id returns
// the id itself so the gap is visible on screen rather than blank.
func (t *Translator) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil || msg == "" {
		return id
	}
	return msg
}
