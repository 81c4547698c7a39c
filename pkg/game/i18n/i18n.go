// Package i18n looks up the user-facing strings of the command line clients.
// Catalogues are gettext .po files embedded in the binary; a key without a
// translation is returned as is.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var current = mustLoad(DefaultLanguage)

// Load parses the embedded catalogue for lang.
func Load(lang string) (*gotext.Po, error) {
	buf, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no catalogue for language %q", lang)
	}
	po := gotext.NewPo()
	po.Parse(buf)
	return po, nil
}

func mustLoad(lang string) *gotext.Po {
	po, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return po
}

// SetLanguage switches the catalogue used by T. An empty lang selects the
// default language.
func SetLanguage(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}
	po, err := Load(lang)
	if err != nil {
		return err
	}
	current = po
	return nil
}

// Languages lists the embedded catalogues.
func Languages() []string {
	entries, _ := locales.ReadDir("locales")
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// T returns the translation of key formatted with args.
func T(key string, args ...any) string {
	return current.Get(key, args...)
}
