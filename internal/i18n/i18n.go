package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. The embedded English
// messages are always available; localesPath may point to a directory
// with extra active.*.toml files.
func NewTranslations(defaultLang, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}
	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate engineering tickets grounded in your repository's code"

	[app_description]
	other = "MateTicket indexes a repository, ranks the code relevant to your request and asks Gemini for a structured, ready-to-file ticket"

	[ticket_command_description]
	other = "Generate a ticket for a natural language request"

	[insights_command_description]
	other = "Summarize the technology stack and conventions of a repository"

	[config_command_description]
	other = "Manage MateTicket configuration"

	[help_command_usage]
	other = "Show help"

	[indexing_repository]
	other = "Indexing repository..."

	[generating_ticket]
	other = "Generating ticket..."

	[ticket_generation_failed]
	other = "Ticket generation failed: {{.Error}}"

	[config_saved]
	other = "Configuration saved"

	[current_config]
	other = "Current configuration"

	[api_key_updated]
	other = "API key updated"

	[language_updated]
	other = "Language set to {{.Lang}}"

	[factory_already_registered]
	other = "Factory '{{.FactoryName}}' is already registered"

	[relevant_chunks_found]
	one = "{{.Count}} relevant code chunk found"
	other = "{{.Count}} relevant code chunks found"
	`
