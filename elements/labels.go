package elements

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Filter label keys, one per structure kind.
const (
	labelCommands  = "filter.commands"
	labelFunctions = "filter.functions"
	labelEvents    = "filter.events"
	labelOptions   = "filter.options"
)

// Languages lists the languages display strings are translated to.
var Languages = []language.Tag{language.English, language.French}

func init() {
	translations := map[language.Tag]map[string]string{
		language.English: {
			labelCommands:  "Commands",
			labelFunctions: "Functions",
			labelEvents:    "Events",
			labelOptions:   "Options",
		},
		language.French: {
			labelCommands:  "Commandes",
			labelFunctions: "Fonctions",
			labelEvents:    "Événements",
			labelOptions:   "Options",
		},
	}

	for tag, messages := range translations {
		for key, msg := range messages {
			_ = message.SetString(tag, key, msg)
		}
	}
}

// Label returns the translated display string of a label key, or the key
// itself when it has no translation.
func Label(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(message.Key(key, key))
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}
