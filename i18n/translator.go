package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_declaration":  "invalid field declaration",
		"duplicate_field":      "field {field} is declared more than once",
		"unknown_field":        "unknown field {field}",
		"value_outside_domain": "value {value} is not part of the field value domain",
		"scope_mismatch":       "snapshots belong to different scopes",
		"unknown_kind":         "unknown field kind {kind}",
		"unknown_handler":      "unknown value handler {handler}",
		"required":             "a value is required",
		"invalid_value":        "invalid value",
		"parse_error":          "parse error",
	},
	"fr": {
		"invalid_declaration":  "déclaration de champ invalide",
		"duplicate_field":      "le champ {field} est déclaré plusieurs fois",
		"unknown_field":        "champ inconnu {field}",
		"value_outside_domain": "la valeur {value} ne fait pas partie des valeurs du champ",
		"scope_mismatch":       "les données comparées appartiennent à des portées différentes",
		"unknown_kind":         "type de champ inconnu {kind}",
		"unknown_handler":      "gestionnaire de valeur inconnu {handler}",
		"required":             "une valeur est requise",
		"invalid_value":        "valeur invalide",
		"parse_error":          "erreur d'analyse",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", "\""+v+"\"")
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"fr").
func SetLanguage(lang string) {
	if lang != "fr" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
