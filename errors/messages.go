package errors

import (
	"fmt"
	"strings"
)

// Locale selects the language of user facing messages.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = English

// MessageID names one entry of the message catalog.
type MessageID string

const (
	MsgUnrecognizedText       MessageID = "unrecognized-text"
	MsgInvalidAction          MessageID = "invalid-action"
	MsgInvalidSensor          MessageID = "invalid-sensor"
	MsgMissingBlockTerminator MessageID = "missing-block-terminator"
	MsgUnknownConstruct       MessageID = "unknown-construct"
	MsgUnexpectedToken        MessageID = "unexpected-token"
	MsgMaxDepth               MessageID = "max-depth"
	MsgLoopTooLong            MessageID = "loop-too-long"
	MsgUndeclaredVariable     MessageID = "undeclared-variable"
	MsgDidYouMean             MessageID = "did-you-mean"
	MsgDidYouMeanOneOf        MessageID = "did-you-mean-one-of"
	MsgNone                   MessageID = "none"
	MsgFoundErrors            MessageID = "found-errors"
)

var catalog = map[Locale]map[MessageID]string{
	English: {
		MsgUnrecognizedText:       "unrecognized text %q",
		MsgInvalidAction:          "invalid action %q (supported actions: %s)",
		MsgInvalidSensor:          "invalid sensor %q (supported sensors: %s)",
		MsgMissingBlockTerminator: "block is missing its closing \"}\"",
		MsgUnknownConstruct:       "unknown construct starting at %s",
		MsgUnexpectedToken:        "expected %s, found %s",
		MsgMaxDepth:               "blocks are nested more than %d levels deep",
		MsgLoopTooLong:            "loop repeats too many times (%d, at most %d allowed)",
		MsgUndeclaredVariable:     "variable %q not declared",
		MsgDidYouMean:             "did you mean %s?",
		MsgDidYouMeanOneOf:        "did you mean one of: %s?",
		MsgNone:                   "none",
		MsgFoundErrors:            "found %d errors",
	},
	Portuguese: {
		MsgUnrecognizedText:       "texto não reconhecido %q",
		MsgInvalidAction:          "ação inválida %q (ações disponíveis: %s)",
		MsgInvalidSensor:          "sensor inválido %q (sensores disponíveis: %s)",
		MsgMissingBlockTerminator: "falta fechar o bloco com \"}\"",
		MsgUnknownConstruct:       "construção desconhecida a partir de %s",
		MsgUnexpectedToken:        "esperava %s, encontrou %s",
		MsgMaxDepth:               "blocos aninhados em mais de %d níveis",
		MsgLoopTooLong:            "o laço repete vezes demais (%d, no máximo %d permitidas)",
		MsgUndeclaredVariable:     "variável %q não declarada",
		MsgDidYouMean:             "você quis dizer %s?",
		MsgDidYouMeanOneOf:        "você quis dizer um destes: %s?",
		MsgNone:                   "nenhum",
		MsgFoundErrors:            "%d erros encontrados",
	},
}

// ParseLocale maps a language tag such as "pt-BR" to a supported Locale,
// falling back to DefaultLocale.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	if _, ok := catalog[Locale(tag)]; ok {
		return Locale(tag)
	}
	return DefaultLocale
}

// Sprintf formats the catalog entry id for this locale. Missing entries fall
// back to English.
func (l Locale) Sprintf(id MessageID, args ...any) string {
	msgs, ok := catalog[l]
	if !ok {
		msgs = catalog[DefaultLocale]
	}
	format, ok := msgs[id]
	if !ok {
		format = catalog[DefaultLocale][id]
	}
	return fmt.Sprintf(format, args...)
}

// List joins quoted items for inclusion in a message.
func (l Locale) List(items []string) string {
	if len(items) == 0 {
		return l.Sprintf(MsgNone)
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
