package govalorant

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Language selects which localization upstream uses for text fields.
// The zero value, NoLanguage, leaves the choice to upstream (en-US).
type Language uint8

const (
	NoLanguage Language = iota
	ArabicUAE
	German
	EnglishUS
	SpanishSpain
	SpanishMexico
	French
	Indonesian
	Italian
	Japanese
	Korean
	Polish
	PortugueseBrazil
	Russian
	Thai
	Turkish
	Vietnamese
	ChineseSimplified
	ChineseTraditional
)

// Code returns the wire code sent as the language query parameter.
// NoLanguage and out-of-range values return "".
func (l Language) Code() string {
	switch l {
	case ArabicUAE:
		return "ar-AE"
	case German:
		return "de-DE"
	case EnglishUS:
		return "en-US"
	case SpanishSpain:
		return "es-ES"
	case SpanishMexico:
		return "es-MX"
	case French:
		return "fr-FR"
	case Indonesian:
		return "id-ID"
	case Italian:
		return "it-IT"
	case Japanese:
		return "ja-JP"
	case Korean:
		return "ko-KR"
	case Polish:
		return "pl-PL"
	case PortugueseBrazil:
		return "pt-BR"
	case Russian:
		return "ru-RU"
	case Thai:
		return "th-TH"
	case Turkish:
		return "tr-TR"
	case Vietnamese:
		return "vi-VN"
	case ChineseSimplified:
		return "zh-CN"
	case ChineseTraditional:
		return "zh-TW"
	default:
		return ""
	}
}

func (l Language) String() string {
	if code := l.Code(); code != "" {
		return code
	}
	if l == NoLanguage {
		return "none"
	}
	return "unknown"
}

// Languages lists every selectable language in declaration order.
func Languages() []Language {
	langs := make([]Language, 0, int(ChineseTraditional))
	for l := ArabicUAE; l <= ChineseTraditional; l++ {
		langs = append(langs, l)
	}
	return langs
}

// ParseLanguage maps a wire code such as "en-US" (any case) to its Language.
func ParseLanguage(code string) (Language, error) {
	for _, l := range Languages() {
		if strings.EqualFold(l.Code(), strings.TrimSpace(code)) {
			return l, nil
		}
	}
	return NoLanguage, errors.Wrapf(ErrUnknownLanguage, "%q", code)
}
