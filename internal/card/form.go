package card

import "strings"

// Form names a textual representation of a card
type Form string

const (
	FormSymbol     Form = "symbol"
	FormSuitIndex  Form = "suit_index"
	FormRankIndex  Form = "rank_index"
	FormSuitName   Form = "suit_name"
	FormRankSymbol Form = "rank_symbol"
	FormRankName   Form = "rank_name"
	FormFullName   Form = "full_name"
	FormSuitIcon   Form = "suit_icon"
	FormGlyph      Form = "playing_card_glyph"
)

// Forms lists every display form in the order they are shown by the CLI
var Forms = []Form{
	FormSymbol,
	FormSuitIndex,
	FormRankIndex,
	FormSuitName,
	FormRankSymbol,
	FormRankName,
	FormFullName,
	FormSuitIcon,
	FormGlyph,
}

var formAliases = map[string]Form{
	"suit":     FormSuitName,
	"rank":     FormRankSymbol,
	"name":     FormFullName,
	"fullname": FormFullName,
	"rankname": FormRankName,
	"icon":     FormSuitIcon,
	"glyph":    FormGlyph,
}

// ParseForm resolves a form name. Dashes are treated as underscores and a few
// short aliases ("glyph", "icon", "name") are accepted.
func ParseForm(s string) (Form, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if key == "" {
		return FormSymbol, nil
	}
	for _, f := range Forms {
		if string(f) == key {
			return f, nil
		}
	}
	if f, ok := formAliases[key]; ok {
		return f, nil
	}
	return "", NewError(ErrInvalidForm, "unknown display form %q", s)
}
