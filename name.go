package trellodoc

import (
	"regexp"
	"strings"
)

// rewriteRule is one step in the canonical-name rewrite chain: a pure
// pattern→replacement transform applied to the output of the previous step.
type rewriteRule struct {
	pattern *regexp.Regexp
	replace string
}

// nameRules is the ordered rewrite chain. Order is load-bearing: the collapse
// and prefix rules key on underscore boundaries that the final camel-case
// folding destroys, so they must run first.
var nameRules = []rewriteRule{
	// Collapse verb+id path segments for the four resource families into
	// their singular form, anchored at a segment boundary or end of string.
	{regexp.MustCompile(`actions_action_id(_|$)`), "action$1"},
	{regexp.MustCompile(`boards_board_id(_|$)`), "board$1"},
	{regexp.MustCompile(`cards_card_id(_|$)`), "card$1"},
	{regexp.MustCompile(`checklists_checklist_id(_|$)`), "checklist$1"},

	// Fixed renames for the bare collection updates. These must precede the
	// generic put_ rename so put_boards becomes modify_board, not
	// modify_boards.
	{regexp.MustCompile(`^put_boards$`), "put_board"},
	{regexp.MustCompile(`^put_cards$`), "put_card"},

	// Verb prefix renames.
	{regexp.MustCompile(`^put_`), "modify_"},
	{regexp.MustCompile(`^post_`), "new_"},
}

// camelRule folds every remaining underscore-plus-letter pair into the
// upper-cased letter. It runs after all underscore-keyed rules.
var camelRule = regexp.MustCompile(`_([a-z])`)

// CanonicalName applies the ordered rewrite chain to a raw method name and
// returns the canonical camel-cased identifier. The transform is pure and
// deterministic; once no rule's pattern matches, reapplying it is a no-op.
func CanonicalName(raw string) string {
	s := raw
	for _, r := range nameRules {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}
	return camelRule.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(strings.TrimPrefix(m, "_"))
	})
}
