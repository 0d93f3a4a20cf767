package lexer

// O200KPatterns is o200k_base's word-phase pattern set. The reference
// pattern bakes an optional trailing contraction suffix directly into
// each word alternative; the DFA set instead matches the stem and lets a
// leading-edge contraction alternative claim the suffix, which yields
// the same pretoken boundaries since a contraction is always its own
// merge-vocab entry. RoleWordContraction still guards the case where the
// leading `[^\r\n\p{L}\p{N}]?` prefix itself looks like a contraction
// marker (e.g. the word "'tis").
var O200KPatterns = []Pattern{
	{Name: "contraction", Regex: `'[sS]|'[tT]|'[rR][eE]|'[vV][eE]|'[mM]|'[lL][lL]|'[dD]`, Role: RoleStandalone},
	{Name: "word-upper-first", Regex: `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+`, Role: RoleWordContraction},
	{Name: "word-lower-first", Regex: `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*`, Role: RoleWordContraction},
	{Name: "number", Regex: `\p{N}{1,3}`, Role: RoleStandalone},
	{Name: "punct", Regex: ` ?[^\s\p{L}\p{N}]+[\r\n/]*`, Role: RolePunctuation},
	{Name: "newline", Regex: `\s*[\r\n]+`, Role: RoleStandalone},
	{Name: "whitespace", Regex: `\s+`, Role: RoleWhitespace},
}
