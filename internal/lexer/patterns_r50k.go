package lexer

// R50KPatterns is the word-phase pattern set shared by r50k_base, p50k_base
// and p50k_edit: a contraction alternative, a letter run, a digit run, a
// punctuation run and a whitespace run, in priority order. The reference
// `\s+(?!\S)` alternative is omitted — Run's whitespace-buffering logic
// reconstructs that distinction from the `\s+` matches alone.
var R50KPatterns = []Pattern{
	{Name: "contraction", Regex: `'s|'t|'re|'ve|'m|'ll|'d`, Role: RoleStandalone},
	{Name: "word", Regex: ` ?\p{L}+`, Role: RoleWord},
	{Name: "number", Regex: ` ?\p{N}+`, Role: RoleStandalone},
	{Name: "punct", Regex: ` ?[^\s\p{L}\p{N}]+`, Role: RolePunctuation},
	{Name: "whitespace", Regex: `\s+`, Role: RoleWhitespace},
}
