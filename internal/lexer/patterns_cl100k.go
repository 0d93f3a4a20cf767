package lexer

// CL100KPatterns is cl100k_base's word-phase pattern set. The
// case-insensitive contraction group is expanded into explicit case
// alternatives since the DFA compiler has no case-insensitive group
// syntax; the `\s+(?!\S)` lookahead alternative is dropped for the same
// reason the r50k set drops it, see R50KPatterns.
var CL100KPatterns = []Pattern{
	{Name: "contraction", Regex: `'[sS]|'[tT]|'[rR][eE]|'[vV][eE]|'[mM]|'[lL][lL]|'[dD]`, Role: RoleStandalone},
	{Name: "word", Regex: `[^\r\n\p{L}\p{N}]?\p{L}+`, Role: RoleWordContraction},
	{Name: "number", Regex: `\p{N}{1,3}`, Role: RoleStandalone},
	{Name: "punct", Regex: ` ?[^\s\p{L}\p{N}]+[\r\n]*`, Role: RolePunctuation},
	{Name: "newline", Regex: `\s*[\r\n]+`, Role: RoleStandalone},
	{Name: "whitespace", Regex: `\s+`, Role: RoleWhitespace},
}
