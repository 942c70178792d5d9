package lang

var (
	rulesC = []Rule{
		prefix("//"),
		block("/*", "*/"),
	}
	rulesHash = []Rule{
		prefix("#"),
	}
	rulesHTML = []Rule{
		block("<!--", "-->"),
	}
	rulesCSS = []Rule{
		block("/*", "*/"),
	}
	rulesMatlab = []Rule{
		prefix("%"),
		block("%{", "%}"),
	}
	rulesScheme = []Rule{
		prefix(";"),
		block("#|", "|#"),
	}
	rulesLisp = []Rule{
		prefix(";"),
	}
	rulesHaskell = []Rule{
		prefix("--"),
		block("{-", "-}"),
	}
	rulesRuby = []Rule{
		prefix("#"),
		block("=begin", "=end"),
	}
	rulesSQL = []Rule{
		prefix("--"),
		block("/*", "*/"),
	}
	rulesPHP = []Rule{
		prefix("//"),
		prefix("#"),
		block("/*", "*/"),
	}
	rulesBatch = []Rule{
		prefix("REM "),
		prefix("rem "),
		prefix("::"),
	}
	rulesPowershell = []Rule{
		prefix("#"),
		block("<#", "#>"),
	}
	rulesOCaml = []Rule{
		block("(*", "*)"),
	}
)

// languages maps an extension key to its descriptor. Keys are matched
// case-sensitively and never mutated after init. Dotless file names key by
// the whole name ("makefile"), dotfiles by the part after the dot.
var languages = map[string]Language{
	"rs":     {Name: "Rust", Rules: rulesC},
	"go":     {Name: "Go", Rules: rulesC},
	"h":      {Name: "C", Rules: rulesC},
	"c":      {Name: "C", Rules: rulesC},
	"hpp":    {Name: "C++", Rules: rulesC},
	"cpp":    {Name: "C++", Rules: rulesC},
	"cs":     {Name: "C#", Rules: rulesC},
	"java":   {Name: "Java", Rules: rulesC},
	"js":     {Name: "JavaScript", Rules: rulesC},
	"jsx":    {Name: "JSX", Rules: rulesC},
	"ts":     {Name: "TypeScript", Rules: rulesC},
	"tsx":    {Name: "TSX", Rules: rulesC},
	"carbon": {Name: "Carbon", Rules: rulesC},
	"swift":  {Name: "Swift", Rules: rulesC},
	"dart":   {Name: "Dart", Rules: rulesC},
	"sc":     {Name: "Scala", Rules: rulesC},
	"kt":     {Name: "Kotlin", Rules: rulesC},
	"hla":    {Name: "HLA", Rules: rulesC},
	"rhai":   {Name: "Rhai", Rules: rulesC},
	"zig":    {Name: "Zig", Rules: []Rule{prefix("//")}},

	"wgsl": {Name: "WGSL", Rules: rulesC},
	"glsl": {Name: "GLSL", Rules: rulesC},
	"hlsl": {Name: "HLSL", Rules: rulesC},

	"php": {Name: "PHP", Rules: rulesPHP},
	"hs":  {Name: "Haskell", Rules: rulesHaskell},
	"ml":  {Name: "OCaml", Rules: rulesOCaml},
	"rb":  {Name: "Ruby", Rules: rulesRuby},
	"lua": {Name: "Lua", Rules: rulesC},
	"sql": {Name: "SQL", Rules: rulesSQL},
	"asm": {Name: "Assembly", Rules: []Rule{prefix(";")}},
	"tao": {Name: "Tao", Rules: []Rule{prefix("##")}},

	"html":   {Name: "HTML", Rules: rulesHTML},
	"vue":    {Name: "Vue", Rules: rulesHTML},
	"svelte": {Name: "Svelte", Rules: rulesHTML},
	"css":    {Name: "CSS", Rules: rulesCSS},
	"scss":   {Name: "SCSS", Rules: rulesC},
	"less":   {Name: "Less", Rules: rulesC},

	"py":     {Name: "Python", Rules: rulesHash},
	"r":      {Name: "R", Rules: rulesHash},
	"pl":     {Name: "Perl", Rules: rulesHash},
	"ex":     {Name: "Elixir", Rules: rulesHash},
	"exs":    {Name: "Elixir", Rules: rulesHash},
	"erl":    {Name: "Erlang", Rules: []Rule{prefix("%")}},
	"jl":     {Name: "Julia", Rules: rulesHash},
	"nim":    {Name: "Nim", Rules: rulesHash},
	"emojic": {Name: "emojicode", Rules: rulesHash},

	"toml":      {Name: "TOML", Rules: rulesHash},
	"yml":       {Name: "YAML", Rules: rulesHash},
	"yaml":      {Name: "YAML", Rules: rulesHash},
	"ini":       {Name: "INI", Rules: []Rule{prefix(";"), prefix("#")}},
	"gitignore": {Name: "git ignore", Rules: rulesHash},
	"makefile":  {Name: "make file", Rules: rulesHash},
	"bash":      {Name: "bash script", Rules: rulesHash},
	"sh":        {Name: "shell script", Rules: rulesHash},
	"zsh":       {Name: "zsh script", Rules: rulesHash},
	"fish":      {Name: "fish script", Rules: rulesHash},

	"bat": {Name: "batch script", Rules: rulesBatch},
	"ps1": {Name: "PowerShell", Rules: rulesPowershell},

	"m":   {Name: "Matlab", Rules: rulesMatlab},
	"mat": {Name: "Matlab", Rules: rulesMatlab},

	"ss":  {Name: "Scheme", Rules: rulesScheme},
	"sls": {Name: "Scheme", Rules: rulesScheme},
	"scm": {Name: "Scheme", Rules: rulesScheme},

	"el":   {Name: "Emacs Lisp", Rules: rulesLisp},
	"lisp": {Name: "Common Lisp", Rules: rulesLisp},
}
