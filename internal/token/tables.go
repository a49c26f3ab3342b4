package token

// Таблицы неизменяемы после инициализации пакета; наружу отдаются только предикаты.

var keywords = setOf(
	"abstract", "assert", "boolean", "break",
	"byte", "case", "catch", "char", "class",
	"continue", "default", "do", "double",
	"else", "enum", "extends", "final", "if",
	"finally", "float", "for", "implements",
	"import", "instanceof", "int", "interface",
	"long", "native", "new", "package", "private",
	"protected", "public", "return", "short",
	"static", "super", "switch", "synchronized",
	"this", "throw", "throws", "transient", "try",
	"void", "volatile", "while", "goto", "@interface",
	"true", "false", "null", "const", "strictfp", "_",
)

var operators = setOf(
	"!=", "=", "==", "<", ">", ">=", "<=", "~=",
	"/=", "*=", "+=", "-=", "-", "+", "*", "/",
	"!", "~", "^", "&", "^=", "|", "|=", "&=",
	"%", "%=", "&&", "||", "++", "--", "<<", ">>",
	"<<=", ">>=", ">>>", ">>>=",
)

// operatorStarters — символы, с которых может начинаться оператор.
var operatorStarters = [128]bool{
	'=': true, '!': true, '<': true, '>': true, '+': true, '-': true, '*': true,
	'/': true, '&': true, '~': true, '|': true, '%': true, '^': true,
}

var symbols = setOf(
	";", "->", "{", "}", "[", "]", "(", ")", ",", "@", ".", "?", ":", "::",
)

// LambdaArrow is operator-shaped but classified as Symbol.
const LambdaArrow = "->"

func setOf(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return m
}
