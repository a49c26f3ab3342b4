package diag

import "fmt"

// Code identifies a diagnostic. The thousands digit picks the family:
// 1xxx lexer, 4xxx I/O, 5xxx configuration.
type Code uint16

const (
	UnknownCode Code = 0

	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadUnderscore            Code = 1006

	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	CfgInfo            Code = 5000
	CfgInvalidValue    Code = 5001
	CfgVersionTooOld   Code = 5002
	CfgUnknownEncoding Code = 5003
)

var codeFamilies = []struct {
	from, to Code
	prefix   string
}{
	{1000, 2000, "LEX"},
	{4000, 5000, "IO"},
	{5000, 6000, "CFG"},
}

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadUnderscore:            "Misplaced underscore in number",
	IOLoadFileError:             "I/O load file error",
	IOCacheError:                "Token cache error",
	CfgInfo:                     "Configuration information",
	CfgInvalidValue:             "Invalid configuration value",
	CfgVersionTooOld:            "Configuration requires a newer javalex",
	CfgUnknownEncoding:          "Unknown source encoding",
}

// ID returns the stable identifier printed next to messages, e.g. "LEX1002".
func (c Code) ID() string {
	for _, f := range codeFamilies {
		if c >= f.from && c < f.to {
			return fmt.Sprintf("%s%04d", f.prefix, uint16(c))
		}
	}
	return "E0000"
}

func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return "[" + c.ID() + "]: " + c.Title()
}
