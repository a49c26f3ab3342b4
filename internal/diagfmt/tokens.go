package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"javalex/internal/source"
	"javalex/internal/token"
)

// TokenFormat выбирает представление списка токенов.
type TokenFormat uint8

const (
	TokenFormatPretty TokenFormat = iota
	TokenFormatJSON
	TokenFormatNDJSON
	TokenFormatMsgpack
	TokenFormatCBOR
)

var tokenFormatNames = [...]string{
	TokenFormatPretty:  "pretty",
	TokenFormatJSON:    "json",
	TokenFormatNDJSON:  "ndjson",
	TokenFormatMsgpack: "msgpack",
	TokenFormatCBOR:    "cbor",
}

func (f TokenFormat) String() string {
	if int(f) < len(tokenFormatNames) {
		return tokenFormatNames[f]
	}
	return fmt.Sprintf("TokenFormat(%d)", f)
}

// Binary сообщает, что формат не предназначен для терминала.
func (f TokenFormat) Binary() bool {
	return f == TokenFormatMsgpack || f == TokenFormatCBOR
}

// TokenFormatNames возвращает допустимые имена форматов в порядке объявления.
func TokenFormatNames() []string {
	return append([]string(nil), tokenFormatNames[:]...)
}

// ParseTokenFormat converts a --format value.
func ParseTokenFormat(s string) (TokenFormat, error) {
	for i, name := range tokenFormatNames {
		if name == s {
			return TokenFormat(i), nil // #nosec G115 -- i < len(tokenFormatNames)
		}
	}
	return TokenFormatPretty, fmt.Errorf("unknown token format %q", s)
}

// TokenRecord — запись токена во всех машинных форматах.
type TokenRecord struct {
	Kind   string `json:"kind" msgpack:"kind" cbor:"kind"`
	Text   string `json:"text" msgpack:"text" cbor:"text"`
	Index  int    `json:"index" msgpack:"index" cbor:"index"`
	Line   int    `json:"line" msgpack:"line" cbor:"line"`
	Column int    `json:"column" msgpack:"column" cbor:"column"`
}

// Records converts tokens to their serializable form.
func Records(tokens []token.Token) []TokenRecord {
	out := make([]TokenRecord, len(tokens))
	for i, tok := range tokens {
		out[i] = TokenRecord{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Index:  tok.Pos.Index,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		}
	}
	return out
}

// Token восстанавливает токен из записи.
func (r TokenRecord) Token() (token.Token, error) {
	kind, err := token.ParseKind(r.Kind)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{
		Kind: kind,
		Text: r.Text,
		Pos:  source.Position{Index: r.Index, Line: r.Line, Column: r.Column},
	}, nil
}

// TokensFromRecords is the inverse of Records.
func TokensFromRecords(records []TokenRecord) ([]token.Token, error) {
	out := make([]token.Token, len(records))
	for i, r := range records {
		tok, err := r.Token()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = tok
	}
	return out, nil
}

// FormatTokens пишет токены в выбранном формате.
func FormatTokens(w io.Writer, tokens []token.Token, format TokenFormat, opts TokenOpts) error {
	switch format {
	case TokenFormatPretty:
		return FormatTokensPretty(w, tokens, opts)
	case TokenFormatJSON:
		return FormatTokensJSON(w, tokens)
	case TokenFormatNDJSON:
		return FormatTokensNDJSON(w, tokens)
	case TokenFormatMsgpack:
		return FormatTokensMsgpack(w, tokens)
	case TokenFormatCBOR:
		return FormatTokensCBOR(w, tokens)
	default:
		return fmt.Errorf("unsupported token format %s", format)
	}
}

func kindColor(kind token.Kind) *color.Color {
	switch kind {
	case token.Keyword:
		return color.New(color.FgMagenta, color.Bold)
	case token.LineComment, token.BlockComment:
		return color.New(color.FgHiBlack)
	case token.String, token.Char:
		return color.New(color.FgGreen)
	case token.Number, token.HexNumber, token.BinaryNumber:
		return color.New(color.FgCyan)
	case token.Annotation:
		return color.New(color.FgYellow)
	case token.Unknown:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// "  n: KIND  "lexeme"  at line:col".
func FormatTokensPretty(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	for i, tok := range tokens {
		c := kindColor(tok.Kind)
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		// выравниваем до раскраски, иначе escape-коды ломают ширину
		kind := c.Sprint(fmt.Sprintf("%-13s", tok.Kind))
		if _, err := fmt.Fprintf(w, "%4d: %s %s  at %s\n", i+1, kind, truncateLexeme(tok.Text, opts.Width), tok.Pos); err != nil {
			return err
		}
	}
	return nil
}

func truncateLexeme(text string, width int) string {
	quoted := strconv.Quote(text)
	if width <= 0 || runewidth.StringWidth(quoted) <= width {
		return quoted
	}
	if width <= 3 {
		return runewidth.Truncate(quoted, width, "")
	}
	return runewidth.Truncate(quoted, width, "...")
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Records(tokens))
}

// FormatTokensNDJSON пишет по одному объекту на строку.
func FormatTokensNDJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	for _, rec := range Records(tokens) {
		if err := encoder.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(Records(tokens))
}

// DecodeTokensMsgpack reads what FormatTokensMsgpack wrote.
func DecodeTokensMsgpack(r io.Reader) ([]TokenRecord, error) {
	var out []TokenRecord
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatTokensCBOR пишет канонический CBOR: одинаковые токены дают одинаковые байты.
func FormatTokensCBOR(w io.Writer, tokens []token.Token) error {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("cbor enc mode: %w", err)
	}
	return encMode.NewEncoder(w).Encode(Records(tokens))
}

func DecodeTokensCBOR(r io.Reader) ([]TokenRecord, error) {
	var out []TokenRecord
	if err := cbor.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
