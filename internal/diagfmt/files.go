package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"javalex/internal/token"
)

// FileTokens — токены одного файла при выводе каталога.
type FileTokens struct {
	Path   string
	Tokens []token.Token
}

// FileRecord is the serialized form of FileTokens.
type FileRecord struct {
	Path   string        `json:"path" msgpack:"path" cbor:"path"`
	Tokens []TokenRecord `json:"tokens" msgpack:"tokens" cbor:"tokens"`
}

type pathTokenRecord struct {
	Path string `json:"path"`
	TokenRecord
}

func fileRecords(files []FileTokens) []FileRecord {
	out := make([]FileRecord, len(files))
	for i, f := range files {
		out[i] = FileRecord{Path: f.Path, Tokens: Records(f.Tokens)}
	}
	return out
}

// FormatFileTokens пишет токены нескольких файлов. pretty отделяет файлы
// заголовком "==> path <==", ndjson добавляет поле path к каждой записи,
// остальные форматы пишут массив FileRecord.
func FormatFileTokens(w io.Writer, files []FileTokens, format TokenFormat, opts TokenOpts) error {
	switch format {
	case TokenFormatPretty:
		for i, f := range files {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", f.Path); err != nil {
				return err
			}
			if err := FormatTokensPretty(w, f.Tokens, opts); err != nil {
				return err
			}
		}
		return nil
	case TokenFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(fileRecords(files))
	case TokenFormatNDJSON:
		encoder := json.NewEncoder(w)
		for _, f := range files {
			for _, rec := range Records(f.Tokens) {
				if err := encoder.Encode(pathTokenRecord{Path: f.Path, TokenRecord: rec}); err != nil {
					return err
				}
			}
		}
		return nil
	case TokenFormatMsgpack:
		return msgpack.NewEncoder(w).Encode(fileRecords(files))
	case TokenFormatCBOR:
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("cbor enc mode: %w", err)
		}
		return encMode.NewEncoder(w).Encode(fileRecords(files))
	default:
		return fmt.Errorf("unsupported token format %s", format)
	}
}
