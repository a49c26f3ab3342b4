package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// CanonicalEncoding returns the canonical name of charset, or "" for UTF-8.
func CanonicalEncoding(charset string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return "", nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", charset, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return name, nil
	}
	if canonical == "utf-8" {
		return "", nil
	}
	return canonical, nil
}

// Decode transcodes content from charset to UTF-8.
// Пустая кодировка и utf-8 возвращают content без копирования.
func Decode(content []byte, charset string) ([]byte, error) {
	name, err := CanonicalEncoding(charset)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return content, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", charset, err)
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}
