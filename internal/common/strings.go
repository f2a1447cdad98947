package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// Decapitalize lowercases the first rune of s unless the first two runes are
// both upper case, so "Name" becomes "name" and "URL" stays "URL".
func Decapitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError || !unicode.IsUpper(first) {
		return s
	}

	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) {
		return s
	}

	return string(unicode.ToLower(first)) + s[size:]
}

// PkgAlias returns the default import name for pkgPath: the last path
// element, skipping a major version suffix ("example.com/mod/v2" -> "mod").
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); dir != "." && isMajorVersion(base) {
		return path.Base(dir)
	}

	return base
}

func isMajorVersion(s string) bool {
	n, ok := strings.CutPrefix(s, "v")
	if !ok {
		return false
	}

	v, err := strconv.Atoi(n)

	return err == nil && v >= 2
}
