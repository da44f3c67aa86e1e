package internal

import (
	"unicode"
	"unicode/utf8"
)

// Panics if given non-nil error.
// Should be used only in case of non-recoverable developer error.
func PanicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

// Lowercases the first character of given name, leaving the rest untouched.
// "OrderService" becomes "orderService", "URLService" becomes "uRLService".
func LowerFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(first)) + name[size:]
}
