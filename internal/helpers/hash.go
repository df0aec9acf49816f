package helpers

import (
	"crypto/md5"
	"fmt"
)

// Hash is an utility to determine a MD5 hash (acceptable as not used for security reasons).
func Hash(bytes []byte) string {
	h := md5.New()
	h.Write(bytes)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// HashParts determines a single hash from several values.
// Parts are length-prefixed so that ("ab", "c") and ("a", "bc") differ.
func HashParts(parts ...string) string {
	h := md5.New()
	for _, part := range parts {
		fmt.Fprintf(h, "%d:%s;", len(part), part)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
