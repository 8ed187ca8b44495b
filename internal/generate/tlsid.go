package generate

import (
	"crypto/md5" //nolint:gosec // identifier derivation, not a security boundary
	"encoding/base32"
	"strings"
)

// crockfordEncoding is Douglas Crockford's base32 alphabet: no padding, and
// it omits the visually ambiguous I/L/O/U letters. No pack example imports a
// dedicated Crockford base32 library, so this is built directly on the
// standard library's encoding/base32 with a custom alphabet.
var crockfordEncoding = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// tlsSecretID derives the deterministic identifier used in the generated
// TLS secret name "cert-ingress-<id>" (spec section 4.2.4): the lowercase
// Crockford base32 encoding of the MD5 digest of host. Equal hosts always
// yield equal ids.
func tlsSecretID(host string) string {
	sum := md5.Sum([]byte(host)) //nolint:gosec
	return strings.ToLower(crockfordEncoding.EncodeToString(sum[:]))
}
