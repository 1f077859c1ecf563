package secret

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"plateful/internal/errors"
)

// codeAlphabet excludes characters that are easy to misread when typed from
// an email: 0/O/o, 1/I/l/L, 2/Z/z, 5/S/s, 8/B/b and their confusable peers.
const codeAlphabet = "34679ACDEFGHJKMNPQRTUVWXYacdefghjkmnpqrtuvwxy"

const (
	codeGroupLen = 4
	codeGroups   = 2
)

// CodePattern is the shape gate for submitted codes: two four-character
// groups drawn from codeAlphabet, joined by a hyphen. Anything outside it
// is rejected before a hash comparison is attempted.
var CodePattern = regexp.MustCompile(`^[` + codeAlphabet + `]{4}-[` + codeAlphabet + `]{4}$`)

// CodeGenerator produces login codes of the form "XXXX-XXXX" using
// crypto/rand. It implements service.CodeGenerator.
type CodeGenerator struct{}

// NewCodeGenerator creates a code generator.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// Generate returns a fresh code in display form.
func (g *CodeGenerator) Generate() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))

	var sb strings.Builder
	for group := 0; group < codeGroups; group++ {
		if group > 0 {
			sb.WriteByte('-')
		}
		for i := 0; i < codeGroupLen; i++ {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", errors.Wrap(err, "generate code")
			}
			sb.WriteByte(codeAlphabet[n.Int64()])
		}
	}
	return sb.String(), nil
}
