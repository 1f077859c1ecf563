package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonHasher_HashAndCheck(t *testing.T) {
	hasher := NewArgonHasher(DefaultArgon2Params())

	hash, err := hasher.Hash("4AFK-TQ9M")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, hasher.Check("4AFK-TQ9M", hash))
	assert.False(t, hasher.Check("4AFK-TQ9X", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgonHasher_HashIsSalted(t *testing.T) {
	hasher := NewArgonHasher(DefaultArgon2Params())

	first, err := hasher.Hash("4AFK-TQ9M")
	require.NoError(t, err)
	second, err := hasher.Hash("4AFK-TQ9M")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgonHasher_CheckRejectsMalformedHash(t *testing.T) {
	hasher := NewArgonHasher(DefaultArgon2Params())

	for _, hash := range []string{
		"",
		"not-a-hash",
		"$bcrypt$v=19$m=65536,t=4,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=4,p=4$!!!$aGFzaA",
	} {
		assert.False(t, hasher.Check("4AFK-TQ9M", hash), "hash %q", hash)
	}
}

func TestAESCipher_RoundTrip(t *testing.T) {
	cipher, err := NewAESCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	ciphertext, err := cipher.Encrypt("user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "user@example.com", ciphertext)

	plaintext, err := cipher.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", plaintext)
}

func TestAESCipher_EncryptionIsRandomized(t *testing.T) {
	cipher, err := NewAESCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	first, err := cipher.Encrypt("user@example.com")
	require.NoError(t, err)
	second, err := cipher.Encrypt("user@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAESCipher_RejectsBadKeyAndCiphertext(t *testing.T) {
	_, err := NewAESCipher([]byte("short"))
	require.Error(t, err)

	cipher, err := NewAESCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	_, err = cipher.Decrypt("not base64 !!!")
	assert.Error(t, err)

	_, err = cipher.Decrypt("c2hvcnQ")
	assert.Error(t, err)

	ciphertext, err := cipher.Encrypt("user@example.com")
	require.NoError(t, err)
	other, err := NewAESCipher([]byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)
	_, err = other.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestHMACDigester_EmailNormalization(t *testing.T) {
	digester := NewHMACDigester([]byte("digest-secret"))

	canonical := digester.DigestEmail("user@example.com")
	assert.Equal(t, canonical, digester.DigestEmail("  User@Example.COM  "))
	assert.Equal(t, canonical, digester.DigestEmail("USER@EXAMPLE.COM"))
	assert.NotEqual(t, canonical, digester.DigestEmail("other@example.com"))
}

func TestHMACDigester_TokenIsNotNormalized(t *testing.T) {
	digester := NewHMACDigester([]byte("digest-secret"))

	assert.NotEqual(t, digester.DigestToken("abc.DEF.ghi"), digester.DigestToken("abc.def.ghi"))
	assert.NotEqual(t, digester.DigestToken("token"), digester.DigestToken(" token"))
	assert.Equal(t, digester.DigestToken("token"), digester.DigestToken("token"))
}

func TestHMACDigester_KeyChangesDigest(t *testing.T) {
	first := NewHMACDigester([]byte("digest-secret"))
	second := NewHMACDigester([]byte("another-secret"))

	assert.NotEqual(t, first.DigestEmail("user@example.com"), second.DigestEmail("user@example.com"))
}

func TestCodeGenerator_Shape(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 9)
		assert.Equal(t, byte('-'), code[4])
		for _, ch := range code[:4] + code[5:] {
			assert.Contains(t, codeAlphabet, string(ch))
		}
	}
}

func TestCodeGenerator_AlphabetExcludesAmbiguousCharacters(t *testing.T) {
	for _, ch := range "01258BILOSZbilosz" {
		assert.NotContains(t, codeAlphabet, string(ch))
	}
}

func TestCodePattern_AcceptsGeneratedCodes(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 50; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.True(t, CodePattern.MatchString(code), "code %q", code)
	}
}

func TestCodePattern_RejectsMalformedCodes(t *testing.T) {
	for _, code := range []string{
		"",
		"4AFK",
		"4AFKTQ9M",
		"4AFK-TQ9",
		"4AFK-TQ9MX",
		"4AFK_TQ9M",
		" 4AFK-TQ9M",
		"0O1l-5S8B",
		"4AFK-TQ8M",
		"4AFB-TQ9M",
		"4afk-tq5m",
	} {
		assert.False(t, CodePattern.MatchString(code), "code %q", code)
	}
}
