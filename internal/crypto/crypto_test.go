package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/models"
)

// cheap parameters keep the tests fast; production defaults come from config.
var testParams = models.KDFParams{Iterations: 1, MemoryKiB: 1024, Parallelism: 1}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestDeriveVaultKeys_DeterministicAndSeparated(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1, err := DeriveVaultKeys("correct horse battery staple", salt, testParams)
	require.NoError(t, err)
	k2, err := DeriveVaultKeys("correct horse battery staple", salt, testParams)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1.EncryptionKey, KeySize)
	assert.Len(t, k1.AuthSecret, KeySize)
	assert.NotEqual(t, k1.EncryptionKey, k1.AuthSecret)
}

func TestDeriveVaultKeys_InputsMatter(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	base, err := DeriveVaultKeys("pw", salt, testParams)
	require.NoError(t, err)

	otherPassword, err := DeriveVaultKeys("pw2", salt, testParams)
	require.NoError(t, err)
	otherSalt, err := DeriveVaultKeys("pw", bytes.Repeat([]byte{0x02}, SaltSize), testParams)
	require.NoError(t, err)
	otherParams, err := DeriveVaultKeys("pw", salt, models.KDFParams{Iterations: 2, MemoryKiB: 1024, Parallelism: 1})
	require.NoError(t, err)

	assert.NotEqual(t, base.EncryptionKey, otherPassword.EncryptionKey)
	assert.NotEqual(t, base.EncryptionKey, otherSalt.EncryptionKey)
	assert.NotEqual(t, base.EncryptionKey, otherParams.EncryptionKey)
}

func TestDeriveVaultKeys_RejectsZeroParams(t *testing.T) {
	_, err := DeriveVaultKeys("pw", []byte("salt"), models.KDFParams{})
	assert.ErrorIs(t, err, ErrInvalidKDFParams)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)
	plaintext := []byte("the vault")

	blob, err := Seal(key, plaintext, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "the vault")

	got, err := Open(key, blob, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)

	again, err := Seal(key, plaintext, nil)
	require.NoError(t, err)
	assert.NotEqual(t, blob, again, "nonce must be random per encryption")
}

func TestOpen_Failures(t *testing.T) {
	key := bytes.Repeat([]byte{7}, KeySize)
	blob, err := Seal(key, []byte("data"), []byte("aad"))
	require.NoError(t, err)

	_, err = Open(bytes.Repeat([]byte{8}, KeySize), blob, []byte("aad"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = Open(key, blob, []byte("other"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	tampered := append([]byte(nil), blob...)
	tampered[len(tampered)-1] ^= 1
	_, err = Open(key, tampered, []byte("aad"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = Open(key, blob[:10], []byte("aad"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	_, err = Seal([]byte("short"), []byte("x"), nil)
	assert.Error(t, err)
}

// Encrypting with a password-derived key and decrypting with a key derived
// from a different password must fail.
func TestKeyChain_VaultRoundTripAndWrongPassword(t *testing.T) {
	kc := NewKeyChain()

	creds, err := kc.NewCredentials("master-1", testParams)
	require.NoError(t, err)

	doc := models.VaultDocument{
		Credentials: []models.Credential{{Name: "mail", Username: "alice", Password: "s3cret"}},
		Emails:      []string{"alice@example.com"},
	}
	blob, err := kc.EncryptVault(doc, creds.Keys.EncryptionKey)
	require.NoError(t, err)

	sameKeys, err := kc.DeriveKeys("master-1", creds.Salt, testParams)
	require.NoError(t, err)
	got, err := kc.DecryptVault(blob, sameKeys.EncryptionKey)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	wrongKeys, err := kc.DeriveKeys("master-2", creds.Salt, testParams)
	require.NoError(t, err)
	_, err = kc.DecryptVault(blob, wrongKeys.EncryptionKey)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestKeyChain_EmptyBlobIsEmptyVault(t *testing.T) {
	doc, err := NewKeyChain().DecryptVault(nil, bytes.Repeat([]byte{1}, KeySize))
	require.NoError(t, err)
	assert.Empty(t, doc.Credentials)
}

// The registered verifier must authenticate an SRP login driven by keys
// derived from the same password.
func TestKeyChain_CredentialsDriveSRP(t *testing.T) {
	kc := NewKeyChain()
	creds, err := kc.NewCredentials("pw", testParams)
	require.NoError(t, err)

	server, err := srp.NewServer(srp.RFC5054Group2048, creds.Verifier)
	require.NoError(t, err)

	keys, err := kc.DeriveKeys("pw", creds.Salt, testParams)
	require.NoError(t, err)
	client, err := srp.NewClient(srp.RFC5054Group2048, keys.SRPPrivateKey(creds.Salt))
	require.NoError(t, err)

	m1, err := client.ComputeProof(server.PublicEphemeral())
	require.NoError(t, err)
	m2, err := server.VerifyClient(client.PublicEphemeral(), m1)
	require.NoError(t, err)
	assert.NoError(t, client.VerifyServer(m2))
}

func TestRecord_SealOpen(t *testing.T) {
	priv, err := GenerateKeyPairSize(2048)
	require.NoError(t, err)

	pubDER, err := MarshalPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pub, err := ParsePublicKey(pubDER)
	require.NoError(t, err)

	fields := map[string][]byte{"from": []byte("bank@example.com"), "subject": []byte("statement")}
	record, err := SealRecord(pub, fields)
	require.NoError(t, err)
	assert.NotEqual(t, fields["from"], record.Fields["from"])

	privDER, err := MarshalPrivateKey(priv)
	require.NoError(t, err)
	parsed, err := ParsePrivateKey(privDER)
	require.NoError(t, err)

	opened, err := OpenRecord(parsed, record)
	require.NoError(t, err)
	assert.Equal(t, fields, opened)
}

func TestRecord_SwappedFieldsOrWrongKeyFail(t *testing.T) {
	priv, err := GenerateKeyPairSize(2048)
	require.NoError(t, err)
	other, err := GenerateKeyPairSize(2048)
	require.NoError(t, err)

	record, err := SealRecord(&priv.PublicKey, map[string][]byte{"a": []byte("1"), "b": []byte("2")})
	require.NoError(t, err)

	_, err = OpenRecord(other, record)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	record.Fields["a"], record.Fields["b"] = record.Fields["b"], record.Fields["a"]
	_, err = OpenRecord(priv, record)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestParseKeys_RejectGarbage(t *testing.T) {
	_, err := ParsePublicKey([]byte("nope"))
	assert.Error(t, err)
	_, err = ParsePrivateKey([]byte("nope"))
	assert.Error(t, err)
}
