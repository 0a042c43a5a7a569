package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrInvalidHashFormat = errors.New("invalid password hash format")

// Argon2id parameters. Changing these only affects newly created
// hashes; verification reads the parameters back from the digest.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashPassword hashes a plaintext password with argon2id and a random
// salt. The result is self-describing:
// $argon2id$v=19$m=65536,t=1,p=4$BASE64_SALT$BASE64_HASH
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads, encodedSalt, encodedHash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored digest. The comparison is constant-time with respect to the
// hash bytes. A malformed digest never matches.
func VerifyPassword(password, digest string) bool {
	salt, storedHash, time, memory, threads, err := decodeDigest(digest)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(storedHash)))

	return subtle.ConstantTimeCompare(computed, storedHash) == 1
}

func decodeDigest(digest string) (salt, hash []byte, time, memory uint32, threads uint8, err error) {
	// Expected: ["", "argon2id", "v=19", "m=65536,t=1,p=4", salt, hash]
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	var p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &p); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}
	threads = uint8(p)

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidHashFormat
	}

	return salt, hash, time, memory, threads, nil
}
