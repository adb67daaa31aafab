package user

import (
	"Matrafl-Backend/domain"
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

// Argon2id parameters. Memory is in KiB.
const (
	argonMemory  uint32 = 19 * 1024
	argonTime    uint32 = 2
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

type (
	PasswordHasher interface {
		HashPassword(ctx context.Context, password string) (string, error)
		VerifyPassword(ctx context.Context, password string, encoded string) error
	}

	// argonHasher caps how many hashes run at once, since each one holds
	// argonMemory KiB for its whole duration.
	argonHasher struct {
		slots *semaphore.Weighted
	}
)

func NewPasswordHasher() PasswordHasher {
	return &argonHasher{slots: semaphore.NewWeighted(int64(runtime.NumCPU()))}
}

// HashPassword returns a PHC string:
// $argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
func (h *argonHasher) HashPassword(ctx context.Context, password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	h.slots.Release(1)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword returns nil on a match, domain.ErrPasswordMismatch on a
// wrong password and domain.ErrMalformedHash if encoded cannot be parsed.
func (h *argonHasher) VerifyPassword(ctx context.Context, password string, encoded string) error {
	p, err := decodeHash(encoded)
	if err != nil {
		return err
	}

	if err := h.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	key := argon2.IDKey([]byte(password), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	h.slots.Release(1)

	if subtle.ConstantTimeCompare(key, p.key) != 1 {
		return domain.ErrPasswordMismatch
	}
	return nil
}

// Upper bounds for parameters read back from a stored hash. Anything larger
// is treated as corrupt rather than handed to argon2.
const (
	maxArgonMemory  = 1 << 20
	maxArgonTime    = 10
	maxArgonThreads = 16
	minArgonKeyLen  = 16
	maxArgonKeyLen  = 64
)

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func decodeHash(encoded string) (argonParams, error) {
	var p argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, domain.ErrMalformedHash
	}

	version, ok := parseParam(parts[2], "v", argon2.Version)
	if !ok || version != argon2.Version {
		return p, domain.ErrMalformedHash
	}

	fields := strings.Split(parts[3], ",")
	if len(fields) != 3 {
		return p, domain.ErrMalformedHash
	}
	memory, okM := parseParam(fields[0], "m", maxArgonMemory)
	time, okT := parseParam(fields[1], "t", maxArgonTime)
	threads, okP := parseParam(fields[2], "p", maxArgonThreads)
	if !okM || !okT || !okP {
		return p, domain.ErrMalformedHash
	}
	p.memory, p.time, p.threads = uint32(memory), uint32(time), uint8(threads)

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return p, domain.ErrMalformedHash
	}
	p.key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(p.key) < minArgonKeyLen || len(p.key) > maxArgonKeyLen {
		return p, domain.ErrMalformedHash
	}
	return p, nil
}

// parseParam reads "name=value" where value is a decimal in [1, limit].
func parseParam(field string, name string, limit uint64) (uint64, bool) {
	value, found := strings.CutPrefix(field, name+"=")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil || n == 0 || n > limit {
		return 0, false
	}
	return n, true
}
