// Package idcodec reversibly obfuscates internal numeric keys before they
// cross the public boundary. The transform is a single deterministic AES
// block over the big-endian id, URL-safe base64 encoded: the same id always
// yields the same string, decode(encode(x)) == x for every int64 x, and
// distinct ids never collide (the block cipher is a bijection).
package idcodec

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/storepulse/insight-api/internal/core/domain"
)

// Block layout: 8 id bytes followed by 8 pad bytes of value 8, i.e. the
// PKCS#5 padding of an 8-byte plaintext. The pad doubles as an integrity
// check on decode.
const (
	idBytes  = 8
	padByte  = byte(8)
	blockLen = aes.BlockSize
)

// Codec encodes and decodes opaque identifiers. It is stateless and safe
// for concurrent use; the key is fixed for the process lifetime.
type Codec struct {
	block cipher.Block
}

// New builds a Codec from the configured secret. The key must be 16, 24 or
// 32 bytes long.
func New(key string) (*Codec, error) {
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("idcodec: %w", err)
	}
	return &Codec{block: block}, nil
}

// Encode turns an internal id into its opaque client-facing form.
func (c *Codec) Encode(id int64) string {
	var plain [blockLen]byte
	binary.BigEndian.PutUint64(plain[:idBytes], uint64(id))
	for i := idBytes; i < blockLen; i++ {
		plain[i] = padByte
	}

	var out [blockLen]byte
	c.block.Encrypt(out[:], plain[:])
	return base64.RawURLEncoding.EncodeToString(out[:])
}

// Decode recovers the internal id from an opaque string the server itself
// produced (stored values, internal references). A failure here means key
// mismatch or corruption, not client input, and surfaces as ErrDecryption.
func (c *Codec) Decode(token string) (int64, error) {
	id, ok := c.decode(token)
	if !ok {
		return 0, domain.ErrDecryption
	}
	return id, nil
}

// DecodeClient recovers the internal id from a client-supplied string.
// Malformed or tampered values surface as ErrInvalidIDFormat; the message
// deliberately does not distinguish the two cases.
func (c *Codec) DecodeClient(token string) (int64, error) {
	id, ok := c.decode(token)
	if !ok {
		return 0, domain.ErrInvalidIDFormat
	}
	return id, nil
}

func (c *Codec) decode(token string) (int64, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != blockLen {
		return 0, false
	}

	var plain [blockLen]byte
	c.block.Decrypt(plain[:], raw)

	for i := idBytes; i < blockLen; i++ {
		if plain[i] != padByte {
			return 0, false
		}
	}
	return int64(binary.BigEndian.Uint64(plain[:idBytes])), true
}
