package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// cmac implements AES-CMAC (RFC 4493 / NIST SP 800-38B), used as the OMAC
// core of the AES-EAX construction.
type cmac struct {
	block  cipher.Block
	k1, k2 [aes.BlockSize]byte
}

func newCMAC(key []byte) (*cmac, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("subtle: failed to create AES cipher: %w", err)
	}

	c := &cmac{block: block}

	// Subkeys: L = E_K(0); K1 = dbl(L); K2 = dbl(K1).
	var l [aes.BlockSize]byte
	block.Encrypt(l[:], l[:])
	c.k1 = dbl(l)
	c.k2 = dbl(c.k1)
	return c, nil
}

// dbl doubles a block in GF(2^128): left shift by one, conditionally XORing
// the reduction polynomial 0x87 into the last byte. Branch-free on the MSB.
func dbl(in [aes.BlockSize]byte) [aes.BlockSize]byte {
	var out [aes.BlockSize]byte
	carry := byte(0)
	for i := aes.BlockSize - 1; i >= 0; i-- {
		out[i] = in[i]<<1 | carry
		carry = in[i] >> 7
	}
	out[aes.BlockSize-1] ^= 0x87 & (0 - carry)
	return out
}

// sum computes CMAC over msg.
func (c *cmac) sum(msg []byte) [aes.BlockSize]byte {
	var state [aes.BlockSize]byte
	n := len(msg)

	fullBlocks := n / aes.BlockSize
	rem := n % aes.BlockSize
	if rem == 0 && n > 0 {
		// The final complete block is handled separately with K1.
		fullBlocks--
		rem = aes.BlockSize
	}

	for i := 0; i < fullBlocks; i++ {
		subtle.XORBytes(state[:], state[:], msg[i*aes.BlockSize:(i+1)*aes.BlockSize])
		c.block.Encrypt(state[:], state[:])
	}

	var last [aes.BlockSize]byte
	tail := msg[fullBlocks*aes.BlockSize:]
	if rem == aes.BlockSize {
		copy(last[:], tail)
		subtle.XORBytes(last[:], last[:], c.k1[:])
	} else {
		copy(last[:], tail)
		last[len(tail)] = 0x80
		subtle.XORBytes(last[:], last[:], c.k2[:])
	}

	subtle.XORBytes(last[:], last[:], state[:])
	var tag [aes.BlockSize]byte
	c.block.Encrypt(tag[:], last[:])
	return tag
}
