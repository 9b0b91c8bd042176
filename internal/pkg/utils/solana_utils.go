package utils

import "github.com/mr-tron/base58"

// IsValidSolanaAddress reports whether s is a plausible Solana wallet
// address: base58 text decoding to a 32-byte public key.
func IsValidSolanaAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	decoded, err := base58.Decode(s)
	return err == nil && len(decoded) == 32
}
