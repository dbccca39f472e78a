package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ContentHash computes a deterministic content-addressed digest from an
// ordered list of fields, joined with "|" before hashing, truncated to n
// hex characters. Used by RealWorldEntityFactory (id = 12 hex chars, §4.7)
// and RoleDetector (id = 8 hex chars, §4.8). Identical fields always
// produce identical output (§8 P2).
func ContentHash(n int, fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	hexSum := hex.EncodeToString(sum[:])
	if n > len(hexSum) {
		n = len(hexSum)
	}
	return hexSum[:n]
}

// InstanceID builds a namespaced, readable instance id:
// "inst:<TypeLabel>_<CleanLabel>_<hash>".
func InstanceID(typeLabel, cleanLabel, hash string) string {
	return fmt.Sprintf("inst:%s_%s_%s", typeLabel, cleanLabel, hash)
}
