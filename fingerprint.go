package navcache

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

var defaultMarshal = json.Marshal

// Fingerprint returns a stable content hash of the subtree rooted at node.
// Equal fingerprints mean structurally equal subtrees, so two snapshots of
// a cache can be compared without walking them in lockstep. Payloads are
// marshaled with encoding/json.
func Fingerprint(node *CacheNode) (string, error) {
	return FingerprintWith(node, defaultMarshal)
}

// FingerprintWith is Fingerprint with a caller-supplied payload marshaler,
// for payload types encoding/json cannot handle.
func FingerprintWith(node *CacheNode, marshal func(any) ([]byte, error)) (string, error) {
	encoded, err := appendNode(nil, node, marshal)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	hash := blake2b.Sum256(encoded)
	return base64.RawURLEncoding.EncodeToString(hash[:]), nil
}
