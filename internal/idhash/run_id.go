package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeRunID computes a deterministic run_id using SHA256.
// Formula: SHA256(security_id|strategy_name|period_start_ms)
// Returns hex-encoded hash (64 characters).
func ComputeRunID(securityID string, strategyName string, periodStartMs int64) string {
	data := fmt.Sprintf("%s|%s|%d", securityID, strategyName, periodStartMs)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
