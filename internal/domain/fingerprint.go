package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// FingerprintLength is the number of hex characters kept from the digest.
const FingerprintLength = 32

// NormalizedConfig is the part of a StoryGenerationConfig that identifies
// an equivalent request. Field order matches the lexicographic order of the
// JSON keys, which keeps the serialized form stable.
//
// DueDate, ChildStatus and AgeGroup are not part of it.
type NormalizedConfig struct {
	Baby    string `json:"baby"`
	Faith   string `json:"faith"`
	Length  string `json:"length"`
	Parent1 string `json:"parent1"`
	Parent2 string `json:"parent2"`
	Theme   string `json:"theme"`
}

// Normalize lower-cases enum values and trims and lower-cases names.
// Missing names become "".
func Normalize(c StoryGenerationConfig) NormalizedConfig {
	return NormalizedConfig{
		Baby:    normalizeName(c.BabyNickname),
		Faith:   strings.ToLower(string(c.FaithPreference)),
		Length:  strings.ToLower(string(c.Length)),
		Parent1: normalizeName(c.ParentOneName),
		Parent2: normalizeName(c.ParentTwoName),
		Theme:   strings.ToLower(string(c.Theme)),
	}
}

// Canonical returns the byte string that is hashed. It is compact JSON
// without HTML escaping, e.g.
// {"baby":"","faith":"spiritual","length":"short","parent1":"mom","parent2":"","theme":"nature_calm"}
func (n NormalizedConfig) Canonical() []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a struct of strings cannot fail.
	_ = enc.Encode(n)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// Fingerprint returns the first 32 hex characters of the SHA-256 digest
// of the canonical normalized config.
func Fingerprint(c StoryGenerationConfig) string {
	sum := sha256.Sum256(Normalize(c).Canonical())
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
