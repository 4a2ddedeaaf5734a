package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// GenerateUniqueHash returns a random hex identifier seeded with the current time.
func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PadScaled copies values into a zero-filled slice of length capacity,
// multiplying each element by scale. It fails when values does not fit.
func PadScaled(values []float64, capacity int, scale float64) ([]float64, error) {
	if len(values) > capacity {
		return nil, fmt.Errorf("%d values exceed capacity %d", len(values), capacity)
	}
	out := make([]float64, capacity)
	for i, v := range values {
		out[i] = v * scale
	}
	return out, nil
}

// Broadcast returns values unchanged when it already has length n, or a
// slice of n copies of its single element. Empty input yields n zeros.
func Broadcast(values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		return append([]float64(nil), values...), nil
	case 0:
		return make([]float64, n), nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot broadcast %d values to %d", len(values), n)
}
