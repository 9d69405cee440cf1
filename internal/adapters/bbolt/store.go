// Package bbolt implements ports.VectorCache on an embedded bbolt database.
// One bucket per embedding model; within a bucket, the key is the SHA-256 of
// the embedded text and the value a compact binary vector. Writes are
// transactional, so a crash mid-write cannot corrupt committed vectors.
package bbolt

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store implements ports.VectorCache backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// textKey hashes the embedded text; lyrics can be kilobytes, the digest is
// a fixed 32 bytes.
func textKey(text string) []byte {
	h := sha256.Sum256([]byte(text))
	return h[:]
}

// GetVector returns the cached vector for (model, text), with found=false on
// a miss.
func (s *Store) GetVector(model, text string) ([]float32, bool, error) {
	var vec []float32
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(model))
		if b == nil {
			return nil
		}
		raw := b.Get(textKey(text))
		if raw == nil {
			return nil
		}
		v, err := decodeVector(raw)
		if err != nil {
			return err
		}
		vec = v
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("get vector: %w", err)
	}
	return vec, vec != nil, nil
}

// PutVector stores a vector for (model, text), overwriting any prior one.
func (s *Store) PutVector(model, text string, vec []float32) error {
	encoded := encodeVector(vec)
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(model))
		if err != nil {
			return err
		}
		return b.Put(textKey(text), encoded)
	})
	if err != nil {
		return fmt.Errorf("put vector: %w", err)
	}
	return nil
}

// Binary vector format (little-endian): dim uint32, then dim float32 values.

func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4+4*len(vec))
	binary.LittleEndian.PutUint32(buf, uint32(len(vec)))
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[4+4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(raw []byte) ([]float32, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("vector blob too short: %d bytes", len(raw))
	}
	dim := int(binary.LittleEndian.Uint32(raw))
	if len(raw) != 4+4*dim {
		return nil, fmt.Errorf("vector blob size mismatch: dim %d, %d bytes", dim, len(raw))
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4+4*i:]))
	}
	return vec, nil
}
