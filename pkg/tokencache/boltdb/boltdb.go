// Package boltdb implements a BoltDB-backed token cache. Unlike the
// plaintext file store it can keep the token encrypted at rest, with the
// key derived from a user passphrase.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/zini/nella/internal/crypto"
	"github.com/zini/nella/pkg/tokencache"
)

var (
	// BoltDB bucket and key names
	bucketToken = []byte("token")
	entryKey    = []byte("current")
	saltKey     = []byte("salt")
)

// entry is the persisted token record. SavedAt is the age reference; with
// encryption enabled Token holds base64-encoded ciphertext.
type entry struct {
	Token   string `json:"token"`
	SavedAt int64  `json:"saved_at"`
}

// Store represents a BoltDB token cache
type Store struct {
	db  *bbolt.DB
	key []byte // nil when encryption is disabled
}

// Compile-time check that Store implements tokencache.Store
var _ tokencache.Store = (*Store)(nil)

// New creates a plaintext BoltDB token cache at dbPath
func New(ctx context.Context, dbPath string) (*Store, error) {
	return open(dbPath, "")
}

// NewEncrypted creates a BoltDB token cache that encrypts the token with a
// key derived from passphrase. The salt is generated on first use and kept
// in the database, so the same passphrase must be supplied on every open.
func NewEncrypted(ctx context.Context, dbPath, passphrase string) (*Store, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	return open(dbPath, passphrase)
}

func open(dbPath, passphrase string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	store := &Store{db: db}

	if err := store.init(passphrase); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// init creates the token bucket and, when a passphrase is given, loads or
// generates the key derivation salt
func (s *Store) init(passphrase string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketToken)
		if err != nil {
			return fmt.Errorf("failed to create token bucket: %w", err)
		}

		if passphrase == "" {
			return nil
		}

		salt := bucket.Get(saltKey)
		if salt == nil {
			salt, err = crypto.GenerateSalt()
			if err != nil {
				return err
			}
			if err := bucket.Put(saltKey, salt); err != nil {
				return fmt.Errorf("failed to save salt: %w", err)
			}
		}

		key, err := crypto.DeriveKey(passphrase, salt)
		if err != nil {
			return fmt.Errorf("failed to derive key: %w", err)
		}
		s.key = key

		return nil
	})
}

// Close closes the database
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores the token and resets its age to now
func (s *Store) Save(ctx context.Context, token string) error {
	stored := token
	if s.key != nil {
		encrypted, err := crypto.EncryptToBase64([]byte(token), s.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt token: %w", err)
		}
		stored = encrypted
	}

	data, err := json.Marshal(entry{Token: stored, SavedAt: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("failed to marshal token entry: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketToken)
		if bucket == nil {
			return fmt.Errorf("token bucket not found")
		}
		if err := bucket.Put(entryKey, data); err != nil {
			return fmt.Errorf("failed to save token entry: %w", err)
		}
		return nil
	})
}

// Load retrieves the stored token and its age
func (s *Store) Load(ctx context.Context) (*tokencache.Entry, error) {
	var e entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketToken)
		if bucket == nil {
			return fmt.Errorf("token bucket not found")
		}

		data := bucket.Get(entryKey)
		if data == nil {
			return tokencache.ErrTokenNotFound
		}

		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("%w: %v", tokencache.ErrTokenCorrupted, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token := e.Token
	if s.key != nil {
		plaintext, err := crypto.DecryptFromBase64(token, s.key)
		if err != nil {
			// wrong passphrase or tampered entry
			return nil, fmt.Errorf("%w: %v", tokencache.ErrTokenCorrupted, err)
		}
		token = string(plaintext)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", tokencache.ErrTokenCorrupted)
	}

	return &tokencache.Entry{
		Token: token,
		Age:   time.Since(time.Unix(e.SavedAt, 0)),
	}, nil
}

// Invalidate removes the stored token. Removing a missing token is not an error.
func (s *Store) Invalidate(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketToken)
		if bucket == nil {
			return fmt.Errorf("token bucket not found")
		}
		if err := bucket.Delete(entryKey); err != nil {
			return fmt.Errorf("failed to delete token entry: %w", err)
		}
		return nil
	})
}
