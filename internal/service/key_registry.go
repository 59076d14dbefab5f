// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/crypto"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/store"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/models"
	"golang.org/x/sync/singleflight"
)

// CredentialsSettingKey is the settings store key holding the sealed
// credential blob.
const CredentialsSettingKey = "bridge.credentials"

const (
	defaultKeyCacheTTL   = 30 * time.Second
	defaultTouchInterval = time.Minute
)

// registryCache is an immutable snapshot of the credential set. It is never
// modified after being published.
type registryCache struct {
	byToken  map[string]models.Credential
	ordered  []models.Credential
	loadedAt time.Time
}

func newRegistryCache(creds []models.Credential, at time.Time) *registryCache {
	c := &registryCache{
		byToken:  make(map[string]models.Credential, len(creds)),
		ordered:  make([]models.Credential, len(creds)),
		loadedAt: at,
	}
	copy(c.ordered, creds)
	for _, cred := range creds {
		c.byToken[cred.Token] = cred
	}
	return c
}

// keyRegistry is the vault-backed implementation of [KeyRegistry].
//
// Readers load the published snapshot and never block. Writers are
// serialized by writeMu, persist through the vault and publish a freshly
// built snapshot. An expired snapshot is rebuilt lazily on read; concurrent
// readers share one rebuild through singleflight.
type keyRegistry struct {
	settings store.SettingsStore
	vault    crypto.Vault
	logger   *logger.Logger

	ttl           time.Duration
	touchInterval time.Duration
	now           func() time.Time

	cache   atomic.Pointer[registryCache]
	writeMu sync.Mutex
	loads   singleflight.Group
}

// NewKeyRegistry constructs a [KeyRegistry]. A non-positive ttl selects the
// default of 30 seconds.
func NewKeyRegistry(settings store.SettingsStore, vault crypto.Vault, ttl time.Duration, logger *logger.Logger) KeyRegistry {
	return newKeyRegistry(settings, vault, ttl, time.Now, logger)
}

func newKeyRegistry(settings store.SettingsStore, vault crypto.Vault, ttl time.Duration, now func() time.Time, logger *logger.Logger) *keyRegistry {
	if ttl <= 0 {
		ttl = defaultKeyCacheTTL
	}
	return &keyRegistry{
		settings:      settings,
		vault:         vault,
		logger:        logger,
		ttl:           ttl,
		touchInterval: defaultTouchInterval,
		now:           now,
	}
}

// Add stores cred, replacing any credential with the same token.
func (r *keyRegistry) Add(ctx context.Context, cred models.Credential) error {
	if strings.TrimSpace(cred.Name) == "" {
		return ErrCredentialNameRequired
	}
	if cred.Token == "" {
		return ErrCredentialTokenInvalid
	}
	if cred.CreatedAt.IsZero() {
		cred.CreatedAt = r.now().UTC()
	}

	return r.mutate(ctx, func(creds []models.Credential) []models.Credential {
		for i := range creds {
			if creds[i].Token == cred.Token {
				creds[i] = cred
				return creds
			}
		}
		return append(creds, cred)
	})
}

// Generate creates, stores and returns a credential with a fresh token.
func (r *keyRegistry) Generate(ctx context.Context, name string) (models.Credential, error) {
	token, err := utils.GenerateToken()
	if err != nil {
		return models.Credential{}, err
	}

	cred := models.Credential{
		Name:      strings.TrimSpace(name),
		Token:     token,
		CreatedAt: r.now().UTC(),
	}
	if err = r.Add(ctx, cred); err != nil {
		return models.Credential{}, err
	}
	return cred, nil
}

// RemoveAt deletes the credential at index in [keyRegistry.List] order. An
// index out of range is a no-op.
func (r *keyRegistry) RemoveAt(ctx context.Context, index int) error {
	return r.mutate(ctx, func(creds []models.Credential) []models.Credential {
		if index < 0 || index >= len(creds) {
			return nil
		}
		return append(creds[:index:index], creds[index+1:]...)
	})
}

// FindByToken looks token up in the current snapshot.
func (r *keyRegistry) FindByToken(ctx context.Context, token string) (models.Credential, bool) {
	if token == "" {
		return models.Credential{}, false
	}
	cred, ok := r.snapshot(ctx).byToken[token]
	return cred, ok
}

// TouchLastUsed records that token was just used. Touches closer than
// touchInterval to the previous recorded use are skipped.
func (r *keyRegistry) TouchLastUsed(ctx context.Context, token string) error {
	cred, ok := r.FindByToken(ctx, token)
	if !ok {
		return nil
	}

	now := r.now().UTC()
	if cred.LastUsedAt != nil && now.Sub(*cred.LastUsedAt) < r.touchInterval {
		return nil
	}

	return r.mutate(ctx, func(creds []models.Credential) []models.Credential {
		for i := range creds {
			if creds[i].Token == token {
				creds[i] = creds[i].WithLastUsed(now)
				return creds
			}
		}
		return nil
	})
}

// List returns the credentials in insertion order.
func (r *keyRegistry) List(ctx context.Context) []models.Credential {
	ordered := r.snapshot(ctx).ordered
	out := make([]models.Credential, len(ordered))
	copy(out, ordered)
	return out
}

// mutate reads the persisted list, applies fn and, unless fn returns nil,
// persists the result and publishes a new snapshot. A list that cannot be
// read is never overwritten.
func (r *keyRegistry) mutate(ctx context.Context, fn func([]models.Credential) []models.Credential) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	creds, err := r.loadForWrite(ctx)
	if err != nil {
		return err
	}
	next := fn(creds)
	if next == nil {
		return nil
	}

	blob, err := r.vault.Encrypt(next)
	if err != nil {
		return fmt.Errorf("seal credentials: %w", err)
	}
	if err = r.settings.Set(ctx, CredentialsSettingKey, blob); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	r.cache.Store(newRegistryCache(next, r.now()))
	return nil
}

// snapshot returns the published cache, rebuilding it first when it is
// missing or older than ttl.
func (r *keyRegistry) snapshot(ctx context.Context) *registryCache {
	current := r.cache.Load()
	if current != nil && r.now().Sub(current.loadedAt) < r.ttl {
		return current
	}

	v, _, _ := r.loads.Do("reload", func() (any, error) {
		fresh := newRegistryCache(r.load(context.WithoutCancel(ctx)), r.now())
		// a writer may have published in the meantime; its snapshot wins
		if !r.cache.CompareAndSwap(current, fresh) {
			return r.cache.Load(), nil
		}
		return fresh, nil
	})
	return v.(*registryCache)
}

// loadForWrite reads and opens the persisted blob for a mutation. Only a
// missing setting counts as an empty set: a failed read or a blob sealed
// under another secret aborts the write so the stored credentials survive.
func (r *keyRegistry) loadForWrite(ctx context.Context) ([]models.Credential, error) {
	blob, err := r.settings.Get(ctx, CredentialsSettingKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return []models.Credential{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialStoreUnreadable, err)
	}

	creds, err := r.vault.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialStoreUnreadable, err)
	}
	if creds == nil {
		creds = []models.Credential{}
	}
	return creds, nil
}

// load reads and opens the persisted blob. Every failure degrades to an
// empty credential set.
func (r *keyRegistry) load(ctx context.Context) []models.Credential {
	blob, err := r.settings.Get(ctx, CredentialsSettingKey)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			r.logger.Err(err).Str("func", "*keyRegistry.load").Msg("error reading credential blob, treating as empty")
		}
		return []models.Credential{}
	}

	creds, err := r.vault.Decrypt(blob)
	if err != nil {
		r.logger.Err(err).Str("func", "*keyRegistry.load").Msg("credential blob could not be opened, treating as empty")
		return []models.Credential{}
	}
	return creds
}
