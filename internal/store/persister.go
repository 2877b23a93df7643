package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

// SchemaVersion is the persisted snapshot format version. Loading a snapshot
// with a different version fails loudly; there is no migration path.
const SchemaVersion = 1

// Snapshot is the store's full persisted state: the resume collection plus
// the selection cursor, serialized as one versioned JSON blob.
type Snapshot struct {
	Version          int             `json:"version"`
	Resumes          []models.Resume `json:"resumes"`
	SelectedResumeID string          `json:"selected_resume_id"`
	SavedAt          time.Time       `json:"saved_at"`
}

// Persister is the external persistence collaborator. Load returns (nil, nil)
// when no snapshot exists yet.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// RedisPersister keeps the snapshot under a single fixed key.
type RedisPersister struct {
	client *redis.Client
	key    string
}

// NewRedisPersister creates a Redis-backed persister from configuration.
func NewRedisPersister(cfg *config.Config) *RedisPersister {
	opts, err := redis.ParseURL(cfg.Storage.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Storage.Redis.Password != "" {
		opts.Password = cfg.Storage.Redis.Password
	}
	opts.DB = cfg.Storage.Redis.DB
	opts.DialTimeout = cfg.Storage.Redis.Timeout
	opts.ReadTimeout = cfg.Storage.Redis.Timeout
	opts.WriteTimeout = cfg.Storage.Redis.Timeout

	return &RedisPersister{
		client: redis.NewClient(opts),
		key:    cfg.Storage.Key,
	}
}

// Ping tests the Redis connection
func (p *RedisPersister) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Load reads the snapshot blob from Redis.
func (p *RedisPersister) Load(ctx context.Context) (*Snapshot, error) {
	data, err := p.client.Get(ctx, p.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return decodeSnapshot([]byte(data))
}

// Save rewrites the snapshot blob in Redis.
func (p *RedisPersister) Save(ctx context.Context, snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Close closes the Redis connection
func (p *RedisPersister) Close() error {
	return p.client.Close()
}

// FilePersister keeps the snapshot in a single local JSON file. Intended for
// development setups without Redis.
type FilePersister struct {
	path string
	mu   sync.Mutex
}

// NewFilePersister creates a file-backed persister.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads the snapshot file.
func (p *FilePersister) Load(_ context.Context) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	return decodeSnapshot(data)
}

// Save writes the snapshot through a temp file and rename.
func (p *FilePersister) Save(_ context.Context, snapshot *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	return os.Rename(tmp, p.path)
}

// Close is a no-op for the file persister.
func (p *FilePersister) Close() error {
	return nil
}

// MemoryPersister keeps the snapshot in process memory. Used in tests and as
// a last-resort backend.
type MemoryPersister struct {
	mu       sync.Mutex
	snapshot *Snapshot
	saves    int
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Load returns the last saved snapshot.
func (p *MemoryPersister) Load(_ context.Context) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot == nil {
		return nil, nil
	}

	// Round-trip through JSON so callers get the same isolation as the real
	// backends
	data, err := json.Marshal(p.snapshot)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(data)
}

// Save stores the snapshot.
func (p *MemoryPersister) Save(_ context.Context, snapshot *Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := *snapshot
	copied.Resumes = make([]models.Resume, len(snapshot.Resumes))
	for i, r := range snapshot.Resumes {
		copied.Resumes[i] = r.Clone()
	}
	p.snapshot = &copied
	p.saves++
	return nil
}

// Close is a no-op for the memory persister.
func (p *MemoryPersister) Close() error {
	return nil
}

// SaveCount reports how many times Save has been called.
func (p *MemoryPersister) SaveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}

// decodeSnapshot parses a snapshot blob and enforces the schema version.
func decodeSnapshot(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	if snapshot.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (want %d)", snapshot.Version, SchemaVersion)
	}

	return &snapshot, nil
}

// NewPersister selects the persistence backend from configuration.
func NewPersister(cfg *config.Config) (Persister, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return NewRedisPersister(cfg), nil
	case "file":
		return NewFilePersister(cfg.Storage.FilePath), nil
	case "memory":
		return NewMemoryPersister(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}
