package checkpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// FileStore keeps one JSON document per checkpoint key under a directory, for
// runs without a database. Saves go through a temp file and rename, so a crash
// mid-write leaves the previous document intact.
type FileStore struct {
	dir     string
	metrics Metrics
}

type fileCheckpoint struct {
	Chain                string    `json:"chain"`
	Protocol             string    `json:"protocol"`
	PrimaryEndpoint      string    `json:"primaryEndpoint"`
	SecondaryEndpoint    string    `json:"secondaryEndpoint"`
	LastReconciledHeight uint64    `json:"lastReconciledHeight"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string, metrics Metrics) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("checkpoint directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create checkpoint dir: %w", err)
	}
	return &FileStore{dir: dir, metrics: metrics}, nil
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context, key model.CheckpointKey) (cp *model.Checkpoint, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("load", err, started)
	}()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}

	var doc fileCheckpoint
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}

	stored := model.NewCheckpointKey(
		model.Chain(doc.Chain), model.Protocol(doc.Protocol),
		doc.PrimaryEndpoint, doc.SecondaryEndpoint,
	)
	if stored != key {
		return nil, fmt.Errorf("%w: stored %s/%s %s -> %s",
			ErrForeignCheckpoint, doc.Chain, doc.Protocol, doc.PrimaryEndpoint, doc.SecondaryEndpoint)
	}

	return &model.Checkpoint{
		Key:                  key,
		LastReconciledHeight: doc.LastReconciledHeight,
		UpdatedAt:            doc.UpdatedAt,
	}, nil
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, cp model.Checkpoint) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("save", err, started)
	}()

	existing, err := s.Load(ctx, cp.Key)
	if err != nil {
		return err
	}
	if existing != nil && existing.LastReconciledHeight > cp.LastReconciledHeight {
		return fmt.Errorf("%w: stored %d, new %d", ErrNonMonotonic, existing.LastReconciledHeight, cp.LastReconciledHeight)
	}

	updatedAt := cp.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	data, err := json.MarshalIndent(fileCheckpoint{
		Chain:                string(cp.Key.Chain),
		Protocol:             string(cp.Key.Protocol),
		PrimaryEndpoint:      cp.Key.PrimaryEndpoint,
		SecondaryEndpoint:    cp.Key.SecondaryEndpoint,
		LastReconciledHeight: cp.LastReconciledHeight,
		UpdatedAt:            updatedAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	target := s.path(cp.Key)
	tmp, err := os.CreateTemp(s.dir, ".checkpoint-*")
	if err != nil {
		return fmt.Errorf("create temp checkpoint: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp checkpoint: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp checkpoint: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp checkpoint: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replace checkpoint: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() {}

func (s *FileStore) path(key model.CheckpointKey) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s",
		key.Chain, key.Protocol, key.PrimaryEndpoint, key.SecondaryEndpoint)))
	name := fmt.Sprintf("%s-%s-%s.json", key.Chain, key.Protocol, hex.EncodeToString(sum[:8]))
	return filepath.Join(s.dir, name)
}
