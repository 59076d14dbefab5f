package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/models"
	"gopkg.in/yaml.v3"
)

// FileFindingSource serves findings from a JSON or YAML file. The file may
// hold either a bare list or an object with a "findings" list. It is decoded
// again only when its size or modification time changes.
type FileFindingSource struct {
	path   string
	logger *logger.Logger

	mu       sync.Mutex
	modTime  time.Time
	size     int64
	findings []models.Finding
}

type findingsDocument struct {
	Findings []models.Finding `json:"findings" yaml:"findings"`
}

// NewFileFindingSource returns a source reading path. The file is not
// touched until the first List or Count.
func NewFileFindingSource(path string, log *logger.Logger) *FileFindingSource {
	return &FileFindingSource{path: path, logger: log}
}

// List returns a copy of the current finding list.
func (s *FileFindingSource) List(ctx context.Context) ([]models.Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	out := make([]models.Finding, len(s.findings))
	copy(out, s.findings)
	return out, nil
}

// Count returns the number of findings currently in the file.
func (s *FileFindingSource) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return 0, err
	}
	return len(s.findings), nil
}

// refresh reloads the file if it changed. Callers hold s.mu. On a decode
// failure the previous snapshot is kept and the error is returned.
func (s *FileFindingSource) refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFindingsUnreadable, err)
	}
	if s.findings != nil && info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFindingsUnreadable, err)
	}

	findings, err := decodeFindings(s.path, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFindingsUnreadable, err)
	}

	s.findings = findings
	s.modTime = info.ModTime()
	s.size = info.Size()

	s.logger.Debug().
		Str("path", s.path).
		Int("findings", len(findings)).
		Msg("findings file reloaded")
	return nil
}

func decodeFindings(path string, data []byte) ([]models.Finding, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []models.Finding{}, nil
	}

	var (
		list []models.Finding
		doc  findingsDocument
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data[0] == '-' || data[0] == '[' {
			if err := yaml.Unmarshal(data, &list); err != nil {
				return nil, fmt.Errorf("decode yaml findings: %w", err)
			}
			break
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml findings: %w", err)
		}
		list = doc.Findings
	default:
		if data[0] == '[' {
			if err := json.Unmarshal(data, &list); err != nil {
				return nil, fmt.Errorf("decode json findings: %w", err)
			}
			break
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode json findings: %w", err)
		}
		list = doc.Findings
	}

	if list == nil {
		list = []models.Finding{}
	}
	return list, nil
}

// StaticFindingSource serves a fixed, replaceable list. It backs the bridge
// when no findings file is configured and doubles as a test helper.
type StaticFindingSource struct {
	mu       sync.RWMutex
	findings []models.Finding
}

// NewStaticFindingSource returns a source holding findings.
func NewStaticFindingSource(findings ...models.Finding) *StaticFindingSource {
	return &StaticFindingSource{findings: findings}
}

// Replace swaps the served list.
func (s *StaticFindingSource) Replace(findings []models.Finding) {
	s.mu.Lock()
	s.findings = findings
	s.mu.Unlock()
}

func (s *StaticFindingSource) List(ctx context.Context) ([]models.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Finding, len(s.findings))
	copy(out, s.findings)
	return out, nil
}

func (s *StaticFindingSource) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.findings), nil
}
