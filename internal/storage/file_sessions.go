package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/endoclin/admin/internal"
)

// FileSessionStore keeps every namespace in memory and flushes the whole set to
// a JSON file shortly after each change.
type FileSessionStore struct {
	values       map[string]map[string]string // namespace -> key -> value
	mu           sync.RWMutex
	file         string
	saveChan     chan struct{}
	shutdownChan chan struct{}
	done         chan struct{}
	saveDelay    time.Duration
	closeOnce    sync.Once
	logger       internal.Logger
}

func NewFileSessionStore(file string, logger internal.Logger) (*FileSessionStore, error) {
	s := &FileSessionStore{
		values:       make(map[string]map[string]string),
		file:         file,
		saveChan:     make(chan struct{}, 1),
		shutdownChan: make(chan struct{}),
		done:         make(chan struct{}),
		saveDelay:    200 * time.Millisecond,
		logger:       logger,
	}

	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load sessions: %v", err)
		return nil, err
	}

	go s.saveWorker()
	return s, nil
}

func (s *FileSessionStore) load() error {
	file, err := os.Open(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var values map[string]map[string]string
	if err := json.NewDecoder(file).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ns, kv := range values {
		if len(kv) > 0 {
			s.values[ns] = kv
		}
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileSessionStore) save() error {
	s.mu.RLock()
	snapshot := make(map[string]map[string]string, len(s.values))
	for ns, kv := range s.values {
		inner := make(map[string]string, len(kv))
		for k, v := range kv {
			inner[k] = v
		}
		snapshot[ns] = inner
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.file, snapshot)
}

func (s *FileSessionStore) saveWorker() {
	defer close(s.done)
	timer := time.NewTimer(s.saveDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.save(); err != nil {
				s.logger.Errorf("storage: error saving sessions: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileSessionStore) signal() {
	select {
	case s.saveChan <- struct{}{}:
	default:
	}
}

func (s *FileSessionStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[namespace][key]
	return v, ok, nil
}

func (s *FileSessionStore) Set(ctx context.Context, namespace, key, value string) error {
	s.mu.Lock()
	if s.values[namespace] == nil {
		s.values[namespace] = make(map[string]string)
	}
	s.values[namespace][key] = value
	s.mu.Unlock()
	s.signal()
	return nil
}

func (s *FileSessionStore) Remove(ctx context.Context, namespace string, keys ...string) error {
	s.mu.Lock()
	if kv, ok := s.values[namespace]; ok {
		for _, k := range keys {
			delete(kv, k)
		}
		if len(kv) == 0 {
			delete(s.values, namespace)
		}
	}
	s.mu.Unlock()
	s.signal()
	return nil
}

// Close stops the save worker and writes pending values synchronously.
func (s *FileSessionStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.shutdownChan)
		<-s.done
		err = s.save()
	})
	return err
}

var _ SessionStore = (*FileSessionStore)(nil)
