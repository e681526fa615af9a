package session

import "sync"

// Ключи сессии клиента. token и user пишутся и удаляются вместе.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// AppliedKey - отклики хранятся отдельно для каждого пользователя
func AppliedKey(userID string) string {
	return "applied:" + userID
}

// Storage - долговременное key-value хранилище клиента
type Storage interface {
	// Get возвращает значение и false, если ключа нет
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(keys ...string) error
	Close() error
}

// MemoryStorage живет только в памяти процесса
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) Remove(keys ...string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.values, k)
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) Close() error { return nil }
