package memstorage

// 进程内的记录存储，用于测试和不落盘的试运行

import (
	"encoding/json"
	"sync"

	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/storage"
)

type MemStore struct {
	mu      sync.RWMutex
	records map[bill.Key][]byte
}

func New() *MemStore {
	return &MemStore{records: make(map[bill.Key][]byte)}
}

// 返回记录的独立副本，调用方修改不影响已保存的内容
func (s *MemStore) Get(key bill.Key) (*bill.Record, error) {
	s.mu.RLock()
	b, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	rec := &bill.Record{}
	if err := json.Unmarshal(b, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *MemStore) Save(recs ...*bill.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range recs {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		s.records[rec.Key] = b
	}
	return nil
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemStore) Close() error {
	return nil
}
