package badgerstorage

// 基于badger的本地键值存储，键形如bill/117/house-bill/1，值为记录的JSON文档

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/storage"
	"go.uber.org/zap"
)

type options struct {
	logger   *zap.Logger
	path     string
	inMemory bool
}

var defaultOptions = options{
	logger: zap.NewNop(),
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 数据目录
func WithPath(path string) Option {
	return func(opts *options) {
		opts.path = path
	}
}

// 不落盘，只用于测试
func WithInMemory() Option {
	return func(opts *options) {
		opts.inMemory = true
	}
}

type BadgerStore struct {
	options
	db *badger.DB
}

func New(opts ...Option) (*BadgerStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	bopts := badger.DefaultOptions(options.path).WithLogger(nil)
	if options.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	} else if options.path == "" {
		return nil, errors.New("badger storage path is empty")
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{options: options, db: db}, nil
}

func recordKey(key bill.Key) []byte {
	return []byte(fmt.Sprintf("bill/%d/%s/%d", key.Congress, key.Type, key.Number))
}

func (s *BadgerStore) Get(key bill.Key) (*bill.Record, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec := &bill.Record{}
	if err := json.Unmarshal(value, rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return rec, nil
}

// 同一次调用中的记录在一个事务内写入
func (s *BadgerStore) Save(recs ...*bill.Record) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, rec := range recs {
			value, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encode %s: %w", rec.Key, err)
			}
			if err := txn.Set(recordKey(rec.Key), value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Close() error {
	s.logger.Debug("closing badger storage", zap.String("path", s.path))
	return s.db.Close()
}
