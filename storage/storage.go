package storage

// 议案记录的持久化接口，按(届次, 类型, 编号)唯一定位一条记录

import (
	"errors"

	"github.com/dszqbsm/congress/bill"
)

var ErrNotFound = errors.New("bill record not found")

type Storage interface {
	// 记录不存在时返回ErrNotFound
	Get(key bill.Key) (*bill.Record, error)
	// 按主键覆盖保存，实现可以延迟写入，Close之前保证落盘
	Save(recs ...*bill.Record) error
	Close() error
}
