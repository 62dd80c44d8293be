package sqlstorage

// 将议案记录以JSON文档的形式存入SQL表，按(届次, 类型, 编号)主键覆盖写入，写入先在dataDocker中缓存，达到批量数后一次性提交

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/sqldb"
	"github.com/dszqbsm/congress/storage"
	"go.uber.org/zap"
)

const documentColumn = "document"

type SqlStore struct {
	dataDocker []*bill.Record // 用于缓存待写入数据库的记录
	db         sqldb.DBer     // 数据库操作接口
	options                   // 存储SqlStore的配置选项
}

// SqlStore的构造函数，打开数据库并确保表存在
func New(opts ...Option) (*SqlStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	db, err := sqldb.New(
		sqldb.WithDriver(options.driver),
		sqldb.WithConnURL(options.sqlURL),
		sqldb.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}
	s, err := newStore(db, options)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func newStore(db sqldb.DBer, options options) (*SqlStore, error) {
	s := &SqlStore{db: db, options: options}
	if err := s.db.CreateTable(s.tableData()); err != nil {
		return nil, fmt.Errorf("create table %s: %w", s.table, err)
	}
	return s, nil
}

// 表结构：主键三列加上文档与更新时间
func (s *SqlStore) tableData() sqldb.TableData {
	return sqldb.TableData{
		TableName: s.table,
		ColumnNames: []sqldb.Field{
			{Title: "congress", Type: "INT NOT NULL"},
			{Title: "bill_type", Type: "VARCHAR(64) NOT NULL"},
			{Title: "number", Type: "INT NOT NULL"},
			{Title: documentColumn, Type: "MEDIUMTEXT NOT NULL"},
			{Title: "updated", Type: "VARCHAR(64) NOT NULL"},
		},
		PrimaryKey: []string{"congress", "bill_type", "number"},
	}
}

// 尚未提交的记录优先，其次查询数据库
func (s *SqlStore) Get(key bill.Key) (*bill.Record, error) {
	for i := len(s.dataDocker) - 1; i >= 0; i-- {
		if s.dataDocker[i].Key == key {
			return copyRecord(s.dataDocker[i])
		}
	}

	t := s.tableData()
	t.Args = []interface{}{key.Congress, string(key.Type), key.Number}
	var doc string
	err := s.db.QueryOne(t, documentColumn, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec := &bill.Record{}
	if err := json.Unmarshal([]byte(doc), rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return rec, nil
}

// 用于保存记录到SqlStore中，缓存的记录数达到批量数时提交
func (s *SqlStore) Save(recs ...*bill.Record) error {
	for _, rec := range recs {
		rec, err := copyRecord(rec)
		if err != nil {
			return err
		}
		s.dataDocker = append(s.dataDocker, rec)
		if len(s.dataDocker) >= s.BatchCount {
			if err := s.Flush(); err != nil {
				s.logger.Error("upsert bills failed", zap.Error(err))
				return err
			}
		}
	}
	return nil
}

/*
无输入，输出一个error

将dataDocker中的记录批量写入数据库，同一主键在一批中只保留最后一次保存的版本；无论写入是否成功，dataDocker都会被清空
*/
func (s *SqlStore) Flush() error {
	if len(s.dataDocker) == 0 {
		return nil
	}
	defer func() {
		s.dataDocker = nil
	}()

	latest := make(map[bill.Key]int, len(s.dataDocker))
	for i, rec := range s.dataDocker {
		latest[rec.Key] = i
	}
	now := time.Now().UTC().Format(time.RFC3339)
	args := make([]interface{}, 0, len(latest)*5)
	count := 0
	for i, rec := range s.dataDocker {
		if latest[rec.Key] != i {
			continue
		}
		doc, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s: %w", rec.Key, err)
		}
		args = append(args, rec.Congress, string(rec.Type), rec.Number, string(doc), now)
		count++
	}

	t := s.tableData()
	t.Args = args
	t.DataCount = count
	return s.db.Upsert(t)
}

// 提交剩余记录后关闭数据库
func (s *SqlStore) Close() error {
	err := s.Flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func copyRecord(rec *bill.Record) (*bill.Record, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := &bill.Record{}
	if err := json.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}
