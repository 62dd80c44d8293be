package sqldb

// 定义了与MySQL或SQLite数据库交互的功能，包括建表、按主键批量覆盖写入和按主键查询单行

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// 为数据库操作统一了规范
type DBer interface {
	/*
	   输入一个TableData实例，输出一个error

	   根据TableData中的列与主键构造建表语句，表已存在时不做任何事
	*/
	CreateTable(t TableData) error
	/*
	   输入一个TableData实例，输出一个error

	   构造形如INSERT INTO bills(a,b,c) VALUES (?,?,?),(?,?,?)的语句，主键冲突时以新值覆盖非主键列，多少组问号取决于DataCount
	*/
	Upsert(t TableData) error
	/*
	   输入一个TableData实例、要读取的列名和接收结果的指针，输出一个error

	   TableData的Args依次为主键各列的取值，没有匹配的行时返回sql.ErrNoRows
	*/
	QueryOne(t TableData, column string, dest interface{}) error
	Close() error
}

// sql数据库实例
type Sqldb struct {
	options
	db *sql.DB
}

// 打开数据库连接并通过ping测试连接是否正常，SQLite限制为单连接
func (d *Sqldb) OpenDB() error {
	db, err := sql.Open(d.driver, d.sqlURL)
	if err != nil {
		return err
	}
	switch d.driver {
	case SQLite:
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(64)
		db.SetMaxIdleConns(64)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}
	d.db = db
	return nil
}

func (d *Sqldb) CreateTable(t TableData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("column can not be empty")
	}
	sql := `CREATE TABLE IF NOT EXISTS ` + t.TableName + " ("
	for _, c := range t.ColumnNames {
		sql += c.Title + ` ` + c.Type + `,`
	}
	if len(t.PrimaryKey) > 0 {
		sql += `PRIMARY KEY (` + strings.Join(t.PrimaryKey, ",") + `),`
	}
	sql = sql[:len(sql)-1] + `)`
	if d.driver == MySQL {
		sql += ` ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	}
	sql += `;`

	d.logger.Debug("create table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)
	return err
}

// 删除表，只在测试和重建时使用
func (d *Sqldb) DropTable(t TableData) error {
	sql := `DROP TABLE IF EXISTS ` + t.TableName

	d.logger.Debug("drop table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)
	return err
}

func (d *Sqldb) Upsert(t TableData) error {
	sql, err := upsertSQL(d.driver, t)
	if err != nil {
		return err
	}
	d.logger.Debug("upsert table", zap.String("sql", sql))
	_, err = d.db.Exec(sql, t.Args...)
	return err
}

func (d *Sqldb) QueryOne(t TableData, column string, dest interface{}) error {
	sql, err := selectSQL(t, column)
	if err != nil {
		return err
	}
	d.logger.Debug("query table", zap.String("sql", sql))
	return d.db.QueryRow(sql, t.Args...).Scan(dest)
}

func (d *Sqldb) Close() error {
	return d.db.Close()
}

func upsertSQL(driver string, t TableData) (string, error) {
	if len(t.ColumnNames) == 0 {
		return "", errors.New("empty column")
	}
	if t.DataCount == 0 || len(t.Args) != t.DataCount*len(t.ColumnNames) {
		return "", fmt.Errorf("%d args for %d rows of %d columns", len(t.Args), t.DataCount, len(t.ColumnNames))
	}

	sql := `INSERT INTO ` + t.TableName + `(` // 初始化一个sql插入语句的前缀
	for _, v := range t.ColumnNames {
		sql += v.Title + ","
	}
	sql = sql[:len(sql)-1] + `) VALUES `

	blank := ",(" + strings.Repeat(",?", len(t.ColumnNames))[1:] + ")" // 每行的占位符，问号数量等于列的数量
	sql += strings.Repeat(blank, t.DataCount)[1:]

	var updates []string
	for _, c := range t.ColumnNames {
		if t.isKey(c.Title) {
			continue
		}
		switch driver {
		case SQLite:
			updates = append(updates, c.Title+"=excluded."+c.Title)
		default:
			updates = append(updates, c.Title+"=VALUES("+c.Title+")")
		}
	}
	if len(updates) > 0 && len(t.PrimaryKey) > 0 {
		switch driver {
		case SQLite:
			sql += ` ON CONFLICT(` + strings.Join(t.PrimaryKey, ",") + `) DO UPDATE SET ` + strings.Join(updates, ",")
		default:
			sql += ` ON DUPLICATE KEY UPDATE ` + strings.Join(updates, ",")
		}
	}
	return sql + `;`, nil
}

func selectSQL(t TableData, column string) (string, error) {
	if len(t.PrimaryKey) == 0 || len(t.Args) != len(t.PrimaryKey) {
		return "", fmt.Errorf("%d args for primary key %v", len(t.Args), t.PrimaryKey)
	}
	conds := make([]string, len(t.PrimaryKey))
	for i, k := range t.PrimaryKey {
		conds[i] = k + "=?"
	}
	return `SELECT ` + column + ` FROM ` + t.TableName + ` WHERE ` + strings.Join(conds, " AND ") + ` LIMIT 1;`, nil
}

// 表示数据库表中的一个字段，包含字段名和字段类型
type Field struct {
	Title string
	Type  string
}

// 表示要操作的数据库表的数据
type TableData struct {
	TableName   string
	ColumnNames []Field       // 标题字段
	PrimaryKey  []string      // 主键列名
	Args        []interface{} // 数据
	DataCount   int           // 写入数据的行数
}

func (t TableData) isKey(column string) bool {
	for _, k := range t.PrimaryKey {
		if k == column {
			return true
		}
	}
	return false
}

// 创建一个新的Sqldb实例，并根据传入的选项进行配置
func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	switch options.driver {
	case MySQL, SQLite:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", options.driver)
	}
	d := &Sqldb{}
	d.options = options
	if err := d.OpenDB(); err != nil {
		return nil, err
	}
	return d, nil
}
