package archive

// 本地页面归档：每个议案一个目录，页面以gzip压缩保存
//
// {root}/{congress}/{type}-{number:06d}/src.html.gz        All Info页面
// {root}/{congress}/{type}-{number:06d}/bill_text.html.gz  Text页面
// {root}/{congress}/{type}-{number:06d}/text/{ver}.html.gz 各版本的Text页面
// {root}/{congress}/{type}-{number:06d}/text/{ver}.txt.gz  各版本的纯文本
// {root}/{congress}/{type}-{number:06d}/text/{ver}.pdf.gz  各版本的PDF，XML同理
// {root}/{congress}/house-roll-call/{year}-{n:04d}.html.gz  众议院唱名表决页面

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dszqbsm/congress/bill"
)

const (
	AllInfoFile  = "src.html.gz"
	BillTextFile = "bill_text.html.gz"
	textDir      = "text"
	rollCallDir  = "house-roll-call"
)

type Archive struct {
	root string
}

func New(root string) *Archive {
	return &Archive{root: root}
}

func (a *Archive) Root() string {
	return a.root
}

// 议案目录
func (a *Archive) Dir(key bill.Key) string {
	return filepath.Join(a.root, strconv.Itoa(key.Congress), fmt.Sprintf("%s-%06d", key.Type, key.Number))
}

func (a *Archive) AllInfoPath(key bill.Key) string {
	return filepath.Join(a.Dir(key), AllInfoFile)
}

func (a *Archive) BillTextPath(key bill.Key) string {
	return filepath.Join(a.Dir(key), BillTextFile)
}

func (a *Archive) VersionPagePath(key bill.Key, version string) string {
	return filepath.Join(a.Dir(key), textDir, version+".html.gz")
}

func (a *Archive) VersionTextPath(key bill.Key, version string) string {
	return filepath.Join(a.Dir(key), textDir, version+".txt.gz")
}

// ext为小写的格式名，例如pdf、xml
func (a *Archive) FormatPath(key bill.Key, version, ext string) string {
	return filepath.Join(a.Dir(key), textDir, version+"."+ext+".gz")
}

func (a *Archive) RollCallPath(congress, year, n int) string {
	return filepath.Join(a.root, strconv.Itoa(congress), rollCallDir, fmt.Sprintf("%d-%04d.html.gz", year, n))
}

/*
输入届次、议案类型和页面文件名，输出按路径排序的页面路径列表和一个错误

届次目录不存在时返回空列表
*/
func (a *Archive) List(congress int, t bill.Type, file string) ([]string, error) {
	pattern := filepath.Join(a.root, strconv.Itoa(congress), string(t)+"-*", file)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

/*
输入一个页面路径，输出该页面所属议案的主键和一个错误

议案编号取目录名按"-"切分后的最后一段，议案类型为其余部分，届次为上一级目录名
*/
func KeyFromPath(path string) (bill.Key, error) {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == textDir {
		dir = filepath.Dir(dir)
	}
	name := filepath.Base(dir)
	i := strings.LastIndex(name, "-")
	if i < 0 {
		return bill.Key{}, fmt.Errorf("bill directory %q: no number", name)
	}
	number, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return bill.Key{}, fmt.Errorf("bill directory %q: %w", name, err)
	}
	t, err := bill.ParseType(name[:i])
	if err != nil {
		return bill.Key{}, err
	}
	congress, err := strconv.Atoi(filepath.Base(filepath.Dir(dir)))
	if err != nil {
		return bill.Key{}, fmt.Errorf("congress directory of %q: %w", path, err)
	}
	return bill.Key{Congress: congress, Type: t, Number: number}, nil
}

// 读取并解压一个页面
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// 压缩写入一个页面，目录不存在时自动创建，先写临时文件再改名
func Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	zw := gzip.NewWriter(tmp)
	if _, err := zw.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
