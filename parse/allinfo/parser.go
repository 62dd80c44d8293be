package allinfo

// 解析congress.gov议案的All Info页面，各栏目由独立的解析方法处理，Extract按固定顺序合并到议案记录

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/dszqbsm/congress/bill"
	"go.uber.org/zap"
)

// All Info页面标题的固定前缀
const TitlePrefix = "All Info - "

type options struct {
	logger *zap.Logger
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

type Parser struct {
	options
}

func New(opts ...Option) *Parser {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{options: options}
}

/*
输入一个All Info页面文档和一条议案记录，输出一个错误

依次调用概览、tertiary、标题、动作、联署人、委员会、相关议案、主题、摘要解析，将每一步的结果合并到记录中；任一步骤遇到未知结构即返回错误，记录可能已被部分修改
*/
func (p *Parser) Extract(doc *goquery.Document, rec *bill.Record) error {
	ov, err := p.Overview(doc)
	if err != nil {
		return fmt.Errorf("overview: %w", err)
	}
	ov.merge(rec)

	tr, err := p.Tertiary(doc)
	if err != nil {
		return fmt.Errorf("tertiary: %w", err)
	}
	rec.ConstitutionalAuthorityStatement = tr.ConstitutionalAuthorityStatement
	rec.CBOEstimates = tr.CBOEstimates
	rec.PolicyArea = tr.PolicyArea

	if rec.Titles, err = p.Titles(doc); err != nil {
		return fmt.Errorf("titles: %w", err)
	}
	if rec.Actions, err = p.Actions(doc); err != nil {
		return fmt.Errorf("actions: %w", err)
	}
	if rec.Cosponsors, err = p.Cosponsors(doc); err != nil {
		return fmt.Errorf("cosponsors: %w", err)
	}
	if rec.Committees, err = p.Committees(doc); err != nil {
		return fmt.Errorf("committees: %w", err)
	}
	if rec.Related, err = p.Related(doc); err != nil {
		return fmt.Errorf("related bills: %w", err)
	}

	sub, err := p.Subjects(doc, rec.PolicyArea)
	if err != nil {
		return fmt.Errorf("subjects: %w", err)
	}
	rec.Subjects = sub.Subjects
	rec.PolicyArea = sub.PolicyArea

	if rec.Summaries, err = p.Summaries(doc); err != nil {
		return fmt.Errorf("summaries: %w", err)
	}
	return nil
}
