package scrape

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/bootstrap"
	"github.com/dszqbsm/congress/proxy"
	"github.com/dszqbsm/congress/spider"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ScrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "download bill pages into the archive.",
	Long:  "download all-info or text pages for a range of bill numbers, or the house roll call votes of a year, into the archive.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd)
	},
}

var (
	congress  int
	billType  string
	start     int
	end       int
	text      bool
	proxyList string
	rollCall  bool
	year      int
)

func init() {
	ScrapeCmd.Flags().IntVar(&congress, "congress", 117, "congress number")
	ScrapeCmd.Flags().StringVar(&billType, "type", string(bill.HouseBill), "bill type")
	ScrapeCmd.Flags().IntVar(&start, "start", 1, "first bill number")
	ScrapeCmd.Flags().IntVar(&end, "end", 1, "last bill number, inclusive")
	ScrapeCmd.Flags().BoolVar(&text, "text", false, "download text pages instead of all-info pages")
	ScrapeCmd.Flags().StringVar(&proxyList, "proxy", "", "comma separated proxy list, overrides fetcher.proxy")
	ScrapeCmd.Flags().BoolVar(&rollCall, "roll-call", false, "download house roll call votes of --year instead of bill pages")
	ScrapeCmd.Flags().IntVar(&year, "year", 0, "roll call year")
}

func Run(cmd *cobra.Command) error {
	t, err := bill.ParseType(billType)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("config")
	app, err := bootstrap.Load(path)
	if err != nil {
		return err
	}
	defer app.Close()
	logger := app.Logger

	var opts []spider.Option
	p, err := proxy.FromList(proxyList)
	if err != nil {
		logger.Error("RoundRobinProxySwitcher failed", zap.Error(err))
		return err
	}
	if p != nil {
		opts = append(opts, spider.WithProxy(p))
	}
	f, err := app.Fetcher(opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	s := spider.NewScraper(f, app.Archive(), logger.Named("scraper"))

	if rollCall {
		if year == 0 {
			return errors.New("--year is required with --roll-call")
		}
		written, err := s.ScrapeRollCalls(ctx, congress, year)
		logger.Info("roll call scrape finished", zap.Int("year", year), zap.Int("written", written))
		return err
	}

	kind := spider.AllInfoPage
	if text {
		kind = spider.TextPage
	}
	logger.Info("scrape start", zap.Int("congress", congress), zap.String("type", billType),
		zap.Int("start", start), zap.Int("end", end), zap.Stringer("page", kind))
	return s.Scrape(ctx, congress, t, start, end, kind)
}
