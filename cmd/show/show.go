package show

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dszqbsm/congress/bill"
	"github.com/dszqbsm/congress/bootstrap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ShowCmd = &cobra.Command{
	Use:   "show CONGRESS TYPE NUMBER",
	Short: "print a stored bill record.",
	Long:  "print a stored bill record as json or yaml, e.g. show 117 house-bill 1.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := ParseKey(args)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("config")
		app, err := bootstrap.Load(path)
		if err != nil {
			return err
		}
		defer app.Close()

		store, err := app.Storage()
		if err != nil {
			return err
		}
		defer store.Close()
		rec, err := store.Get(key)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return Render(cmd.OutOrStdout(), rec, format)
	},
}

var format string

func init() {
	ShowCmd.Flags().StringVarP(&format, "output", "o", "json", "output format, json or yaml")
}

// 届次、类型、编号三个参数组成议案主键
func ParseKey(args []string) (bill.Key, error) {
	if len(args) != 3 {
		return bill.Key{}, fmt.Errorf("want congress, type and number, got %d args", len(args))
	}
	c, err := strconv.Atoi(args[0])
	if err != nil {
		return bill.Key{}, fmt.Errorf("congress %q: %w", args[0], err)
	}
	t, err := bill.ParseType(args[1])
	if err != nil {
		return bill.Key{}, err
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return bill.Key{}, fmt.Errorf("number %q: %w", args[2], err)
	}
	return bill.Key{Congress: c, Type: t, Number: n}, nil
}

func Render(w io.Writer, rec *bill.Record, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
