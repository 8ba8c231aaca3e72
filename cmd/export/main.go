// Command export writes registrations to a CSV or XLSX file using the same
// data source and filters as the admin page.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zechsoft/new-trust-sub003/internal/config"
	"github.com/zechsoft/new-trust-sub003/internal/database"
	"github.com/zechsoft/new-trust-sub003/internal/export"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/logging"
	"github.com/zechsoft/new-trust-sub003/internal/resources"
)

func main() {
	format := flag.String("format", "csv", "output format: csv or xlsx")
	out := flag.String("out", "", "output file (default registrations-<date>.<format>)")
	search := flag.String("search", "", "search term")
	event := flag.String("event", "", "event title filter")
	payment := flag.String("payment", "", "payment status filter")
	flag.Parse()

	cfg := config.LoadConfig()
	log := logging.New(cfg.AppEnv)

	var backends resources.Backends
	if cfg.UsesDatabase() {
		db, err := database.Open(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open database")
		}
		backends.DB = db
	}
	set := resources.New(cfg, backends, log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout+5*time.Second)
	defer cancel()
	if err := set.Registrations.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load registrations")
	}
	regs := set.Registrations.View(lr.Query{Search: *search, Category: *event, Status: *payment}).Items

	path := *out
	if path == "" {
		path = export.Filename(time.Now(), *format)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output file")
	}
	defer f.Close()

	switch *format {
	case "csv":
		err = export.WriteCSV(f, regs)
	case "xlsx":
		err = export.WriteXLSX(f, regs)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
	log.Info().Str("file", path).Int("rows", len(regs)).Msg("export written")
}
