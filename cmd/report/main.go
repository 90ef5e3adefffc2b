// Comando report gera o relatório mensal de uma planilha local, sem subir a API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi"
	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi/quoteclient"
	"github.com/vfg2006/clash-paysheet/infrastructure/spreadsheet"
	"github.com/vfg2006/clash-paysheet/internal/config"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/internal/usecases/normalizing"
	"github.com/vfg2006/clash-paysheet/internal/usecases/reporting"
	"github.com/vfg2006/clash-paysheet/pkg/log"
	"github.com/vfg2006/clash-paysheet/pkg/utils"
)

var errFileRequired = errors.New("informe a planilha com --file")

func newFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Planilha .xlsx com as vendas",
	}
}

func newJSONFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Imprime o resultado em JSON",
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "report",
		Usage:     "Gera o relatório mensal de vendas de uma planilha",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			newFileFlag(),
			newJSONFlag(),
			&cli.IntFlag{
				Name:    "month",
				Aliases: []string{"m"},
				Usage:   "Mês do relatório (1-12)",
			},
			&cli.IntFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "Ano do relatório",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "Cotação USD-BRL fixa para a conversão",
			},
			&cli.BoolFlag{
				Name:  "live-rate",
				Usage: "Consulta a cotação USD-BRL atual na AwesomeAPI",
			},
			&cli.StringFlag{
				Name:    "rate-url",
				Usage:   "URL base da AwesomeAPI",
				Value:   "https://economia.awesomeapi.com.br/json/last",
				EnvVars: []string{"EXCHANGE_RATE_URL"},
			},
			&cli.DurationFlag{
				Name:    "rate-timeout",
				Usage:   "Timeout da consulta de cotação",
				Value:   5 * time.Second,
				EnvVars: []string{"EXCHANGE_RATE_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			log.Configure(c.String("log-level"))
			return nil
		},
		Action: runReport,
		Commands: []*cli.Command{
			{
				Name:   "periods",
				Usage:  "Lista os anos e meses disponíveis na planilha",
				Flags:  []cli.Flag{newFileFlag(), newJSONFlag()},
				Action: runPeriods,
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func loadRecords(path string) ([]domain.NormalizedRecord, error) {
	if path == "" {
		return nil, errFileRequired
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer file.Close()

	raw, err := spreadsheet.NewXLSXReader().Read(file)
	if err != nil {
		return nil, err
	}

	records, stats, err := normalizing.NormalizeWithStats(raw)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"sheet_name":    raw.Name,
		"sheet_records": stats.Records,
		"sheet_dropped": stats.DroppedRecords,
		"sheet_skipped": stats.SkippedColumns,
	}).Debug("report: planilha normalizada")

	return records, nil
}

func runReport(c *cli.Context) error {
	filters := domain.ReportFilters{Month: c.Int("month"), Year: c.Int("year")}
	if err := reporting.ValidateFilters(filters); err != nil {
		return err
	}

	records, err := loadRecords(c.String("file"))
	if err != nil {
		return err
	}

	rate := resolveRate(c)
	report := reporting.BuildReport(records, filters.Month, filters.Year, rate)

	if c.Bool("json") {
		fmt.Fprintln(c.App.Writer, utils.PrettyJson(report))
		return nil
	}

	printReport(c.App.Writer, report)
	return nil
}

// resolveRate prioriza --rate; --live-rate faz uma única consulta
func resolveRate(c *cli.Context) *float64 {
	if c.IsSet("rate") {
		rate := c.Float64("rate")
		if rate > 0 {
			return &rate
		}
		log.L.Warnf("report: cotação %v ignorada, deve ser positiva", rate)
		return nil
	}

	if !c.Bool("live-rate") {
		return nil
	}

	cfg := &config.Config{
		ExchangeRate: config.ExchangeRate{
			URL:     c.String("rate-url"),
			Pair:    "USD-BRL",
			Timeout: c.Duration("rate-timeout"),
		},
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	rate, ok := awesomeapi.New(cfg, quoteclient.NewClient(cfg)).GetRate(ctx)
	if !ok {
		fmt.Fprintln(c.App.Writer, "Cotação indisponível, exibindo apenas valores em dólar")
		return nil
	}
	return &rate
}

func printReport(out io.Writer, report *domain.ReportResult) {
	fmt.Fprintf(out, "Relatório de %s\n\n", report.Title)

	if report.Empty {
		fmt.Fprintln(out, "Nenhum dado para o período selecionado")
		return
	}

	fmt.Fprintf(out, "Total: %s\n", report.Summary.FormattedTotal)
	if report.Summary.ConvertedTotal != nil {
		fmt.Fprintf(out, "Total convertido: %s (cotação %.4f)\n", report.Summary.FormattedConvertedTotal, *report.Summary.Rate)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Level\tBases\tTotal\t")
	for _, level := range report.Levels {
		fmt.Fprintf(tw, "%d\t%d\t%s\t\n", level.Level, level.BaseCount, level.FormattedValue)
	}
	tw.Flush()
}

func runPeriods(c *cli.Context) error {
	records, err := loadRecords(c.String("file"))
	if err != nil {
		return err
	}

	periods := domain.NewAvailablePeriods(records)
	if c.Bool("json") {
		fmt.Fprintln(c.App.Writer, utils.PrettyJson(periods))
		return nil
	}

	fmt.Fprintf(c.App.Writer, "Anos: %v\n", periods.Years)
	for _, month := range periods.Months {
		fmt.Fprintf(c.App.Writer, "%2d %s\n", month.Number, month.Name)
	}
	return nil
}
