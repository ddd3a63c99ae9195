// Command render executa o pipeline do painel sobre um arquivo local e imprime as
// visualizações em JSON
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/emerging-areas-api/infrastructure/dataset"
	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/export"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type renderFlags struct {
	file       string
	sheet      string
	month      int
	negative   bool
	layer      string
	year       int
	topN       int
	maxRows    int
	filterMode string
	dateColumn string
	deriveDiff bool
	autoCenter bool
	format     string
	output     string
}

func newRootCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Renderiza as visualizações do painel de áreas emergentes",
		Long: `Carrega um dataset CSV ou XLSX, aplica os controles do painel e imprime o mapa,
o ranking e as séries temporais em JSON. Também exporta o mapa em GeoJSON e os gráficos em PNG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "arquivo do dataset (.csv, .xlsx)")
	f.StringVar(&flags.sheet, "sheet", "", "planilha do arquivo xlsx (padrão: a primeira)")
	f.IntVarP(&flags.month, "month", "m", 4, fmt.Sprintf("mês selecionado (%d-%d)", domain.MinMonth, domain.MaxMonth))
	f.BoolVar(&flags.negative, "negative", false, "mostra no mapa as áreas com income_diff negativo")
	f.StringVar(&flags.layer, "layer", string(domain.LayerStyleColumn), "estilo de camada: ColumnLayer ou HeatmapLayer")
	f.IntVar(&flags.year, "year", 2019, "ano do dataset")
	f.IntVar(&flags.topN, "top", flows.DefaultTopN, "tamanho das listas do ranking")
	f.IntVar(&flags.maxRows, "max-rows", 0, "limite de linhas lidas (0 = sem limite)")
	f.StringVar(&flags.filterMode, "map-filter", string(domain.FilterModeCumulative), "filtro do mapa: cumulative ou single_month")
	f.StringVar(&flags.dateColumn, "date-column", "observation_start_date", "coluna de data")
	f.BoolVar(&flags.deriveDiff, "derive-income-diff", false, "ignora a coluna income_diff e sempre recalcula")
	f.BoolVar(&flags.autoCenter, "auto-center", false, "centraliza o mapa nas áreas renderizadas")
	f.StringVar(&flags.format, "format", "json", "saída: json, geojson, flows-png ou net-flow-png")
	f.StringVarP(&flags.output, "output", "o", "", "arquivo de saída (padrão: stdout)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

var outputFormats = map[string]struct{}{
	"json":         {},
	"geojson":      {},
	"flows-png":    {},
	"net-flow-png": {},
}

// validateFlags rejeita controles inválidos antes de qualquer leitura do dataset
func validateFlags(flags *renderFlags) error {
	if !domain.FilterMode(flags.filterMode).Valid() {
		return fmt.Errorf("%w: %q", flows.ErrInvalidFilterMode, flags.filterMode)
	}

	if _, err := flows.NormalizeParams(domain.RenderParams{
		Month:      flags.month,
		LayerStyle: domain.LayerStyle(flags.layer),
	}); err != nil {
		return err
	}

	if flags.topN <= 0 {
		return fmt.Errorf("--top deve ser positivo: %d", flags.topN)
	}

	if _, ok := outputFormats[strings.ToLower(flags.format)]; !ok {
		return fmt.Errorf("formato de saída desconhecido: %q", flags.format)
	}

	return nil
}

func runRender(ctx context.Context, stdout io.Writer, flags *renderFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateFlags(flags); err != nil {
		return err
	}

	loader, err := dataset.NewFileLoader(flags.file, flags.sheet, dataset.ParseOptions{
		DateColumn:          flags.dateColumn,
		MaxRows:             flags.maxRows,
		UseIncomeDiffColumn: !flags.deriveDiff,
	})
	if err != nil {
		return err
	}

	store := dataset.NewStore(loader)
	if _, err := store.Reload(ctx); err != nil {
		return err
	}

	cfg := &config.Config{
		Dashboard: config.Dashboard{
			Year:          flags.year,
			DefaultMonth:  flags.month,
			TopN:          flags.topN,
			MapFilterMode: flags.filterMode,
		},
		Map: config.Map{CenterLat: 25.7823907, CenterLon: -80.2994983, Zoom: 9, Pitch: 50, AutoCenter: flags.autoCenter},
	}
	views, err := flows.NewService(store, cfg).Render(ctx, domain.RenderParams{
		Month:        flags.month,
		ShowNegative: flags.negative,
		LayerStyle:   domain.LayerStyle(flags.layer),
	})
	if err != nil {
		return err
	}

	out := stdout
	if flags.output != "" {
		file, err := os.Create(filepath.Clean(flags.output))
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	switch strings.ToLower(flags.format) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	case "geojson":
		raw, err := export.MapGeoJSON(views)
		if err != nil {
			return err
		}
		_, err = out.Write(raw)
		return err
	case "flows-png":
		return export.FlowsChart(out, views)
	case "net-flow-png":
		return export.NetFlowChart(out, views)
	default:
		return fmt.Errorf("formato de saída desconhecido: %q", flags.format)
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("render: falha")
		os.Exit(1)
	}
}
