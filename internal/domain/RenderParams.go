package domain

// FilterMode define a política de filtro por mês
type FilterMode string

const (
	// FilterModeCumulative mantém todos os registros até o primeiro dia do mês seguinte (inclusive)
	FilterModeCumulative FilterMode = "cumulative"
	// FilterModeSingleMonth mantém apenas os registros do primeiro dia do mês (dados em baldes mensais)
	FilterModeSingleMonth FilterMode = "single_month"
)

// Valid indica se o modo é conhecido
func (m FilterMode) Valid() bool {
	return m == FilterModeCumulative || m == FilterModeSingleMonth
}

// LayerStyle é o estilo de camada usado pelo renderizador externo do mapa
type LayerStyle string

const (
	LayerStyleColumn  LayerStyle = "ColumnLayer"
	LayerStyleHeatmap LayerStyle = "HeatmapLayer"
)

// Valid indica se o estilo é conhecido
func (s LayerStyle) Valid() bool {
	return s == LayerStyleColumn || s == LayerStyleHeatmap
}

const (
	MinMonth = 1
	MaxMonth = 11
)

// RenderParams são os controles interativos do painel
type RenderParams struct {
	Month        int        `json:"month"`
	ShowNegative bool       `json:"show_negative"`
	LayerStyle   LayerStyle `json:"layer_style"`
}

// RenderOptions são as configurações fixas aplicadas a cada renderização
type RenderOptions struct {
	Year          int
	TopN          int
	MapFilterMode FilterMode
	MapCenter     LatLon
	MapZoom       float64
	MapPitch      float64
	AutoCenter    bool
}
