package domain

import "time"

// LatLon é uma coordenada em graus
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RGB são os canais de cor de uma área no mapa
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// AreaAggregate é o resultado da agregação de uma área no período filtrado
type AreaAggregate struct {
	AreaID       string  `json:"area_id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	IncomeDiff   float64 `json:"income_diff"`
	TotalNetFlow float64 `json:"total_net_flow"`
	Inflow       float64 `json:"inflow"`
	Outflow      float64 `json:"outflow"`
}

// MapArea é uma área posicionada, colorida e com elevação para o mapa
type MapArea struct {
	AreaID    string  `json:"area_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elevation"`
	Color     RGB     `json:"color"`
}

// MapLayer é a camada de áreas do mapa. Empty indica que não há nada a desenhar
type MapLayer struct {
	Areas    []MapArea `json:"areas"`
	MaxValue float64   `json:"max_value"`
	Empty    bool      `json:"empty"`
}

// MapViewState descreve a câmera e os parâmetros visuais da camada
type MapViewState struct {
	Center         LatLon     `json:"center"`
	Zoom           float64    `json:"zoom"`
	Pitch          float64    `json:"pitch"`
	LayerStyle     LayerStyle `json:"layer_style"`
	Radius         float64    `json:"radius"`
	ElevationScale float64    `json:"elevation_scale"`
	ElevationRange [2]float64 `json:"elevation_range"`
	Extruded       bool       `json:"extruded"`
}

// RankedArea é uma linha do ranking de áreas
type RankedArea struct {
	Position          int     `json:"position"`
	AreaID            string  `json:"area_id"`
	IncomeDiff        float64 `json:"-"`
	IncomeDiffDisplay int32   `json:"income_diff"`
	TotalNetFlow      float64 `json:"total_net_flow"`
}

// Leaderboard contém as melhores e piores áreas do período acumulado
type Leaderboard struct {
	Top        []RankedArea `json:"top"`
	Bottom     []RankedArea `json:"bottom"`
	TotalAreas int          `json:"total_areas"`
}

// DateBucket é a soma dos fluxos de todas as áreas em uma data
type DateBucket struct {
	Date         time.Time `json:"date"`
	Inflow       float64   `json:"inflow"`
	Outflow      float64   `json:"outflow"`
	TotalNetFlow float64   `json:"total_net_flow"`
}

// FlowPoint é um ponto do gráfico de entrada e saída
type FlowPoint struct {
	Date    time.Time `json:"date"`
	Inflow  float64   `json:"inflow"`
	Outflow float64   `json:"outflow"`
}

// NetFlowPoint é um ponto do gráfico de fluxo líquido acumulado
type NetFlowPoint struct {
	Date         time.Time `json:"date"`
	TotalNetFlow float64   `json:"total_net_flow"`
}

// TimeSeries contém as duas séries temporais em ordem cronológica
type TimeSeries struct {
	Flows   []FlowPoint    `json:"flows"`
	NetFlow []NetFlowPoint `json:"net_flow"`
}

// Period é o intervalo exibido no cabeçalho do mapa
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DashboardViews é a saída completa de uma renderização
type DashboardViews struct {
	Params      RenderParams `json:"params"`
	SnapshotID  string       `json:"snapshot_id,omitempty"`
	Period      Period       `json:"period"`
	Map         MapLayer     `json:"map"`
	View        MapViewState `json:"view"`
	Leaderboard Leaderboard  `json:"leaderboard"`
	TimeSeries  TimeSeries   `json:"time_series"`
}
