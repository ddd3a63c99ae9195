package dataset

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/internal/config"
)

const sampleCSV = `OBSERVATION_START_DATE,LAT,LON,AREA_ID,INFLOW,OUTFLOW,INCOME_INFLOW,INCOME_OUTFLOW,TOTAL_NET_FLOW
2019-01-01,25.77,-80.19,12086000100,10,2,5,1,20
2019-02-01,25.77,-80.19,12086000100,3,1,2,1,5
2019-01-01,25.80,-80.25,12086000200,4,8,1,3,-7
`

var defaultOpts = ParseOptions{DateColumn: "observation_start_date", UseIncomeDiffColumn: true}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCSVLoader_Load(t *testing.T) {
	path := writeFile(t, "ea_sample.csv", sampleCSV)

	records, err := NewCSVLoader(path, defaultOpts).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "12086000100", records[0].AreaID)
	assert.Equal(t, time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC), records[1].ObservationDate)
	assert.Equal(t, -7.0, records[2].TotalNetFlow)
	assert.Equal(t, 25.80, records[2].Lat)
}

func TestCSVLoader_MalformedDate(t *testing.T) {
	path := writeFile(t, "bad.csv", "observation_start_date,lat,lon,area_id,inflow,outflow,income_inflow,income_outflow,total_net_flow\n"+
		"not-a-date,1,1,a,1,1,1,1,1\n")

	_, err := NewCSVLoader(path, defaultOpts).Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestCSVLoader_HeaderOnly(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "Somente cabeçalho carrega zero registros",
			content: "observation_start_date,lat,lon,area_id,inflow,outflow,income_inflow,income_outflow,total_net_flow\n",
		},
		{
			name:    "Cabeçalho sem colunas obrigatórias",
			content: "observation_start_date,lat\n",
			wantErr: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "header.csv", tt.content)

			records, err := NewCSVLoader(path, defaultOpts).Load(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestCSVLoader_MissingFile(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv"), defaultOpts).Load(context.Background())
	assert.Error(t, err)
}

func TestXLSXLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ea_sample.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{
		"observation_start_date", "lat", "lon", "area_id", "inflow", "outflow", "income_inflow", "income_outflow", "total_net_flow",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2019-01-01", 25.77, -80.19, "A", 10, 2, 5, 1, 20}))
	// Número de série do Excel para 2019-03-01
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{43525, 25.80, -80.25, "B", 4, 8, 1, 3, -7}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	loader, err := NewFileLoader(path, "", defaultOpts)
	require.NoError(t, err)

	records, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), records[0].ObservationDate)
	assert.Equal(t, time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), records[1].ObservationDate)
	assert.Equal(t, "B", records[1].AreaID)
	assert.Equal(t, -7.0, records[1].TotalNetFlow)
}

func TestSQLLoader_Load(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE emerging_areas (
		observation_start_date TEXT,
		lat REAL, lon REAL, area_id TEXT,
		inflow REAL, outflow REAL,
		income_inflow REAL, income_outflow REAL,
		total_net_flow REAL
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO emerging_areas VALUES
		('2019-02-01', 25.77, -80.19, '100', 3, 1, 2, 1, 5),
		('2019-01-01', 25.77, -80.19, '100', 10, 2, 5, 1, 20),
		('2019-03-01', 25.80, -80.25, '200', 4, 8, 1, 3, -7)`)
	require.NoError(t, err)

	tests := []struct {
		name     string
		maxRows  int
		validate func(t *testing.T, loader *SQLLoader)
	}{
		{
			name: "Lê a tabela inteira ordenada pela data",
			validate: func(t *testing.T, loader *SQLLoader) {
				records, err := loader.Load(context.Background())
				require.NoError(t, err)
				require.Len(t, records, 3)
				assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), records[0].ObservationDate)
				assert.Equal(t, 20.0, records[0].TotalNetFlow)
				assert.Equal(t, "200", records[2].AreaID)
			},
		},
		{
			name:    "Aplica LIMIT com o limite de linhas",
			maxRows: 2,
			validate: func(t *testing.T, loader *SQLLoader) {
				sqlQuery, args, err := loader.query()
				require.NoError(t, err)
				assert.Contains(t, sqlQuery, "LIMIT 2")
				assert.Empty(t, args)

				records, err := loader.Load(context.Background())
				require.NoError(t, err)
				assert.Len(t, records, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts
			opts.MaxRows = tt.maxRows
			tt.validate(t, NewSQLLoader(db, database.DriverSQLite, "emerging_areas", opts))
		})
	}
}

func TestPlaceholderFor(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		expected string
	}{
		{name: "Postgres usa parâmetros numerados", driver: database.DriverPostgres, expected: "area_id = $1 AND lat > $2"},
		{name: "SQLite usa interrogação", driver: database.DriverSQLite, expected: "area_id = ? AND lat > ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := placeholderFor(tt.driver).ReplacePlaceholders("area_id = ? AND lat > ?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewLoader(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Dataset
		wantErr bool
		want    any
	}{
		{name: "CSV", cfg: config.Dataset{Source: config.DatasetSourceFile, Path: "data/ea.csv"}, want: &CSVLoader{}},
		{name: "XLSX", cfg: config.Dataset{Source: config.DatasetSourceFile, Path: "data/ea.XLSX"}, want: &XLSXLoader{}},
		{name: "Extensão desconhecida", cfg: config.Dataset{Source: config.DatasetSourceFile, Path: "data/ea.parquet"}, wantErr: true},
		{name: "Banco sem conexão", cfg: config.Dataset{Source: config.DatasetSourceDatabase, Table: "ea"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, err := NewLoader(&config.Config{Dataset: tt.cfg}, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedSource)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, loader)
		})
	}
}
