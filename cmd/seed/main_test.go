package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/infrastructure/dataset"
	"github.com/vfg2006/emerging-areas-api/internal/config"
)

func TestRunSeed(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "ea.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"observation_start_date,lat,lon,area_id,inflow,outflow,income_inflow,income_outflow,total_net_flow\n"+
			"2019-01-01,25.77,-80.19,1,10,2,5,1,20\n"+
			"2019-02-01,25.80,-80.25,2,3,1,2,1,5\n"), 0o600))

	dbPath := filepath.Join(dir, "ea.db")
	cfg := &config.Config{
		Database: config.Database{Driver: database.DriverSQLite, DSN: dbPath},
		Dataset:  config.Dataset{Table: "emerging_areas", DateColumn: "observation_start_date"},
	}

	ctx := context.Background()
	require.NoError(t, runSeed(ctx, cfg, csvPath, "", false))
	// Segunda carga com truncate não duplica linhas
	require.NoError(t, runSeed(ctx, cfg, csvPath, "", true))

	conn, err := database.NewConnection(ctx, cfg.Database)
	require.NoError(t, err)
	defer conn.Close()

	records, err := dataset.NewSQLLoader(conn, conn.Driver, "emerging_areas", dataset.ParseOptions{DateColumn: "observation_start_date"}).Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[1].AreaID)
}
