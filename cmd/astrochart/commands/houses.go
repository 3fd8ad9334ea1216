package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/chart"
	"github.com/ilbagatto/go-astrologer/internal/mathutil"
)

var (
	housesDate   string
	housesLat    float64
	housesLon    float64
	housesSystem string
	housesJSON   bool
)

var housesCmd = &cobra.Command{
	Use:   "houses",
	Short: "Compute house cusps for a moment and place",
	RunE:  runHouses,
}

func init() {
	housesCmd.Flags().StringVar(&housesDate, "date", "", "moment, RFC3339")
	housesCmd.Flags().Float64Var(&housesLat, "lat", 0, "latitude, degrees north positive")
	housesCmd.Flags().Float64Var(&housesLon, "lon", 0, "longitude, degrees east positive")
	housesCmd.Flags().StringVar(&housesSystem, "system", "", "house system (default from config)")
	housesCmd.Flags().BoolVar(&housesJSON, "json", false, "emit JSON instead of text")
	_ = housesCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(housesCmd)
}

func runHouses(cmd *cobra.Command, args []string) error {
	moment, err := time.Parse(time.RFC3339, housesDate)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	name := housesSystem
	if name == "" {
		name = cfg.Chart.Houses
	}
	system, ok := chart.ParseHouseSystem(name)
	if !ok {
		return fmt.Errorf("unknown house system %q", name)
	}

	ramc := astro.RAMC(moment, housesLon)
	eps := mathutil.Deg2Rad(astro.MeanObliquity(moment))
	theta := mathutil.Deg2Rad(housesLat)

	cusps, err := chart.Cusps(system, ramc, eps, theta, math.NaN(), math.NaN())
	if err != nil {
		return err
	}

	if housesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"system": system.String(),
			"cusps":  cusps,
		})
	}

	fmt.Printf("%s cusps for %s (lat %.4f, lon %.4f):\n",
		system, moment.Format(time.RFC3339), housesLat, housesLon)
	for i, c := range cusps {
		fmt.Printf("  %2d  %10.4f°  %s\n", i+1, c, astro.FormatLambda(c))
	}
	return nil
}
