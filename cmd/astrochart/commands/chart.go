package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilbagatto/go-astrologer/internal/astro"
	"github.com/ilbagatto/go-astrologer/internal/chart"
	"github.com/ilbagatto/go-astrologer/internal/ephem"
)

var (
	chartDate      string
	chartLat       float64
	chartLon       float64
	chartPlaceName string
	chartPositions string
	chartJSON      bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a full radix chart",
	Long: `Compute a radix chart for a moment and place: sensitive points,
house cusps, body placements, the aspect table and stellium groups.

Body positions are read from a TOML positions file (--positions).`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartDate, "date", "", "chart moment, RFC3339 (e.g. 1965-02-01T11:46:00Z)")
	chartCmd.Flags().Float64Var(&chartLat, "lat", 0, "latitude, degrees north positive")
	chartCmd.Flags().Float64Var(&chartLon, "lon", 0, "longitude, degrees east positive")
	chartCmd.Flags().StringVar(&chartPlaceName, "place", "", "place name for display")
	chartCmd.Flags().StringVar(&chartPositions, "positions", "", "TOML positions file (required)")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "emit JSON instead of text")
	_ = chartCmd.MarkFlagRequired("date")
	_ = chartCmd.MarkFlagRequired("positions")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	moment, err := time.Parse(time.RFC3339, chartDate)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	provider, err := ephem.LoadFile(chartPositions)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	log.Debug().
		Str("houses", settings.Houses.String()).
		Str("orbs", settings.Orbs.Name()).
		Str("provider", provider.Name()).
		Msg("computing chart")

	place := chart.Place{Name: chartPlaceName, Latitude: chartLat, Longitude: chartLon}
	radix := chart.NewRadix(chartPlaceName, moment, place, settings, provider)

	started := time.Now()
	report, err := buildReport(radix)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(started)).Msg("chart ready")

	if chartJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	writeReport(os.Stdout, report)
	return nil
}

// Report is the JSON-facing shape of a computed chart.
type Report struct {
	Moment    string         `json:"moment"`
	Place     chart.Place    `json:"place"`
	Houses    string         `json:"house_system"`
	Points    ReportPoints   `json:"points"`
	Cusps     [12]float64    `json:"cusps"`
	Objects   []ReportObject `json:"objects"`
	Aspects   []ReportAspect `json:"aspects"`
	Stelliums [][]string     `json:"stelliums"`
	Sidereal  float64        `json:"sidereal_time_hours"`
}

// ReportPoints holds the sensitive points in degrees.
type ReportPoints struct {
	Ascendant float64 `json:"ascendant"`
	Midheaven float64 `json:"midheaven"`
	Vertex    float64 `json:"vertex"`
	EastPoint float64 `json:"east_point"`
}

// ReportObject is one body placement.
type ReportObject struct {
	Body       string  `json:"body"`
	Lambda     float64 `json:"lambda"`
	Beta       float64 `json:"beta"`
	Motion     float64 `json:"daily_motion"`
	House      int     `json:"house"`
	Sign       string  `json:"sign"`
	Retrograde bool    `json:"retrograde"`
}

// ReportAspect is one entry of the aspect table, source before target in
// body order.
type ReportAspect struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Aspect string  `json:"aspect"`
	Arc    float64 `json:"arc"`
	Delta  float64 `json:"delta"`
}

func buildReport(radix *chart.Radix) (*Report, error) {
	cusps, err := radix.Houses()
	if err != nil {
		return nil, err
	}
	objects, err := radix.Objects()
	if err != nil {
		return nil, err
	}
	aspects, err := radix.Aspects()
	if err != nil {
		return nil, err
	}
	stelliums, err := radix.Stelliums()
	if err != nil {
		return nil, err
	}

	points := radix.Points()
	report := &Report{
		Moment: radix.Moment().Format(time.RFC3339),
		Place:  radix.Place(),
		Houses: radix.Settings().Houses.String(),
		Points: ReportPoints{
			Ascendant: points.Ascendant,
			Midheaven: points.Midheaven,
			Vertex:    points.Vertex,
			EastPoint: points.EastPoint,
		},
		Cusps:    cusps,
		Sidereal: radix.SiderealTime(),
	}

	for _, obj := range objects {
		report.Objects = append(report.Objects, ReportObject{
			Body:       obj.Body.String(),
			Lambda:     obj.Position.Lambda,
			Beta:       obj.Position.Beta,
			Motion:     obj.DailyMotion,
			House:      obj.House,
			Sign:       astro.SignOf(obj.Position.Lambda).String(),
			Retrograde: obj.Retrograde(),
		})
	}

	// Flatten the symmetric table into source<target pairs, in body order.
	for i := 0; i < len(objects)-1; i++ {
		for j := i + 1; j < len(objects); j++ {
			src, dst := objects[i].Body, objects[j].Body
			if info, ok := aspects[src][dst]; ok {
				report.Aspects = append(report.Aspects, ReportAspect{
					Source: src.String(),
					Target: dst.String(),
					Aspect: info.Aspect.String(),
					Arc:    info.Arc,
					Delta:  info.Delta,
				})
			}
		}
	}

	for _, group := range stelliums {
		names := make([]string, len(group))
		for i, obj := range group {
			names[i] = obj.Body.String()
		}
		report.Stelliums = append(report.Stelliums, names)
	}

	return report, nil
}

func writeReport(w *os.File, report *Report) {
	fmt.Fprintf(w, "Chart for %s", report.Moment)
	if report.Place.Name != "" {
		fmt.Fprintf(w, " at %s", report.Place.Name)
	}
	fmt.Fprintf(w, " (%s houses)\n\n", report.Houses)

	fmt.Fprintf(w, "Asc %10.4f°   MC %10.4f°   Vertex %10.4f°   East Point %10.4f°\n\n",
		report.Points.Ascendant, report.Points.Midheaven,
		report.Points.Vertex, report.Points.EastPoint)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tPOSITION\tMOTION\tHOUSE")
	for _, obj := range report.Objects {
		marker := ""
		if obj.Retrograde {
			marker = " R"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%+.4f\t%d\n",
			obj.Body, astro.FormatLambda(obj.Lambda), marker, obj.Motion, obj.House+1)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nCusps:")
	for i, c := range report.Cusps {
		fmt.Fprintf(w, "  %2d  %s\n", i+1, astro.FormatLambda(c))
	}

	if len(report.Aspects) > 0 {
		fmt.Fprintln(w, "\nAspects:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, a := range report.Aspects {
			fmt.Fprintf(tw, "  %s\t%s\t%s\tarc %.2f°\tdelta %.2f°\n",
				a.Source, a.Aspect, a.Target, a.Arc, a.Delta)
		}
		tw.Flush()
	}

	if len(report.Stelliums) > 0 {
		fmt.Fprintln(w, "\nStelliums:")
		for _, group := range report.Stelliums {
			fmt.Fprintf(w, "  %v\n", group)
		}
	}
}
