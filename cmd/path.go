package cmd

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/golang/geo/s2"
	"github.com/spf13/cobra"

	"github.com/saulberardo/MagicEDA/chart"
	"github.com/saulberardo/MagicEDA/geo"
)

var (
	pathSep     string
	pathLonCol  string
	pathLatCol  string
	pathPadding float64
	pathConnect bool
	pathNoMap   bool
	pathColor   string
	pathWidth   int
	pathHeight  int
	pathOut     string

	pathCmd = &cobra.Command{
		Use:   "path <csv file or url>",
		Short: "Render a geographic path over a map",
		Long: `Render the lon/lat columns of a CSV dataset as a path over
OpenStreetMap tiles, framed so the whole path is visible. Rows with a
missing coordinate are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(args[0], pathSep)
			if err != nil {
				return err
			}

			lonS, latS := df.Col(pathLonCol), df.Col(pathLatCol)
			if lonS.Err != nil {
				return fmt.Errorf("column %q: %w", pathLonCol, lonS.Err)
			}
			if latS.Err != nil {
				return fmt.Errorf("column %q: %w", pathLatCol, latS.Err)
			}
			lons, lats := lonS.Float(), latS.Float()
			path := make([]s2.LatLng, 0, len(lons))
			for i := range lons {
				if math.IsNaN(lons[i]) || math.IsNaN(lats[i]) {
					continue
				}
				path = append(path, s2.LatLngFromDegrees(lats[i], lons[i]))
			}
			logger.Debug("parsed coordinates", "points", len(path), "rows", df.Nrow())

			img, err := geo.PlotPath(path, geo.PathOptions{
				Padding: pathPadding,
				Color:   chart.Color(pathColor),
				Connect: pathConnect,
				NoMap:   pathNoMap,
				Width:   pathWidth,
				Height:  pathHeight,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(pathOut)
			if err != nil {
				return err
			}
			if err = png.Encode(f, img); err != nil {
				f.Close()
				return fmt.Errorf("encode png: %w", err)
			}
			if err = f.Close(); err != nil {
				return err
			}
			logger.Info("wrote map", "path", pathOut, "points", len(path))
			return nil
		},
	}
)

func init() {
	f := pathCmd.Flags()
	f.StringVar(&pathSep, "sep", ",", "csv field separator")
	f.StringVar(&pathLonCol, "lon", "lon", "longitude column name")
	f.StringVar(&pathLatCol, "lat", "lat", "latitude column name")
	f.Float64Var(&pathPadding, "padding", 0.1, "viewport padding fraction per side")
	f.BoolVar(&pathConnect, "connect", false, "connect points with a line")
	f.BoolVar(&pathNoMap, "no-map", false, "plain lon/lat scatter, no tile layer")
	f.StringVar(&pathColor, "color", "ff3300", "path color (hex)")
	f.IntVar(&pathWidth, "width", 800, "image width in pixels")
	f.IntVar(&pathHeight, "height", 600, "image height in pixels")
	f.StringVarP(&pathOut, "out", "o", "path.png", "output png")
}
