package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/saulberardo/MagicEDA/dataset"
	"github.com/saulberardo/MagicEDA/profile"
)

var (
	profileSep     string
	profileBins    int
	profileRows    int
	profileCols    int
	profileTitle   string
	profileInclude []string
	profileExclude []string
	profileRot     float64
	profileConfig  string
	profileOut     string
	profileWidth   float64
	profileHeight  float64

	profileCmd = &cobra.Command{
		Use:   "profile <csv file or url>",
		Short: "Render a data frame profile figure",
		Long: `Render one subplot per column of a CSV dataset: a percentage
histogram for numeric columns, a percentage bar chart for categorical
ones. Options given in a --config TOML file take precedence over flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := profile.Options{
				Include:  profileInclude,
				Exclude:  profileExclude,
				Rows:     profileRows,
				Cols:     profileCols,
				Bins:     profileBins,
				Title:    profileTitle,
				Rotation: profileRot,
			}
			if profileConfig != "" {
				if _, err := toml.DecodeFile(profileConfig, &o); err != nil {
					return fmt.Errorf("config: %w", err)
				}
			}

			df, err := loadFrame(args[0], profileSep)
			if err != nil {
				return err
			}
			logger.Debug("loaded data frame", "rows", df.Nrow(), "cols", df.Ncol())

			g, err := profile.DataFrame(df, o)
			if err != nil {
				return err
			}
			if err = g.SavePNG(profileOut, vg.Points(profileWidth), vg.Points(profileHeight)); err != nil {
				return err
			}
			logger.Info("wrote profile", "path", profileOut, "subplots", g.Count())
			return nil
		},
	}
)

func loadFrame(pathOrURL, sep string) (dataframe.DataFrame, error) {
	if sep == "" {
		sep = ","
	}
	return dataset.Load(pathOrURL, dataset.Options{Delimiter: []rune(sep)[0]})
}

func init() {
	f := profileCmd.Flags()
	f.StringVar(&profileSep, "sep", ",", "csv field separator")
	f.IntVar(&profileBins, "bins", profile.DefaultBins, "histogram bin count")
	f.IntVar(&profileRows, "rows", 0, "grid rows (0 = auto)")
	f.IntVar(&profileCols, "cols", 0, "grid columns (0 = auto)")
	f.StringVar(&profileTitle, "title", "", "figure title")
	f.StringSliceVar(&profileInclude, "include", nil, "columns to plot (default all)")
	f.StringSliceVar(&profileExclude, "exclude", nil, "columns to skip")
	f.Float64Var(&profileRot, "rotation", 0, "category label rotation in degrees")
	f.StringVar(&profileConfig, "config", "", "toml file with profile options")
	f.StringVarP(&profileOut, "out", "o", "profile.png", "output png")
	f.Float64Var(&profileWidth, "width", 1000, "figure width in points")
	f.Float64Var(&profileHeight, "height", 750, "figure height in points")
}
