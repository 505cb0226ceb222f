package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulberardo/MagicEDA/scatter"
)

var (
	scatterSep   string
	scatterXCol  string
	scatterYCol  string
	scatterTip   string
	scatterTitle string
	scatterOut   string

	scatterCmd = &cobra.Command{
		Use:   "scatter <csv file or url>",
		Short: "Render a hover-tooltip scatter page",
		Long: `Render two numeric CSV columns as a scatter plot in a
self-contained HTML page; hovering a point shows the tip column's text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(args[0], scatterSep)
			if err != nil {
				return err
			}

			for _, c := range []string{scatterXCol, scatterYCol, scatterTip} {
				if s := df.Col(c); s.Err != nil {
					return fmt.Errorf("column %q: %w", c, s.Err)
				}
			}
			xs := df.Col(scatterXCol).Float()
			ys := df.Col(scatterYCol).Float()
			tips := df.Col(scatterTip).Records()

			sc, err := scatter.MouseOver(xs, ys, tips, scatter.Options{
				Title:  scatterTitle,
				XLabel: scatterXCol,
				YLabel: scatterYCol,
			})
			if err != nil {
				return err
			}

			f, err := os.Create(scatterOut)
			if err != nil {
				return err
			}
			if err = scatter.Render(f, sc); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			logger.Info("wrote scatter", "path", scatterOut, "points", len(xs))
			return nil
		},
	}
)

func init() {
	f := scatterCmd.Flags()
	f.StringVar(&scatterSep, "sep", ",", "csv field separator")
	f.StringVar(&scatterXCol, "x", "x", "x column name")
	f.StringVar(&scatterYCol, "y", "y", "y column name")
	f.StringVar(&scatterTip, "tip", "tip", "tooltip text column name")
	f.StringVar(&scatterTitle, "title", "", "chart title")
	f.StringVarP(&scatterOut, "out", "o", "scatter.html", "output html")
}
