package main

import (
	"encoding/json"
	"os"

	"price_tag_app_go/handlers"
	"price_tag_app_go/models"
	"price_tag_app_go/services/layout"

	"github.com/spf13/cobra"
)

var (
	modeFlag   string
	windowFlag float64

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the sheet geometry for a layout mode as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := models.ParseLayoutMode(modeFlag)
			if err != nil {
				return err
			}

			comp, err := layout.Compose(mode, models.NewDefaultTagPool())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(handlers.DescribeLayout(comp, windowFlag))
		},
	}
)

func init() {
	layoutCmd.Flags().StringVarP(&modeFlag, "mode", "m", string(models.LayoutSingle),
		"Layout mode: 1x, 2x or 4x")
	layoutCmd.Flags().Float64VarP(&windowFlag, "window", "w", 0,
		"Browser window width in px used for the preview scale")
}
