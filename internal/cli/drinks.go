package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/makery/pkg/beverage"
)

// newDrinksCmd creates the "drinks" command: pick a region factory, place
// an order, and print it.
func newDrinksCmd() *cobra.Command {
	var (
		regionName string
		spoons     int
	)

	cmd := &cobra.Command{
		Use:   "drinks",
		Short: "Prepare a drink order with one region's factory",
		Long: "Drinks selects a region factory and places a small order: water,\n" +
			"a coffee, and a tea, all sweetened from the same factory's sugar.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(resolveConfigDir())
			if err != nil {
				return err
			}

			name := regionName
			if name == "" {
				name = cfg.GetString(cfgKeyRegion)
			}

			var region beverage.Region
			if name == "random" {
				region = beverage.PickRegion()
			} else {
				region, err = beverage.ParseRegion(name)
				if err != nil {
					return err
				}
			}

			factory := beverage.ForRegion(region)
			order := beverage.NewOrder().
				Add(factory.MakeWater()).
				Add(factory.MakeCoffee(factory.MakeSugar(spoons))).
				Add(factory.MakeTea(factory.MakeSugar(spoons)))

			fmt.Fprintf(cmd.OutOrStdout(), "region: %s\n%s\n", factory.Region(), order.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "region to order from (region-a, region-b, random; default from config)")
	cmd.Flags().IntVar(&spoons, "spoons", 1, "spoons of sugar per sweetened drink")

	return cmd
}
