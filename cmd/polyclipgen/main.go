package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/mikenye/polyclip/point"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "polyclipgen",
		Usage:     "Generates a random bounded-lattice polygon and outputs it to stdout as JSON",
		UsageText: "polyclipgen --rings <value> --points <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "rings",
				Usage:    "The number of rings to generate",
				Value:    1,
				Aliases:  []string{"r"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("rings must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "points",
				Usage:    "The number of points per ring",
				Value:    8,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u < 3 {
						return fmt.Errorf("points must be at least 3")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    1000,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    -1000,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    1000,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    -1000,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	rings := cmd.Int("rings")
	points := cmd.Int("points")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}
	if float64(maxx-minx) > float64(int64(point.MaxCoordinate)*2) || float64(maxy-miny) > float64(int64(point.MaxCoordinate)*2) {
		return fmt.Errorf("requested extent exceeds the lattice's coordinate range")
	}

	output := make([][]point.Point, rings)
	for r := int64(0); r < rings; r++ {
		ring := make([]point.Point, points)
		for i := int64(0); i < points; i++ {
			for {
				p, err := point.New(
					int32(randomIntInRange(minx, maxx)),
					int32(randomIntInRange(miny, maxy)),
				)
				if err != nil {
					return err
				}
				if i == 0 || !p.Eq(ring[i-1]) {
					ring[i] = p
					break
				}
			}
		}
		output[r] = ring
	}

	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
