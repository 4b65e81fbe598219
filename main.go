// NetRadiation
package main

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/udawtr/netradiation-go/netradiation"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("NetRadiation",
		"Computes surface net radiation and its components (Verma et al. 2016) from a CSV table of meteorological inputs")

	input := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "input CSV path (columns: SWin, albedo, ST_C, emissivity, Ta_C, RH; optional: Ea_Pa, cloud, hour_of_day, doy, lat, sunrise_hour, daylight_hours)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output CSV path (default: stdout)"})

	daily := parser.Flag("", "daily", &argparse.Options{
		Help: "append the daily mean net radiation column (requires hour_of_day plus sunrise_hour/daylight_hours or doy/lat)"})

	doy := parser.Float("", "doy", &argparse.Options{
		Default: math.NaN(),
		Help:    "day of year applied to all rows when the table has no doy column"})

	lat := parser.Float("", "lat", &argparse.Options{
		Default: math.NaN(),
		Help:    "latitude in decimal degrees applied to all rows when the table has no lat column"})

	hour := parser.Float("", "hour", &argparse.Options{
		Default: math.NaN(),
		Help:    "hour of day applied to all rows when the table has no hour_of_day column"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *input == "" {
		fmt.Print(parser.Usage(nil))
		fmt.Fprintln(os.Stderr, "Error: input CSV path not given")
		os.Exit(1)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tbl, err := netradiation.ParseCSV(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !math.IsNaN(*doy) && tbl.DOY == nil {
		tbl.DOY = netradiation.Column(*doy, tbl.Rows())
	}
	if !math.IsNaN(*lat) && tbl.Lat == nil {
		tbl.Lat = netradiation.Column(*lat, tbl.Rows())
	}
	if !math.IsNaN(*hour) && tbl.HourOfDay == nil {
		tbl.HourOfDay = netradiation.Column(*hour, tbl.Rows())
	}

	if *daily {
		err = tbl.CalcDailyNetRadiation()
	} else {
		err = tbl.CalcNetRadiation()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf := bytes.NewBuffer([]byte{})
	tbl.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("writing CSV: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			panic(err)
		}
	}
}
