package netradiation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// Table is the tabular batch interface: parallel per-row columns of the
// scalar inputs, with the derived flux columns appended by the Calc
// methods. It has no physics of its own; each Calc call hands the column
// vectors to the core once.
type Table struct {
	SWin       []float64 // incoming shortwave radiation [W/m²]
	Albedo     []float64 // surface albedo [0..1]
	STC        []float64 // surface temperature [°C]
	Emissivity []float64 // surface emissivity [0..1]
	TaC        []float64 // air temperature [°C]
	RH         []float64 // relative humidity [0..1]

	EaPa  []float64 // actual vapor pressure [Pa], optional
	Cloud []bool    // true where cloudy, optional

	HourOfDay     []float64 // optional, for daily upscaling
	DOY           []float64 // optional
	Lat           []float64 // optional
	SunriseHour   []float64 // optional
	DaylightHours []float64 // optional

	SWout   []float64 // derived
	LWin    []float64 // derived
	LWout   []float64 // derived
	Rn      []float64 // derived
	RnDaily []float64 // derived, daily mean [W/m²]
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return len(t.SWin)
}

// Column returns a column of n copies of v, for filling per-row geometry
// from a scalar.
func Column(v float64, n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = v
	}
	return col
}

// columns maps CSV header names to their destination columns.
func (t *Table) columns() map[string]*[]float64 {
	return map[string]*[]float64{
		"SWin":           &t.SWin,
		"albedo":         &t.Albedo,
		"ST_C":           &t.STC,
		"emissivity":     &t.Emissivity,
		"Ta_C":           &t.TaC,
		"RH":             &t.RH,
		"Ea_Pa":          &t.EaPa,
		"hour_of_day":    &t.HourOfDay,
		"doy":            &t.DOY,
		"lat":            &t.Lat,
		"sunrise_hour":   &t.SunriseHour,
		"daylight_hours": &t.DaylightHours,
	}
}

var requiredColumns = []string{"SWin", "albedo", "ST_C", "emissivity", "Ta_C"}

// ParseCSV reads a header-keyed CSV table of inputs. Unknown columns are
// ignored, empty cells become NaN, and the optional "cloud" column accepts
// 0/1/true/false. Ragged rows and unparsable numbers are structural errors.
func ParseCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	header := records[0]
	rows := records[1:]

	t := &Table{}
	cols := t.columns()
	seen := map[string]bool{}
	for j, name := range header {
		seen[name] = true
		if name == "cloud" {
			t.Cloud = make([]bool, len(rows))
			for i, rec := range rows {
				switch strings.ToLower(strings.TrimSpace(rec[j])) {
				case "1", "true", "t":
					t.Cloud[i] = true
				case "", "0", "false", "f":
					t.Cloud[i] = false
				default:
					return nil, fmt.Errorf("row %d: cloud value %q is not a boolean", i+2, rec[j])
				}
			}
			continue
		}
		dst, ok := cols[name]
		if !ok {
			continue
		}
		*dst = make([]float64, len(rows))
		for i, rec := range rows {
			cell := strings.TrimSpace(rec[j])
			if cell == "" {
				(*dst)[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %v", i+2, name, err)
			}
			(*dst)[i] = v
		}
	}
	for _, name := range requiredColumns {
		if !seen[name] {
			return nil, fmt.Errorf("required column %s not given", name)
		}
	}
	if !seen["RH"] && !seen["Ea_Pa"] {
		return nil, fmt.Errorf("required column RH not given (or give Ea_Pa directly)")
	}
	return t, nil
}

func column(values []float64) Field {
	f, _ := FromSlice(values)
	return f
}

// CalcNetRadiation computes the SWout, LWin, LWout and Rn columns from the
// input columns by one call into the core.
func (t *Table) CalcNetRadiation() error {
	logger := logging.GetLogger("netradiation")
	logger.Infof("computing net radiation for %d rows", t.Rows())

	in := NetRadiationInput{
		STC:        column(t.STC),
		Emissivity: column(t.Emissivity),
		Albedo:     column(t.Albedo),
		SWin:       column(t.SWin),
		TaC:        column(t.TaC),
	}
	if t.RH != nil {
		in.RH = column(t.RH)
	}
	if t.EaPa != nil {
		in.EaPa = column(t.EaPa)
	}
	if t.Cloud != nil {
		m, err := MaskFromSlice(t.Cloud)
		if err != nil {
			return err
		}
		in.Cloud = m
	}
	fluxes, err := NetRadiation(in)
	if err != nil {
		return err
	}
	t.SWout = fluxes.SWout.Values()
	t.LWin = fluxes.LWin.Values()
	t.LWout = fluxes.LWout.Values()
	t.Rn = fluxes.Rn.Values()
	return nil
}

// CalcDailyNetRadiation computes the Rn_daily column (daily mean net
// radiation, W/m²). It computes the Rn column first when missing.
func (t *Table) CalcDailyNetRadiation() error {
	if t.Rn == nil {
		if err := t.CalcNetRadiation(); err != nil {
			return err
		}
	}
	if t.HourOfDay == nil {
		return fmt.Errorf("hour of day not given")
	}

	logger := logging.GetLogger("netradiation")
	logger.Infof("upscaling net radiation to daily means for %d rows", t.Rows())

	in := DailyInput{
		Rn:        column(t.Rn),
		HourOfDay: column(t.HourOfDay),
	}
	if t.SunriseHour != nil {
		in.SunriseHour = column(t.SunriseHour)
	}
	if t.DaylightHours != nil {
		in.DaylightHours = column(t.DaylightHours)
	}
	if t.DOY != nil {
		in.DOY = column(t.DOY)
	}
	if t.Lat != nil {
		in.Lat = column(t.Lat)
	}
	daily, err := DailyNetRadiation(in)
	if err != nil {
		return err
	}
	t.RnDaily = daily.Values()
	return nil
}

// ToCSV writes the table, input and derived columns alike, into buf.
func (t *Table) ToCSV(buf *bytes.Buffer) {
	type col struct {
		name   string
		values []float64
	}
	cols := []col{
		{"SWin", t.SWin},
		{"albedo", t.Albedo},
		{"ST_C", t.STC},
		{"emissivity", t.Emissivity},
		{"Ta_C", t.TaC},
		{"RH", t.RH},
		{"Ea_Pa", t.EaPa},
		{"hour_of_day", t.HourOfDay},
		{"doy", t.DOY},
		{"lat", t.Lat},
		{"sunrise_hour", t.SunriseHour},
		{"daylight_hours", t.DaylightHours},
		{"SWout", t.SWout},
		{"LWin", t.LWin},
		{"LWout", t.LWout},
		{"Rn", t.Rn},
		{"Rn_daily", t.RnDaily},
	}

	first := true
	writeName := func(name string) {
		if !first {
			buf.WriteString(",")
		}
		first = false
		buf.WriteString(name)
	}
	for _, c := range cols {
		if c.values != nil {
			writeName(c.name)
		}
	}
	if t.Cloud != nil {
		writeName("cloud")
	}
	buf.WriteString("\n")

	for i := 0; i < t.Rows(); i++ {
		first = true
		writeFloat := func(v float64) {
			if !first {
				buf.WriteString(",")
			}
			first = false
			buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		for _, c := range cols {
			if c.values != nil {
				writeFloat(c.values[i])
			}
		}
		if t.Cloud != nil {
			if !first {
				buf.WriteString(",")
			}
			first = false
			if t.Cloud[i] {
				buf.WriteString("1")
			} else {
				buf.WriteString("0")
			}
		}
		buf.WriteString("\n")
	}
}
