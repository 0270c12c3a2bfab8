// Command projconv transforms whitespace-separated points between two
// proj.4 definitions, or solves geodesic problems on the source
// system's ellipsoid.
//
// Usage:
//
//	projconv -from '+proj=latlong +datum=WGS84' -to '+proj=utm +zone=18 +datum=WGS84' < points.txt
//	projconv -from '+proj=latlong +datum=WGS84' -geod direct < lon-lat-azi-dist.txt
//	projconv -from '+proj=latlong +datum=WGS84' -geod inverse < lon1-lat1-lon2-lat2.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/geoops/projgeo"
)

func main() {
	var (
		from    = flag.String("from", "", "source proj.4 definition")
		to      = flag.String("to", "", "destination proj.4 definition")
		geod    = flag.String("geod", "", "solve a geodesic problem instead: direct or inverse")
		radians = flag.Bool("radians", false, "angular values are radians instead of degrees")
		version = flag.Bool("version", false, "print the native library release and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(projgeo.Version())
		return
	}
	if *from == "" {
		log.Fatal("projconv: -from is required")
	}

	src, err := projgeo.NewCoordSys(*from)
	if err != nil {
		log.Fatalf("projconv: %v", err)
	}
	defer src.Close()

	switch *geod {
	case "":
		if *to == "" {
			log.Fatal("projconv: -to is required unless -geod is given")
		}
		dst, err := projgeo.NewCoordSys(*to)
		if err != nil {
			log.Fatalf("projconv: %v", err)
		}
		defer dst.Close()
		eachLine(func(vals []float64) error {
			out, err := projgeo.TransformPoint(src, dst, vals, *radians)
			if err != nil {
				return err
			}
			printVals(out)
			return nil
		})
	case "direct":
		eachLine(func(vals []float64) error {
			if len(vals) != 4 {
				return fmt.Errorf("direct needs 4 values (lon lat azimuth distance), got %d", len(vals))
			}
			dest, azi2, err := projgeo.GeodDirect(src, vals[:2], vals[2], vals[3])
			if err != nil {
				return err
			}
			printVals(append(dest, azi2))
			return nil
		})
	case "inverse":
		eachLine(func(vals []float64) error {
			if len(vals) != 4 {
				return fmt.Errorf("inverse needs 4 values (lon1 lat1 lon2 lat2), got %d", len(vals))
			}
			dist, azi1, azi2, err := projgeo.GeodInverse(src, vals[:2], vals[2:])
			if err != nil {
				return err
			}
			printVals([]float64{dist, azi1, azi2})
			return nil
		})
	default:
		log.Fatalf("projconv: unknown -geod mode %q", *geod)
	}
}

// eachLine parses whitespace-separated floats from every stdin line
// and hands them to fn. Blank lines and #-comments are skipped.
func eachLine(fn func([]float64) error) {
	sc := bufio.NewScanner(os.Stdin)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				log.Fatalf("projconv: line %d: %v", line, err)
			}
			vals[i] = v
		}
		if err := fn(vals); err != nil {
			log.Fatalf("projconv: line %d: %v", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("projconv: %v", err)
	}
}

func printVals(vals []float64) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	fmt.Println(strings.Join(parts, " "))
}
