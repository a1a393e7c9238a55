package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/go-spatial/geom"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/cpu"

	"github.com/pdok/bitlib/morton"
	"github.com/pdok/bitlib/ops"
	"github.com/pdok/bitlib/processing"
	"github.com/pdok/bitlib/zindex"
)

const OP string = `op`
const WIDTH string = `width`
const VARIANT string = `variant`
const STRICT string = `strict`
const DECIMAL string = `decimal`
const INPUT string = `input`
const OUTPUT string = `output`
const EXTENT string = `extent`
const LEVEL string = `level`
const DEEPESTLEVEL string = `deepestLevel`
const WKT string = `wkt`

const stdio = "-"

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "bitlib"
	app.Usage = "Bit counting, bit interleaving and Morton codes"
	app.Version = versioninfo.Short()

	widthFlag := &cli.UintFlag{
		Name:    WIDTH,
		Aliases: []string{"w"},
		Usage:   "Operand width in bits: 8, 16, 32 or 64",
		Value:   64,
		EnvVars: []string{strcase.ToScreamingSnake(WIDTH)},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "eval",
			Usage:     "Evaluate one operation",
			ArgsUsage: "OPERAND...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     OP,
					Aliases:  []string{"o"},
					Usage:    "Operation, see the ops command. E.g.: morton",
					Required: true,
					EnvVars:  []string{strcase.ToScreamingSnake(OP)},
				},
				widthFlag,
				&cli.StringFlag{
					Name:    VARIANT,
					Usage:   "Algorithm variant: default, mul, iter or nwe",
					Value:   ops.VariantDefault,
					EnvVars: []string{strcase.ToScreamingSnake(VARIANT)},
				},
				&cli.BoolFlag{
					Name:    STRICT,
					Usage:   "Reject operands outside the domain of the operation",
					EnvVars: []string{strcase.ToScreamingSnake(STRICT)},
				},
				&cli.BoolFlag{
					Name:    DECIMAL,
					Aliases: []string{"d"},
					Usage:   "Print results in decimal instead of hexadecimal",
					EnvVars: []string{strcase.ToScreamingSnake(DECIMAL)},
				},
			},
			Action: evalAction,
		},
		{
			Name:  "batch",
			Usage: "Evaluate JSON lines requests, e.g. {\"op\":\"morton\",\"width\":32,\"x\":3,\"y\":5}",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    INPUT,
					Aliases: []string{"i"},
					Usage:   "File with one JSON request per line, - for stdin",
					Value:   stdio,
					EnvVars: []string{strcase.ToScreamingSnake(INPUT)},
				},
				&cli.StringFlag{
					Name:    OUTPUT,
					Aliases: []string{"t"},
					Usage:   "File to write one JSON result per line to, - for stdout",
					Value:   stdio,
					EnvVars: []string{strcase.ToScreamingSnake(OUTPUT)},
				},
			},
			Action: batchAction,
		},
		{
			Name:   "ops",
			Usage:  "List the operations",
			Action: opsAction,
		},
		{
			Name:   "info",
			Usage:  "Show the CPU features relevant to bit manipulation",
			Action: infoAction,
		},
		{
			Name:      "neighbors",
			Usage:     "Show the grid cell of a point and its neighbors",
			ArgsUsage: "X Y",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     EXTENT,
					Aliases:  []string{"e"},
					Usage:    `Square grid extent as JSON array [minx,miny,maxx,maxy]. E.g.: [0,0,1024,1024]`,
					Required: true,
					EnvVars:  []string{strcase.ToScreamingSnake(EXTENT)},
				},
				&cli.UintFlag{
					Name:    DEEPESTLEVEL,
					Usage:   "Deepest level of the grid",
					Value:   16,
					EnvVars: []string{strcase.ToScreamingSnake(DEEPESTLEVEL)},
				},
				&cli.UintFlag{
					Name:    LEVEL,
					Aliases: []string{"l"},
					Usage:   "Level to show the cells of, defaults to the deepest level",
					EnvVars: []string{strcase.ToScreamingSnake(LEVEL)},
				},
				&cli.BoolFlag{
					Name:    WKT,
					Usage:   "Also print the cells holding the point as WKT",
					EnvVars: []string{strcase.ToScreamingSnake(WKT)},
				},
			},
			Action: neighborsAction,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func evalAction(c *cli.Context) error {
	args := make([]uint64, c.NArg())
	for i, arg := range c.Args().Slice() {
		operand, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("operand %d: %w", i, err)
		}
		args[i] = operand
	}
	result, err := ops.Evaluate(ops.Request{
		Op:      c.String(OP),
		Width:   c.Uint(WIDTH),
		Variant: c.String(VARIANT),
		Args:    args,
		Strict:  c.Bool(STRICT),
	})
	if err != nil {
		return err
	}
	formatted := make([]string, len(result.Values))
	for i, v := range result.Values {
		if c.Bool(DECIMAL) {
			formatted[i] = strconv.FormatUint(v, 10)
		} else {
			formatted[i] = fmt.Sprintf("%#x", v)
		}
	}
	fmt.Fprintln(c.App.Writer, strings.Join(formatted, " "))
	return nil
}

func batchAction(c *cli.Context) error {
	var reader io.Reader = os.Stdin
	if input := c.String(INPUT); input != stdio {
		_, err := os.Stat(input)
		if os.IsNotExist(err) {
			log.Fatalf("error opening input: %s", err)
		}
		file, err := os.Open(input)
		if err != nil {
			return err
		}
		defer file.Close()
		reader = file
	}
	var writer io.Writer = c.App.Writer
	if output := c.String(OUTPUT); output != stdio {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	log.Println("=== start batch ===")
	jsonLines := &processing.JSONLines{Reader: reader, Writer: writer}
	processing.ProcessRequests(jsonLines, jsonLines, ops.Evaluate)
	if jsonLines.Malformed > 0 {
		log.Printf("   malformed lines: %d", jsonLines.Malformed)
	}
	log.Println("=== done batch ===")
	return jsonLines.Err()
}

func opsAction(c *cli.Context) error {
	for _, name := range ops.Names() {
		arity, usage, variants, _ := ops.Describe(name)
		fmt.Fprintf(c.App.Writer, "%-11s %d  %-22s %s\n", name, arity, strings.Join(variants, ","), usage)
	}
	return nil
}

func infoAction(c *cli.Context) error {
	w := c.App.Writer
	fmt.Fprintf(w, "arch: %s\n", runtime.GOARCH)
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(w, "popcnt: %v\n", cpu.X86.HasPOPCNT)
		fmt.Fprintf(w, "bmi2 (pdep/pext): %v\n", cpu.X86.HasBMI2)
	case "arm64":
		fmt.Fprintf(w, "asimd (cnt): %v\n", cpu.ARM64.HasASIMD)
	}
	fmt.Fprintln(w, "bitlib uses portable SWAR code, these features are not required")
	return nil
}

func neighborsAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected X and Y, got %d arguments", c.NArg())
	}
	x, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return err
	}
	var extent geom.Extent
	if err = json.Unmarshal([]byte(c.String(EXTENT)), &extent); err != nil {
		return fmt.Errorf("invalid extent: %w", err)
	}
	grid, err := zindex.New(extent, c.Uint(DEEPESTLEVEL))
	if err != nil {
		return err
	}
	level := grid.DeepestLevel()
	if c.IsSet(LEVEL) {
		level = c.Uint(LEVEL)
	}
	point := geom.Point{x, y}
	z, err := grid.Locate(level, point)
	if err != nil {
		return err
	}
	w := c.App.Writer
	printCell(w, "cell", z)
	for _, n := range grid.Neighbors(level, z) {
		printCell(w, "neighbor", n)
	}
	if c.Bool(WKT) {
		if err = grid.InsertPoint(point); err != nil {
			return err
		}
		return grid.ToWkt(w)
	}
	return nil
}

func printCell(w io.Writer, label string, z morton.Z) {
	col, row := morton.FromZ(z)
	fmt.Fprintf(w, "%-8s %#x (col %d, row %d)\n", label, z, col, row)
}
