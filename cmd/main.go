package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"datetime-lab/datetime"
	"datetime-lab/format"
	"datetime-lab/internal"
	"datetime-lab/timezone"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run centralizes error reporting so deferred cleanup always executes
// and the entry point stays testable.
func run() error {
	nowFlag := flag.Bool("now", false, "inspect the current instant")
	parseFlag := flag.String("parse", "", "ISO-8601 date-time to inspect")
	formatFlag := flag.String("format", "", "template overriding DATETIME_FORMAT")
	specifiersFlag := flag.Bool("specifiers", false, "list registered format specifiers")
	flag.Parse()

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := internal.Validate(config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if *specifiersFlag {
		printSpecifiers()
		return nil
	}

	// 2. Resolve the working zone and the instant to inspect
	zone, err := timezone.FromString(config.Zone)
	if err != nil {
		return err
	}

	var dt datetime.DateTime
	switch {
	case *parseFlag != "":
		dt, err = datetime.Parse(*parseFlag)
		if err != nil {
			return err
		}
	case *nowFlag:
		dt = datetime.Now(zone)
	default:
		flag.Usage()
		return nil
	}

	// 3. Render through the configured template (flag wins over env)
	template := config.Format
	if *formatFlag != "" {
		template = *formatFlag
	}
	rendered, err := format.New(template).Format(dt)
	if err != nil {
		return err
	}
	log.Debug("rendered instant", "template", template, "timestamp", dt.Timestamp())

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== datetime ======"))
	fmt.Println(rendered)
	printFields(dt)
	return nil
}

func printFields(dt datetime.DateTime) {
	weekday, _ := format.New("{weekday}").Format(dt)

	table := newTable([]string{"Field", "Value"})
	table.Append([]string{"timestamp", strconv.FormatInt(dt.Timestamp(), 10)})
	table.Append([]string{"year", strconv.Itoa(dt.Year())})
	table.Append([]string{"month", strconv.Itoa(dt.Month())})
	table.Append([]string{"day", strconv.Itoa(dt.Day())})
	table.Append([]string{"weekday", weekday})
	table.Append([]string{"hour", strconv.Itoa(dt.Hour())})
	table.Append([]string{"minute", strconv.Itoa(dt.Minute())})
	table.Append([]string{"second", strconv.Itoa(dt.Second())})
	table.Append([]string{"ms", strconv.Itoa(dt.Millisecond())})
	table.Append([]string{"offset", dt.TimeZone().String()})
	table.Render()
}

func printSpecifiers() {
	table := newTable([]string{"Specifier"})
	for _, name := range format.DefaultRegistry().Names() {
		table.Append([]string{name})
	}
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
