package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/litestore-project/litestore/cmd/litestore/color"
	"github.com/litestore-project/litestore/cmd/litestore/config"
	"github.com/litestore-project/litestore/cmd/litestore/eout"
	"github.com/litestore-project/litestore/cmd/litestore/log"
	"github.com/litestore-project/litestore/cmd/litestore/option"
	"github.com/litestore-project/litestore/cmd/litestore/sqlx"
	"github.com/litestore-project/litestore/cmd/litestore/store"
)

var program = "litestore"

// litestoreVersion is set at build time via -ldflags.
var litestoreVersion = "0.1.0"

var logDebug bool
var logTrace bool

func main() {
	eout.Init(program)
	var err error
	if err = run(); err != nil {
		eout.Error("%s", err)
		os.Exit(1)
	}
}

func run() error {
	var globalOpt = option.Global{}
	var loadOpt = option.Load{}
	var exportOpt = option.Export{}
	var describeOpt = option.Describe{}
	var keysOpt = option.Keys{}

	var cmdLoad = &cobra.Command{
		Use:   "load",
		Short: "Create a table from a JSON array of records",
		RunE: func(cmd *cobra.Command, args []string) error {
			loadOpt.Global = globalOpt
			return runLoad(&loadOpt)
		},
	}
	databaseFlag(cmdLoad, &globalOpt.Database)
	configFlag(cmdLoad, &globalOpt.ConfigFile)
	tableFlag(cmdLoad, &loadOpt.Table)
	cmdLoad.Flags().StringVarP(&loadOpt.Filename, "file", "f", "", "JSON input file")
	cmdLoad.Flags().StringArrayVarP(&loadOpt.Keys, "key", "k", nil, "primary key column (repeatable, composite keys in order)")
	cmdLoad.Flags().BoolVar(&loadOpt.TextNative, "text-native", false, "store strings in TEXT columns instead of the codec")
	verboseFlags(cmdLoad)

	var cmdExport = &cobra.Command{
		Use:   "export",
		Short: "Read a table and write its records as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			exportOpt.Global = globalOpt
			return runExport(&exportOpt)
		},
	}
	databaseFlag(cmdExport, &globalOpt.Database)
	configFlag(cmdExport, &globalOpt.ConfigFile)
	tableFlag(cmdExport, &exportOpt.Table)
	cmdExport.Flags().StringVarP(&exportOpt.Filename, "file", "f", "", "output file (default standard output)")
	verboseFlags(cmdExport)

	var cmdDescribe = &cobra.Command{
		Use:   "describe",
		Short: "Print a table's column descriptors",
		RunE: func(cmd *cobra.Command, args []string) error {
			describeOpt.Global = globalOpt
			return runDescribe(&describeOpt)
		},
	}
	databaseFlag(cmdDescribe, &globalOpt.Database)
	configFlag(cmdDescribe, &globalOpt.ConfigFile)
	tableFlag(cmdDescribe, &describeOpt.Table)
	verboseFlags(cmdDescribe)

	var cmdKeys = &cobra.Command{
		Use:   "keys",
		Short: "Print a table's primary key columns in rank order",
		RunE: func(cmd *cobra.Command, args []string) error {
			keysOpt.Global = globalOpt
			return runKeys(&keysOpt)
		},
	}
	databaseFlag(cmdKeys, &globalOpt.Database)
	configFlag(cmdKeys, &globalOpt.ConfigFile)
	tableFlag(cmdKeys, &keysOpt.Table)
	verboseFlags(cmdKeys)

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s version %s\n", program, litestoreVersion)
			return nil
		},
	}

	var rootCmd = &cobra.Command{
		Use:           program,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(cmdLoad, cmdExport, cmdDescribe, cmdKeys, cmdVersion)
	return rootCmd.Execute()
}

func openStore(opt *option.Global) (*sqlx.DB, *store.Store, error) {
	cfg, err := config.Read(opt.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	if err := color.Init(cfg.Color); err != nil {
		return nil, nil, err
	}
	log.Init(os.Stderr, logDebug, logTrace)
	database := opt.Database
	if database == "" {
		database = cfg.Database
	}
	if database == "" {
		return nil, nil, fmt.Errorf("no database file specified")
	}
	db, err := sqlx.Open(database, cfg.BusyTimeoutMS)
	if err != nil {
		return nil, nil, err
	}
	return db, store.New(db, store.Options{TextNative: cfg.TextNative}), nil
}

func runLoad(opt *option.Load) error {
	if opt.Filename == "" {
		return fmt.Errorf("no input file specified")
	}
	db, st, err := openStore(&opt.Global)
	if err != nil {
		return err
	}
	defer db.Close()
	if opt.TextNative {
		st = store.New(db, store.Options{TextNative: true})
	}
	records, err := readRecords(opt.Filename)
	if err != nil {
		return err
	}
	loadID := uuid.New()
	log.Info("load %s: creating table %s from %s (%d records)", loadID, opt.Table, opt.Filename, len(records))
	if _, err := st.CreateTable(opt.Table, records, opt.Keys); err != nil {
		return err
	}
	log.Info("load %s: done", loadID)
	return nil
}

func runExport(opt *option.Export) error {
	db, st, err := openStore(&opt.Global)
	if err != nil {
		return err
	}
	defer db.Close()
	records, err := st.ReadAll(opt.Table)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding records: %v", err)
	}
	b = append(b, '\n')
	if opt.Filename == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(opt.Filename, b, 0644)
}

func runDescribe(opt *option.Describe) error {
	db, st, err := openStore(&opt.Global)
	if err != nil {
		return err
	}
	defer db.Close()
	ts, err := st.Describe(opt.Table)
	if err != nil {
		return err
	}
	for _, c := range ts.Columns {
		notnull := ""
		if c.NotNull {
			notnull = "NOT NULL"
		}
		pk := ""
		if c.PrimaryKey > 0 {
			pk = fmt.Sprintf("PK %d", c.PrimaryKey)
		}
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", c.Index, c.Name, c.Type, notnull, pk)
	}
	return nil
}

func runKeys(opt *option.Keys) error {
	db, st, err := openStore(&opt.Global)
	if err != nil {
		return err
	}
	defer db.Close()
	keys, err := st.PrimaryKeys(opt.Table)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

// readRecords reads a JSON array of objects.  Numbers decode as int64 when
// integral so that integer columns are inferred for integer data.
func readRecords(filename string) ([]store.Record, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var items []map[string]interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("parsing input file: %s: %v", filename, err)
	}
	records := make([]store.Record, len(items))
	for i, item := range items {
		rec := make(store.Record, len(item))
		for name, value := range item {
			rec[name] = normalizeNumber(value)
		}
		records[i] = rec
	}
	return records, nil
}

func normalizeNumber(value interface{}) interface{} {
	n, ok := value.(json.Number)
	if !ok {
		return value
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func databaseFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, "db", "d", "", "database file")
}

func tableFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, "table", "t", "", "table name")
	_ = cmd.MarkFlagRequired("table")
}

func configFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVarP(v, "config", "c", "", "configuration file")
}

func verboseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&logDebug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&logTrace, "trace", false, "enable trace logging")
}
