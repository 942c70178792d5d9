package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/IsseW/line-counter/internal/config"
	"github.com/IsseW/line-counter/internal/engine"
	engineopts "github.com/IsseW/line-counter/internal/engine/opts"
	"github.com/IsseW/line-counter/internal/output"
	"github.com/IsseW/line-counter/internal/termcolor"
	"github.com/IsseW/line-counter/internal/util"
	"github.com/IsseW/line-counter/internal/web"
	"github.com/pkg/browser"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	scanCmd(os.Args[1:])
}

// multiFlag collects repeated flag values.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("linecount", flag.ExitOnError)

	var excludes multiFlag
	var (
		dir        = fs.String("d", ".", "directory to count the lines of")
		comments   = fs.Bool("comments", false, "count comment lines too")
		empty      = fs.Bool("empty", false, "count blank lines too")
		jobs       = fs.Int("jobs", 0, "max parallel workers (0 = NumCPU)")
		maxBytes   = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0 = unlimited)")
		outFormat  = fs.String("output", "", "table|csv|md|ndjson|json")
		sortFlag   = fs.String("sort", "", "lines|files|name|ext, '-' prefix for descending")
		fields     = fs.String("fields", "", "comma list of name,ext,files,lines")
		colorFlag  = fs.String("color", "", "auto|always|never")
		configPath = fs.String("config", "", "config file (default: auto discovery)")
		noProgress = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg  = fs.Bool("progress", false, "force progress even when piped")
	)
	fs.Var(&excludes, "exclude", "extra ignore-directory name (repeatable, comma-separated)")
	fs.StringVar(dir, "dir", ".", "directory to count the lines of (alias for -d)")
	_ = fs.Parse(args)

	settings, err := resolveSettings(*dir, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	// CLI flags win over every config layer, but only when actually given.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["d"] || set["dir"] {
		settings.Dir = *dir
	}
	if set["comments"] {
		settings.Comments = *comments
	}
	if set["empty"] {
		settings.Empty = *empty
	}
	if set["exclude"] {
		settings.Excludes = engineopts.SplitMulti(excludes)
	}
	if set["jobs"] {
		settings.Jobs = *jobs
	}
	if set["max-file-bytes"] {
		settings.MaxFileBytes = *maxBytes
	}
	if set["output"] {
		settings.Output = *outFormat
	}
	if set["sort"] {
		settings.Sort = *sortFlag
	}
	if set["fields"] {
		settings.Fields = *fields
	}
	if set["color"] {
		settings.Color = *colorFlag
	}

	opts := engineopts.Defaults(settings.Dir)
	settings.ApplyToOptions(&opts)
	if opts.Jobs == 0 {
		opts.Jobs = engineopts.Defaults(settings.Dir).Jobs
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		log.Fatal(err)
	}
	opts.Progress = util.ShouldShowProgress(*forceProg, *noProgress)

	format, err := engineopts.NormalizeOutput(settings.Output)
	if err != nil {
		log.Fatal(err)
	}
	sel, err := output.ParseFields(settings.Fields)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := parseSortSpec(settings.Sort)
	if err != nil {
		log.Fatal(err)
	}
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		log.Fatal(err)
	}
	if mode == termcolor.ModeAuto {
		mode = termcolor.DetectMode(os.Stdout, termcolor.EnvMap(os.Environ()))
	}

	res, err := engine.Run(opts)
	if err != nil {
		log.Fatal(err)
	}
	applySort(res.Stats, spec)

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatal(err)
		}
	case "csv":
		if err := output.WriteCSV(os.Stdout, res.Stats, sel); err != nil {
			log.Fatal(err)
		}
	case "md":
		if err := output.WriteMarkdownTable(os.Stdout, res.Stats, sel); err != nil {
			log.Fatal(err)
		}
	case "ndjson":
		if err := output.WriteNDJSON(os.Stdout, res.Stats); err != nil {
			log.Fatal(err)
		}
	default: // table
		style := termcolor.NewStyler(termcolor.Enabled(mode, os.Stdout))
		if err := output.WriteTable(os.Stdout, res, sel, style); err != nil {
			log.Fatal(err)
		}
	}
}

// resolveSettings layers defaults, the discovered config file and the
// environment (lowest to highest); CLI flags are applied by the caller.
func resolveSettings(dir, explicitConfig string) (config.Settings, error) {
	base := config.SettingsFromOptions(engineopts.Defaults(dir))

	explicit := explicitConfig
	if explicit == "" {
		explicit = os.Getenv("LINECOUNT_CONFIG")
	}
	path, _, err := config.Find(dir, explicit, os.Getenv("XDG_CONFIG_HOME"), os.Getenv("HOME"))
	if err != nil {
		return base, err
	}
	var layers []config.Config
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return base, err
		}
		layers = append(layers, fileCfg)
	}
	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return base, err
	}
	layers = append(layers, envCfg)

	return config.Merge(base, layers...), nil
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port     = fs.Int("p", 8080, "port")
		dir      = fs.String("d", ".", "directory to serve counts for")
		openFlag = fs.Bool("open", false, "open the UI in the default browser")
	)
	_ = fs.Parse(args)

	mux := http.NewServeMux()
	web.Register(mux)
	mux.HandleFunc("/api/count", countHandler(*dir))

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("linecount serve listening on %s (dir=%s)", addr, mustAbs(*dir))
	if *openFlag {
		url := fmt.Sprintf("http://localhost:%d/", *port)
		if err := browser.OpenURL(url); err != nil {
			log.Printf("open browser: %v", err)
		}
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

// countHandler runs a count per request. The walk root is fixed at startup;
// query parameters only tune counting behavior.
func countHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := engineopts.ApplyWebQueryToOptions(engineopts.Defaults(dir), r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := engineopts.NormalizeAndValidate(&opts); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
