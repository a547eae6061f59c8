package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/rpn"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate rpnc configuration with an application-key of 'RPN' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "RPN", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf("%v", err)
		rpn.Exit(2)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf("%v", err)
		rpn.Exit(2)
	}
	rpn.Configuration = k // push the configuration to app-global scope
}

// mergeFlags loads the command line flags into the configuration. Flags not set
// by the user will only provide a value if the key is not present from config files.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") {
			if dir := locateLogDir(); dir != "" {
				dest = "file://" + filepath.Join(dir, dest)
				konf.Set("tracing.destination", dest)
			}
		}
		tracing.Infof("trace output goes to %q", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("rpnc %s", version)
	return nil
}

func locateLogDir() string {
	paths, err := DefaultAppPaths("RPN")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
		return ""
	}
	return paths.LogDir()
}

// --- Settings --------------------------------------------------------------

// settings are the configuration values an evaluation session depends on.
type settings struct {
	capacity int
	verbose  bool
	locale   string
}

func settingsFrom(k *koanf.Koanf) settings {
	s := settings{locale: "en"}
	if k == nil {
		return s
	}
	s.capacity = k.Int("capacity")
	s.verbose = k.Bool("verbose")
	if l := k.String("locale"); l != "" {
		s.locale = l
	}
	return s
}
