package main

import (
	"errors"
	"expvar"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/codercollo/linqyard/backend/internal/jsonlog"
	"github.com/codercollo/linqyard/backend/internal/static"
	"github.com/joho/godotenv"
)

// Application version
const version = "1.0.0"

// Configuration settings for the server
type config struct {
	port      int
	env       string
	staticDir string
	logLevel  string
	health    struct {
		echo    bool
		echoVar string
	}
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
	cors struct {
		trustedOrigins []string
		trustedHosts   []string
	}
	metrics bool
}

// Application dependencies
type application struct {
	config config
	logger  *jsonlog.Logger
	static  *static.Dir
	limiter *clientLimiter
}

func main() {
	//Pick up a local .env before flag defaults read the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, displayVersion, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	level, _ := jsonlog.ParseLevel(cfg.logLevel)
	logger := jsonlog.New(os.Stdout, level)

	//Resolve the static directory once for the process lifetime
	dir, err := static.Resolve(cfg.staticDir)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	if !dir.Exists() {
		logger.PrintInfo("static directory not found, serving fallback index", map[string]string{
			"dir": dir.Root(),
		})
	}

	if cfg.metrics {
		publishMetrics()
	}

	app := &application{
		config: cfg,
		logger: logger,
		static: dir,
	}

	//Start the server
	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// parseConfig reads command-line flags into a config, falling back to
// environment variables for the defaults, and validates the result
func parseConfig(flags *flag.FlagSet, args []string) (config, bool, error) {
	var cfg config

	flags.IntVar(&cfg.port, "port", envInt("PORT", 4000), "API server port")
	flags.StringVar(&cfg.env, "env", envString("APP_ENV", "development"), "Environment (development|staging|production)")
	flags.StringVar(&cfg.staticDir, "static-dir", os.Getenv("STATIC_DIR"), "Static files directory (default: ./static beside the executable)")
	flags.StringVar(&cfg.logLevel, "log-level", envString("LOG_LEVEL", "info"), "Minimum log level (info|error|fatal|off)")

	flags.BoolVar(&cfg.health.echo, "health-echo", true, "Echo an environment variable in the health response")
	flags.StringVar(&cfg.health.echoVar, "health-echo-var", "TEST", "Environment variable echoed by the health response")

	flags.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flags.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flags.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	flags.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})
	flags.Func("cors-trusted-hosts", "Trusted CORS hosts, subdomains included (space separated)", func(val string) error {
		cfg.cors.trustedHosts = strings.Fields(val)
		return nil
	})

	flags.BoolVar(&cfg.metrics, "metrics", true, "Expose expvar metrics at /debug/vars")

	displayVersion := flags.Bool("version", false, "Display version and exit")

	if err := flags.Parse(args); err != nil {
		return cfg, false, err
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, false, err
	}

	return cfg, *displayVersion, nil
}

// publishMetrics registers the process-level expvar values
func publishMetrics() {
	expvar.NewString("version").Set(version)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))
}
