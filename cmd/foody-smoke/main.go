/*
Copyright 2026 the Foody API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foodyexprep/foody-api-tests/test/api"
	"github.com/foodyexprep/foody-api-tests/test/api/foodytest"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// options are the flags that do not map onto test configuration.
type options struct {
	envFile    string
	logLevel   string
	stubServer bool
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.envFile, "env-file", "", "Environment file to load before reading configuration.")
	f.StringVar(&o.logLevel, "log-level", "info", "Log level, one of debug, info, warn or error.")
	f.BoolVar(&o.stubServer, "stub-server", false, "Run against an in-memory service instead of a deployment.")
}

// configFlag maps a flag onto the environment variable it overrides.
type configFlag struct {
	name  string
	key   string
	usage string
}

//nolint:gochecknoglobals
var configFlags = []configFlag{
	{"base-url", "API_BASE_URL", "Base URL of the service."},
	{"username", "API_USERNAME", "User to authenticate as."},
	{"password", "API_PASSWORD", "Password to authenticate with."},
	{"missing-food-id", "TEST_MISSING_FOOD_ID", "Identifier assumed not to exist."},
	{"timeout", "REQUEST_TIMEOUT", "Per request timeout."},
	{"validate-contract", "VALIDATE_CONTRACT", "Validate responses against the OpenAPI document."},
	{"log-requests", "LOG_REQUESTS", "Log every request."},
	{"log-responses", "LOG_RESPONSES", "Log every response body."},
}

// bindConfigFlags registers string flags for every configuration key and
// binds them into viper.  Unset flags are empty so environment variables
// and then the built in defaults apply.
func bindConfigFlags(f *pflag.FlagSet, v *viper.Viper) error {
	for _, flag := range configFlags {
		f.String(flag.name, "", flag.usage+" Overrides "+flag.key+".")

		if err := v.BindPFlag(flag.key, f.Lookup(flag.name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag.name, err)
		}
	}

	v.AutomaticEnv()

	return nil
}

func newLogger(level string, w io.Writer) (logr.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("parsing log level: %w", err)
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zapr.NewLogger(zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), atomicLevel))), nil
}

// report prints one row per case, then the reason for every failure.
func report(w io.Writer, r *api.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, result := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", result.Outcome, result.Name, result.Duration)
	}

	_ = tw.Flush()

	for _, result := range r.Results {
		if result.Outcome != api.OutcomeFailed {
			continue
		}

		fmt.Fprintf(w, "\n--- %s\n", result.Name)

		for _, line := range strings.Split(strings.TrimRight(result.Reason, "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	fmt.Fprintf(w, "%d passed, %d failed, %d skipped\n", r.Count(api.OutcomePassed), r.Count(api.OutcomeFailed), r.Count(api.OutcomeSkipped))
}

//nolint:cyclop
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("foody-smoke", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var o options

	o.AddFlags(flags)

	v := viper.New()

	if err := bindConfigFlags(flags, v); err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}

		return exitConfig
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			fmt.Fprintf(stderr, "loading %s: %v\n", o.envFile, err)
			return exitConfig
		}
	}

	log, err := newLogger(o.logLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	config, err := api.NewTestConfig(v.GetString)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	if o.stubServer {
		server := foodytest.NewServer(config.Username, config.Password)
		defer server.Close()

		config.BaseURL = server.URL
	}

	log.Info("running food revue cases", "baseURL", config.BaseURL)

	client, err := api.NewAuthenticatedClient(ctx, config, api.WithLogger(log))
	if err != nil {
		log.Error(err, "authentication failed")
		return exitFailed
	}

	session := api.NewFoodSession(api.NewFoodFixture(config))

	result := api.RunCases(ctx, client, session, api.FoodCases(), log)

	report(stdout, result)

	if !result.Passed() {
		return exitFailed
	}

	return exitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
