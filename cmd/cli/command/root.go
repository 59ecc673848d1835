package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"movie-review/internal/client"
	"movie-review/pkg/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// config holds the CLI settings; flags win over REVIEWFILMS_* variables.
var config = viper.New()

var rootCmd = &cobra.Command{
	Use:   "reviewfilms",
	Short: "reviewfilms - browse and review movies",
	Long: `reviewfilms talks to the movie-review API. Use "reviewfilms browse" for the
interactive browser, or the movie and review commands for one-shot calls.

Settings can also come from REVIEWFILMS_API, REVIEWFILMS_TIMEOUT and REVIEWFILMS_DEBUG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("api", "http://localhost:3000", "API server URL")
	flags.Duration("timeout", 10*time.Second, "per-request timeout")
	flags.Bool("debug", false, "log debug output to stderr")

	config.SetEnvPrefix("REVIEWFILMS")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	for _, name := range []string{"api", "timeout", "debug"} {
		if err := config.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(browseCmd, movieCmd, reviewCmd)
}

func newAPI() client.API {
	return client.NewHTTPClient(config.GetString("api"), config.GetDuration("timeout"))
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	return utils.NewConsoleLogger(cmd.ErrOrStderr(), config.GetBool("debug"))
}
