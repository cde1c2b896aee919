package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/meigma/sarc"
)

// Configuration keys shared by flags, SARC_* environment variables and
// the config file.
const (
	keyConfig         = "config"
	keyVerbose        = "verbose"
	keyHonorByteOrder = "honor-byte-order"
	keyMaxSize        = "max-size"
	keyWorkers        = "workers"
	keyOverwrite      = "overwrite"
	keyProgress       = "progress"
)

// app carries state resolved once per invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "sarc",
		Short: "Inspect and extract SARC archives",
		Long: `sarc reads SARC archives, optionally wrapped in Yaz0 or zstd
compression, and lists or extracts the files they contain.

Every flag can also be set through a SARC_ prefixed environment variable
(SARC_WORKERS, SARC_HONOR_BYTE_ORDER, ...) or a YAML config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(newExtractCmd(a), newListCmd(a))
	return root
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringP(keyConfig, "c", "", "config file (YAML)")
	fs.BoolP(keyVerbose, "v", false, "enable debug logging")
	fs.Bool(keyHonorByteOrder, false, "read integers in the byte order the header declares")
	fs.Uint64(keyMaxSize, sarc.DefaultMaxSize, "maximum decompressed size of a wrapped archive")
}

// configure binds the parsed flags, then layers environment and config file
// values beneath them.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	a.v.SetEnvPrefix("SARC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}

// readConfig loads the file named by --config, or else
// $HOME/.config/sarc/config.yaml when it exists.
func (a *app) readConfig() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil //nolint:nilerr // no home directory means no default config
	}
	a.v.AddConfigPath(filepath.Join(home, ".config", "sarc"))
	a.v.SetConfigName("config")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// open loads an archive with the decode settings in effect.
func (a *app) open(path string) (*sarc.File, error) {
	return sarc.Open(path,
		sarc.WithLogger(a.logger),
		sarc.WithHonorByteOrder(a.v.GetBool(keyHonorByteOrder)),
		sarc.WithMaxSize(a.v.GetUint64(keyMaxSize)),
	)
}
