package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	// CfgFile is the tool settings file given on the command line.
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

// SettingsFile is the tool settings file name inside the user directory.
const SettingsFile = "odacfg.yaml"

// EnvPrefix prefixes every environment override, e.g. ODACFG_CONFIG.
const EnvPrefix = "ODACFG"

// InitConfig sets up viper: defaults, environment, then the settings file.
// A missing default settings file is created; a missing explicit one is an
// error.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildOdamexDirPath())
		viper.SetConfigName(strings.TrimSuffix(SettingsFile, filepath.Ext(SettingsFile)))
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return handleConfigFile()
}

func setDefaults() {
	d := Defaults()
	viper.SetDefault("config", d.Config)
	viper.SetDefault("user_dir", d.UserDir)
	viper.SetDefault("naming.template", d.Naming.Template)
	viper.SetDefault("naming.extension", d.Naming.Extension)
	viper.SetDefault("naming.dir", d.Naming.Dir)
	viper.SetDefault("naming.state_file", d.Naming.StateFile)
}

// CurrentSettings reads the settings from viper.
func CurrentSettings() Settings {
	return Settings{
		Config:  viper.GetString("config"),
		UserDir: viper.GetString("user_dir"),
		Naming: NamingSettings{
			Template:  viper.GetString("naming.template"),
			Extension: viper.GetString("naming.extension"),
			Dir:       viper.GetString("naming.dir"),
			StateFile: viper.GetString("naming.state_file"),
		},
	}
}

func createDefaultSettings(dir string) error {
	file := filepath.Join(dir, SettingsFile)
	if err := ensureDir(dir); err != nil {
		return oops.Wrapf(err, "could not create settings directory %s", dir)
	}
	if err := viper.SafeWriteConfigAs(file); err != nil {
		return oops.Wrapf(err, "could not write default settings file %s", file)
	}
	log.WithField("path", file).Debug("Created default settings")
	return nil
}

func handleConfigFile() error {
	err := viper.ReadInConfig()
	if err == nil {
		log.WithField("path", viper.ConfigFileUsed()).Debug("Using settings file")
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		if CfgFile != "" && !fileExists(CfgFile) {
			return oops.Wrapf(err, "settings file %s is not found", CfgFile)
		}
		return oops.Wrapf(err, "error reading settings file")
	}
	return createDefaultSettings(BuildOdamexDirPath())
}
