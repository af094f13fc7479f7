package config

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorhill/cronexpr"
)

type configuration struct {
	global  *GlobalConfiguration
	http    *HttpConfiguration
	serve   *ServeConfiguration
	listers *ListersConfiguration
}

var (
	instance                *configuration
	once                    sync.Once
	configSearchDirectories []string
	explicitConfigFile      string
)

const (
	CfgFileName = "config.yaml"
	PathLocal   = "."
	PathGlobal  = "/etc/rclone-diff"
)

func init() {
	configSearchDirectories = append(configSearchDirectories, PathLocal)

	userHome, err := os.UserHomeDir()

	if err == nil {
		userHome = fmt.Sprintf("%s%c%s", userHome, os.PathSeparator, ".rclone-diff")
		configSearchDirectories = append(configSearchDirectories, userHome)
	}

	configSearchDirectories = append(configSearchDirectories, PathGlobal)
}

// SetFile pins the configuration to an explicit file instead of the
// search directories. Has to be called before the first GetInstance.
func SetFile(path string) {
	explicitConfigFile = path
}

func GetInstance() *configuration {
	once.Do(func() {
		instance = initConfig()
	})
	return instance
}

func (c *configuration) Global() *GlobalConfiguration {
	return c.global
}

func (c *configuration) Http() *HttpConfiguration {
	return c.http
}

func (c *configuration) Serve() *ServeConfiguration {
	return c.serve
}

func (c *configuration) Listers() *ListersConfiguration {
	return c.listers
}

func initConfig() *configuration {
	file := findConfigFile()

	if file == nil {
		log.Debug("No configuration file found, continuing with defaults")
		return NewConfigurationInstance(Raw{})
	}

	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		log.Fatalf("Failed to parse configuration file: %s", err)
	}

	return NewConfigurationInstance(cfg)
}

func findConfigFile() *os.File {
	if explicitConfigFile != "" {
		file, err := os.Open(explicitConfigFile)
		if err != nil {
			log.Fatalf("Could not open configuration file %s: %s", explicitConfigFile, err)
		}
		return file
	}

	for _, directory := range configSearchDirectories {
		var possibleConfigPath = filepath.Join(directory, CfgFileName)
		log.Debugf("Checking for configuration file at %s", possibleConfigPath)

		file, err := os.Open(possibleConfigPath)

		if err == nil {
			log.Infof("Found configuration file at location %s", possibleConfigPath)
			return file
		}
	}

	return nil
}

// NewConfigurationInstance builds a configuration from already parsed YAML.
func NewConfigurationInstance(cfg Raw) *configuration {
	return &configuration{
		global:  parseGlobal(cfg),
		http:    parseHttp(cfg.Sub("http")),
		serve:   parseServe(cfg.Sub("serve")),
		listers: parseListers(cfg.Sub("listers")),
	}
}

func parseGlobal(cfg Raw) *GlobalConfiguration {
	logLevel := log.InfoLevel
	if cfg.Has("log_level") {
		parsedLevel, err := log.ParseLevel(cfg.String("log_level"))
		if err == nil {
			logLevel = parsedLevel
		} else {
			log.Warnf("Cannot parse log level, defaulting to 'info': %s", err)
		}
	}

	rcloneBinary := "rclone"
	if cfg.Has("rclone_binary") {
		rcloneBinary = cfg.String("rclone_binary")
	}

	fastList := true
	if cfg.Has("fast_list") {
		fastList = cfg.Bool("fast_list")
	}

	excludes := []string{"/System Volume Information/**"}
	if cfg.Has("excludes") {
		excludes = cfg.StringSlice("excludes")
	}

	return &GlobalConfiguration{
		logLevel:       logLevel,
		rcloneBinary:   rcloneBinary,
		rcloneConfig:   cfg.String("rclone_config"),
		fastList:       fastList,
		excludes:       excludes,
		warnDeltaBytes: cfg.Bytes("warn_delta_bytes"),
	}
}

func parseHttp(cfg Raw) *HttpConfiguration {
	port := 8080
	if cfg.Has("port") {
		port = int(cfg.Int64("port"))
	}

	var basicAuth *BasicAuthConfiguration
	if auth := cfg.Sub("basic_auth"); auth != nil {
		username := auth.String("username")
		password := auth.String("password")

		if username == "" || password == "" {
			log.Warn("Basic auth requires both username and password, disabling it")
		} else {
			basicAuth = &BasicAuthConfiguration{Username: username, Password: password}
		}
	}

	var tls *TlsConfiguration
	if tlsCfg := cfg.Sub("tls"); tlsCfg != nil {
		strict := true
		if tlsCfg.Has("strict") {
			strict = tlsCfg.Bool("strict")
		}

		tls = &TlsConfiguration{
			CertificatePath: tlsCfg.String("certificate"),
			PrivateKeyPath:  tlsCfg.String("private_key"),
			IsStrict:        strict,
		}
	}

	return &HttpConfiguration{Port: port, BasicAuth: basicAuth, Tls: tls}
}

func parseServe(cfg Raw) *ServeConfiguration {
	updateInterval := time.Hour
	if cfg.Has("update_interval") {
		updateInterval = cfg.Duration("update_interval")
	}

	if updateInterval < time.Minute {
		log.Warn("Update interval must not be less than 1 minute, defaulting to 1 hour.")
		updateInterval = time.Hour
	}

	var schedule *cronexpr.Expression
	if cfg.Has("schedule") {
		parsed, err := cronexpr.Parse(cfg.String("schedule"))
		if err != nil {
			log.Warnf("Cannot parse schedule expression, falling back to update interval: %s", err)
		} else {
			schedule = parsed
		}
	}

	return &ServeConfiguration{
		updateInterval: updateInterval,
		schedule:       schedule,
		source:         cfg.String("source"),
		destination:    cfg.String("destination"),
	}
}

func parseListers(cfg Raw) *ListersConfiguration {
	localWalker := true
	if cfg.Has("local_walker") {
		localWalker = cfg.Bool("local_walker")
	}

	s3 := make(map[string]*S3ListerConfiguration)
	for remote := range cfg.Sub("s3") {
		remoteCfg := cfg.Sub("s3").Sub(remote)

		lister, err := parseS3Lister(remoteCfg, remote)

		if err != nil {
			log.Errorf("S3 lister '%s' could not be parsed: %s", remote, err)
			continue
		}

		s3[remote] = lister
	}

	return &ListersConfiguration{localWalker: localWalker, s3: s3}
}

func parseS3Lister(cfg Raw, remote string) (*S3ListerConfiguration, error) {
	if remote == "" {
		return nil, fmt.Errorf("missing remote name")
	}

	if cfg == nil {
		return nil, fmt.Errorf("missing configuration entries")
	}

	region := "eu-central-1"
	if cfg.Has("region") {
		region = cfg.String("region")
	}

	forcePathStyle := false
	if cfg.Has("force_path_style") {
		forcePathStyle = cfg.Bool("force_path_style")
	}

	return &S3ListerConfiguration{
		Remote:         remote,
		Region:         region,
		ForcePathStyle: forcePathStyle,
		AccessKey:      cfg.String("access_key_id"),
		SecretKey:      cfg.String("secret_access_key"),
		Endpoint:       cfg.String("endpoint"),
		Token:          cfg.String("token"),
	}, nil
}
