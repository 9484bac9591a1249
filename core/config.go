package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf is the application-wide configuration. It is loaded once at package
// initialization from defaults, an optional config/.env.<env> file and
// ENV-prefixed environment variables.
var Conf *Config

type Config struct {
	Debug            bool
	TestMode         bool
	Env              string
	AppName          string
	SecretKey        string
	Build            string
	FrontendBaseURL  string
	DefaultFromEmail string
	SendgridAPIKey   string
	RollbarToken     string

	Server struct {
		Host               string
		Addr               string
		JWTExpirationDelta time.Duration
	}

	// Mock configures the simulated backend: the RNG seed used to generate
	// the demo data pools, pool sizes, and whether operations sleep to
	// simulate network latency.
	Mock struct {
		Seed         int64
		Latency      bool
		UserCount    int
		ContentCount int
		QuizCount    int
	}
}

func init() {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "E-Skwela AR Admin")
	v.SetDefault("secretKey", "v#y&0e$skw3la-@r=adm1n!d3v-0nly+k3y")
	v.SetDefault("build", "dev")
	v.SetDefault("frontendBaseURL", "http://localhost:5173")
	v.SetDefault("defaultFromEmail", "noreply@eskwela.edu.ph")
	v.SetDefault("sendgridAPIKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("mock.seed", 1)
	v.SetDefault("mock.latency", true)
	v.SetDefault("mock.userCount", 100)
	v.SetDefault("mock.contentCount", 50)
	v.SetDefault("mock.quizCount", 50)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("mock.latency", false)
	}
	v.SetEnvPrefix(env)

	// load config/.env.<env> if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		log.Fatalf("config.viper.Unmarshal: %v", err)
	}
	conf.Env = env
	Conf = conf
}
