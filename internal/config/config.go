// Package config loads the site configuration from the environment and an
// optional TOML file.
//
// Precedence, lowest first: built-in defaults, the TOML file named by
// SITE_CONFIG (or ./site.toml when present), environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/herobg"
	"github.com/Zachkp/portfolio/internal/ratelimit"
)

const DefaultFile = "site.toml"

type Config struct {
	Port         string
	DatabasePath string
	LogLevel     log.Level

	SMTP  contact.SMTPConfig
	Admin Admin

	// HashSalt is mixed into every hashed client address.
	HashSalt          string
	GeneratedHashSalt bool

	Theme   herobg.Theme
	Contact Contact
	Hero    Hero
}

type Admin struct {
	Username string
	Password string
	// Defaulted is set when either credential fell back to the built-in
	// development value.
	Defaulted bool
}

type Contact struct {
	MaxPerWindow int
	Window       time.Duration
}

type Hero struct {
	FPS       int
	MaxWidth  int
	MaxHeight int
	// MaxStream bounds how long one background stream stays open.
	MaxStream time.Duration
}

// Duration decodes TOML strings such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// file mirrors site.toml.
type file struct {
	Theme   herobg.Theme `toml:"theme"`
	Contact struct {
		MaxPerWindow int      `toml:"max_per_window"`
		Window       Duration `toml:"window"`
	} `toml:"contact"`
	Hero struct {
		FPS       int      `toml:"fps"`
		MaxWidth  int      `toml:"max_width"`
		MaxHeight int      `toml:"max_height"`
		MaxStream Duration `toml:"max_stream"`
	} `toml:"hero"`
}

func Default() *Config {
	return &Config{
		Port:         "8080",
		DatabasePath: "portfolio.db",
		LogLevel:     log.InfoLevel,
		SMTP: contact.SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Admin: Admin{Username: "admin", Password: "admin123", Defaulted: true},
		Theme: herobg.Theme{
			Primary: herobg.DefaultPrimaryToken,
			Accent:  herobg.DefaultAccentToken,
		},
		Contact: Contact{
			MaxPerWindow: ratelimit.DefaultMax,
			Window:       ratelimit.DefaultWindow,
		},
		Hero: Hero{
			FPS:       30,
			MaxWidth:  2560,
			MaxHeight: 1600,
			MaxStream: 2 * time.Minute,
		},
	}
}

// Load builds the configuration from os.Getenv.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds the configuration reading variables through getenv.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := Default()

	path, explicit := getenv("SITE_CONFIG"), true
	if path == "" {
		path, explicit = DefaultFile, false
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if f.Theme.Primary != "" {
		c.Theme.Primary = f.Theme.Primary
	}
	if f.Theme.Accent != "" {
		c.Theme.Accent = f.Theme.Accent
	}
	if f.Contact.MaxPerWindow != 0 {
		c.Contact.MaxPerWindow = f.Contact.MaxPerWindow
	}
	if f.Contact.Window.Duration != 0 {
		c.Contact.Window = f.Contact.Window.Duration
	}
	if f.Hero.FPS != 0 {
		c.Hero.FPS = f.Hero.FPS
	}
	if f.Hero.MaxWidth != 0 {
		c.Hero.MaxWidth = f.Hero.MaxWidth
	}
	if f.Hero.MaxHeight != 0 {
		c.Hero.MaxHeight = f.Hero.MaxHeight
	}
	if f.Hero.MaxStream.Duration != 0 {
		c.Hero.MaxStream = f.Hero.MaxStream.Duration
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Port, "PORT")
	set(&c.DatabasePath, "DATABASE_PATH")
	set(&c.SMTP.Host, "SMTP_HOST")
	set(&c.SMTP.Port, "SMTP_PORT")
	set(&c.SMTP.User, "SMTP_USER")
	set(&c.SMTP.Password, "SMTP_PASS")
	set(&c.SMTP.To, "TO_EMAIL")
	set(&c.HashSalt, "HASH_SALT")

	if c.SMTP.To == "" {
		c.SMTP.To = c.SMTP.User
	}

	set(&c.Admin.Username, "ADMIN_USERNAME")
	set(&c.Admin.Password, "ADMIN_PASSWORD")
	c.Admin.Defaulted = getenv("ADMIN_USERNAME") == "" || getenv("ADMIN_PASSWORD") == ""

	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
		c.LogLevel = lvl
	}
	if v := getenv("CONTACT_MAX_PER_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CONTACT_MAX_PER_WINDOW: %w", err)
		}
		c.Contact.MaxPerWindow = n
	}

	if c.HashSalt == "" {
		c.HashSalt = randomHex(16)
		c.GeneratedHashSalt = true
	}
	return nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("port %q is not a number", c.Port))
	}
	if c.Contact.MaxPerWindow <= 0 {
		errs = append(errs, fmt.Errorf("contact.max_per_window must be positive, got %d", c.Contact.MaxPerWindow))
	}
	if c.Contact.Window <= 0 {
		errs = append(errs, fmt.Errorf("contact.window must be positive, got %s", c.Contact.Window))
	}
	if c.Hero.FPS <= 0 || c.Hero.FPS > 120 {
		errs = append(errs, fmt.Errorf("hero.fps must be in 1..120, got %d", c.Hero.FPS))
	}
	if c.Hero.MaxWidth <= 0 || c.Hero.MaxHeight <= 0 {
		errs = append(errs, fmt.Errorf("hero.max_width and hero.max_height must be positive"))
	}
	if c.Hero.MaxStream <= 0 {
		errs = append(errs, fmt.Errorf("hero.max_stream must be positive, got %s", c.Hero.MaxStream))
	}
	return errors.Join(errs...)
}

// NewLogger returns the site logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           c.LogLevel,
	})
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("config: read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}
