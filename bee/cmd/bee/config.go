package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

type config struct {
	dicts   []string
	exclude string
	workers int
	centers string
	color   string // auto, always, or never
}

func defaultConfig() config {
	return config{
		dicts:   []string{"words.txt"},
		workers: runtime.GOMAXPROCS(0),
		color:   "auto",
	}
}

// defaultConfigPath returns $HOME/.config/bee/bee.ini
// (or the platform equivalent), or "" if there is no such directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bee", "bee.ini")
}

func (c *config) loadFile(name string) error {
	f, err := ini.LoadFile(name)
	if err != nil {
		return fmt.Errorf("error loading config (%s): %w", name, err)
	}
	if err := c.apply(f.Section("bee")); err != nil {
		return fmt.Errorf("bad config (%s): %s", name, err)
	}
	return nil
}

func (c *config) apply(section ini.Section) error {
	for key, val := range section {
		if err := c.set(key, val); err != nil {
			return err
		}
	}
	return nil
}

// set assigns a single setting by its config file key (which is also the
// name of the corresponding flag).
func (c *config) set(key, val string) error {
	switch key {
	case "dict":
		c.dicts = splitList(val)
		if len(c.dicts) == 0 {
			return fmt.Errorf("%s: no dictionary files given", key)
		}
	case "exclude":
		c.exclude = strings.ToLower(val)
	case "workers":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s: %s", key, err)
		}
		if n < 1 {
			return fmt.Errorf("%s: must be at least 1 (got %d)", key, n)
		}
		c.workers = n
	case "centers":
		c.centers = strings.ToLower(val)
	case "color":
		switch val {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("%s: must be auto, always, or never (got %q)", key, val)
		}
		c.color = val
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func splitList(s string) []string {
	var list []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
