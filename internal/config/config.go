package config

import (
	"fmt"
	"io/ioutil"
	"time"
	"unicode"

	"git.lost.host/meutraa/flashcards/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

const version = "0.1.0"

type Config struct {
	Delay  time.Duration
	Seed   int64
	Sound  bool
	Volume float64
	Log    string

	// Extra keys per letter, e.g. "C": "1"
	Keys map[game.Letter]string
}

// File is the optional YAML config, flags given on the command line win
type File struct {
	Delay  *time.Duration    `yaml:"delay"`
	Sound  *bool             `yaml:"sound"`
	Volume *float64          `yaml:"volume"`
	Keys   map[string]string `yaml:"keys"`
}

func Parse(args []string) (*Config, error) {
	var c Config
	set := map[string]bool{}
	mark := func(name string) kingpin.Action {
		return func(*kingpin.ParseContext) error {
			set[name] = true
			return nil
		}
	}

	app := kingpin.New("flashcards", "Treble clef note reading drill")
	app.Version(version)

	app.Flag("delay", "Time to show the answer before the next note").Default(game.DefaultDelay.String()).Short('d').Action(mark("delay")).DurationVar(&c.Delay)
	app.Flag("seed", "Random seed, 0 uses the clock").Default("0").Short('s').Int64Var(&c.Seed)
	app.Flag("sound", "Play each note").Action(mark("sound")).BoolVar(&c.Sound)
	app.Flag("volume", "Volume in halvings, negative is quieter").Default("-2").Action(mark("volume")).Float64Var(&c.Volume)
	app.Flag("log", "Log file, the terminal is in use while playing").StringVar(&c.Log)
	file := app.Flag("config", "YAML config file").Short('c').ExistingFile()

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	if *file != "" {
		data, err := ioutil.ReadFile(*file)
		if nil != err {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
		if err := c.merge(data, set); nil != err {
			return nil, err
		}
	}

	if c.Delay <= 0 {
		return nil, fmt.Errorf("delay must be positive, got %v", c.Delay)
	}
	return &c, nil
}

func (c *Config) merge(data []byte, set map[string]bool) error {
	var f File
	if err := yaml.Unmarshal(data, &f); nil != err {
		return fmt.Errorf("unable to parse config: %w", err)
	}
	if nil != f.Delay && !set["delay"] {
		c.Delay = *f.Delay
	}
	if nil != f.Sound && !set["sound"] {
		c.Sound = *f.Sound
	}
	if nil != f.Volume && !set["volume"] {
		c.Volume = *f.Volume
	}
	if len(f.Keys) > 0 {
		used := map[rune]game.Letter{'q': "", 'Q': ""}
		for _, l := range game.Letters {
			used[rune(l[0])] = l
			used[unicode.ToLower(rune(l[0]))] = l
		}
		c.Keys = map[game.Letter]string{}
		for k, v := range f.Keys {
			l := game.Letter(k)
			if !l.Valid() {
				return fmt.Errorf("unknown note %q in keys", k)
			}
			for _, r := range v {
				if owner, ok := used[r]; ok && owner != l {
					return fmt.Errorf("key %q for %v is already bound", r, l)
				}
				used[r] = l
			}
			c.Keys[l] = v
		}
	}
	return nil
}
