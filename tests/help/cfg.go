package help

import "github.com/dgud/emprng/config"

func Cfg() *config.Generator {
	return &config.Generator{
		Algorithm: "as183",
		Seed:      &config.SeedCfg{A1: 7, A2: 11, A3: 13},
	}
}

func SFMTCfg() *config.Generator {
	return &config.Generator{
		Algorithm: "sfmt19937",
		Seed:      &config.SeedCfg{A1: 7, A2: 11, A3: 13},
	}
}

func UnseededCfg() *config.Generator {
	return &config.Generator{
		Algorithm: "tinymt32",
	}
}
