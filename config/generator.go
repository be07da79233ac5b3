package config

// Generator selects the algorithm and optional fixed seed for a Source built
// from configuration. An empty Algorithm means the library default; a nil
// Seed means the algorithm's fixed initial state.
type Generator struct {
	Algorithm string   `yaml:"algorithm"`
	Seed      *SeedCfg `yaml:"seed"`
}

type SeedCfg struct {
	A1 int64 `yaml:"a1"`
	A2 int64 `yaml:"a2"`
	A3 int64 `yaml:"a3"`
}
