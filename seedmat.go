package emprng

import "github.com/zeebo/xxh3"

// Three fixed hash lanes keep the derived seed integers independent of each
// other while staying a pure function of the material.
const (
	seedLane1 uint64 = 0x9E3779B97F4A7C15
	seedLane2 uint64 = 0xBF58476D1CE4E5B9
	seedLane3 uint64 = 0x94D049BB133111EB
)

// SeedBytes builds a seeded state of the given algorithm from arbitrary byte
// material (a name, a key, a serialized identity). Equal material yields
// identical sequences.
func SeedBytes(id Algorithm, material []byte) (State, error) {
	a1 := int64(xxh3.HashSeed(material, seedLane1))
	a2 := int64(xxh3.HashSeed(material, seedLane2))
	a3 := int64(xxh3.HashSeed(material, seedLane3))
	return SeedWith(id, a1, a2, a3)
}

// SeedString is SeedBytes over the string's bytes.
func SeedString(id Algorithm, material string) (State, error) {
	return SeedBytes(id, []byte(material))
}
