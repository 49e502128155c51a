package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults is the catalog registered on first boot.
var Defaults = []Entry{
	{Key: "javascript", Description: "JavaScript language fundamentals, closures, async programming and the DOM."},
	{Key: "python", Description: "Python syntax, data types, functions, comprehensions and the standard library."},
	{Key: "java", Description: "Java object-oriented programming, collections, exceptions and concurrency basics."},
	{Key: "cpp", Description: "C++ memory management, pointers, classes, templates and the STL."},
	{Key: "data-structures", Description: "Arrays, linked lists, stacks, queues, trees, heaps, hash tables and graphs."},
	{Key: "algorithms", Description: "Sorting, searching, recursion, dynamic programming, greedy methods and complexity analysis."},
	{Key: "databases", Description: "Relational modelling, SQL, indexing, transactions and normalization."},
	{Key: "web-development", Description: "HTML, CSS, HTTP, browser APIs and web application architecture."},
	{Key: "react", Description: "React components, hooks, state management and rendering behaviour."},
	{Key: "nodejs", Description: "Node.js event loop, modules, streams and building HTTP services."},
	{Key: "machine-learning", Description: "Supervised and unsupervised learning, model evaluation and feature engineering."},
	{Key: "system-design", Description: "Scalability, caching, load balancing, data partitioning and reliability trade-offs."},
}

// SeedFile is the YAML layout of a catalog seed file.
type SeedFile struct {
	Concepts []SeedConcept `yaml:"concepts"`
}

// SeedConcept is one seed entry. Active defaults to true.
type SeedConcept struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
	Active      *bool  `yaml:"active"`
}

// SeedDefaults registers the default catalog. Existing descriptions are
// overwritten with the defaults.
func (c *Catalog) SeedDefaults(ctx context.Context) error {
	for _, e := range Defaults {
		if _, err := c.Register(ctx, e.Key, e.Description); err != nil {
			return err
		}
	}
	return nil
}

// LoadSeedFile parses a YAML seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed parses YAML seed data and validates every key.
func ParseSeed(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, sc := range f.Concepts {
		if _, err := NormalizeKey(sc.Key); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return &f, nil
}

// Seed applies every entry of f and returns the number applied.
func (c *Catalog) Seed(ctx context.Context, f *SeedFile) (int, error) {
	for i, sc := range f.Concepts {
		active := sc.Active == nil || *sc.Active
		if _, err := c.set(ctx, sc.Key, sc.Description, active); err != nil {
			return i, err
		}
	}
	c.log.Info("catalog seeded", "concepts", len(f.Concepts))
	return len(f.Concepts), nil
}
