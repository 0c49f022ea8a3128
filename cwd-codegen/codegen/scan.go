package codegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/elitexpro/dao-dao-contracts/logger"
)

// Category is the destination directory a contract's client is generated
// into.
type Category string

const (
	CategoryContracts  Category = "contracts"
	CategoryPackages   Category = "packages"
	CategoryProposal   Category = "proposal"
	CategoryStaking    Category = "staking"
	CategoryVoting     Category = "voting"
	CategoryPrePropose Category = "pre-propose"
	CategoryExternal   Category = "external"
)

// subcategories are the directories under contracts/ that group contracts
// rather than hold one.
var subcategories = map[string]Category{
	string(CategoryProposal):   CategoryProposal,
	string(CategoryStaking):    CategoryStaking,
	string(CategoryVoting):     CategoryVoting,
	string(CategoryPrePropose): CategoryPrePropose,
	string(CategoryExternal):   CategoryExternal,
}

const DefaultSchemaDir = "schema"

var ErrRootNotFound = errors.New("root directory not found")

// Job is one generator invocation.
type Job struct {
	Name      string
	Category  Category
	SchemaDir string
	OutDir    string
}

func (j Job) String() string {
	return fmt.Sprintf("%s/%s", j.Category, j.Name)
}

// Scanner finds the schema directories of the contracts and packages under
// Root:
//
//	contracts/<name>/schema
//	contracts/<category>/<name>/schema
//	packages/<name>/schema
type Scanner struct {
	Root   string
	OutDir string
	// SchemaDir is the per-contract schema directory name, "schema" if empty.
	SchemaDir string
	// Allow restricts the scan to these contract and package names.
	Allow  []string
	Logger logger.Logger
}

func (s *Scanner) Scan() ([]Job, error) {
	info, err := os.Stat(s.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, s.Root)
	}

	allow := make(map[string]bool, len(s.Allow))
	for _, name := range s.Allow {
		allow[name] = false
	}

	var jobs []Job
	add := func(category Category, name, dir string) {
		if len(allow) > 0 {
			if _, ok := allow[name]; !ok {
				s.log().Debug("not in allow list, skipping", logger.WithField("name", name))
				return
			}
			allow[name] = true
		}
		jobs = append(jobs, Job{
			Name:      name,
			Category:  category,
			SchemaDir: filepath.Join(dir, s.schemaDir()),
			OutDir:    filepath.Join(s.OutDir, string(category), name),
		})
	}

	contracts := filepath.Join(s.Root, "contracts")
	for _, entry := range s.subdirs(contracts) {
		dir := filepath.Join(contracts, entry)
		if category, ok := subcategories[entry]; ok {
			for _, name := range s.subdirs(dir) {
				if s.hasSchema(filepath.Join(dir, name)) {
					add(category, name, filepath.Join(dir, name))
				}
			}
			continue
		}
		if !s.hasSchema(dir) {
			s.log().Warn("no schema and not a known category, skipping", logger.WithField("dir", dir))
			continue
		}
		add(CategoryContracts, entry, dir)
	}

	packages := filepath.Join(s.Root, "packages")
	for _, name := range s.subdirs(packages) {
		if s.hasSchema(filepath.Join(packages, name)) {
			add(CategoryPackages, name, filepath.Join(packages, name))
		}
	}

	for name, matched := range allow {
		if !matched {
			s.log().Warn("allowed name matched no schema directory", logger.WithField("name", name))
		}
	}

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].Category != jobs[j].Category {
			return jobs[i].Category < jobs[j].Category
		}
		return jobs[i].Name < jobs[j].Name
	})
	return jobs, nil
}

func (s *Scanner) schemaDir() string {
	if s.SchemaDir == "" {
		return DefaultSchemaDir
	}
	return s.SchemaDir
}

// subdirs lists the directory names inside dir. A missing or unreadable dir
// is logged and treated as empty.
func (s *Scanner) subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log().Warn("cannot read directory, skipping", logger.WithField("dir", dir), logger.WithError(err))
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func (s *Scanner) hasSchema(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, s.schemaDir()))
	if err != nil {
		s.log().Debug("no schema directory", logger.WithField("dir", dir))
		return false
	}
	return info.IsDir()
}

func (s *Scanner) log() logger.Logger {
	if s.Logger == nil {
		return logger.NewLogger("codegen", logger.Silent)
	}
	return s.Logger
}
