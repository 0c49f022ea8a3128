package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/elitexpro/dao-dao-contracts/logger"
)

type ScannerTestSuite struct {
	suite.Suite
	root   string
	out    string
	logger *logger.MockLogger
}

func TestScanner(t *testing.T) {
	suite.Run(t, new(ScannerTestSuite))
}

func (s *ScannerTestSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.out = filepath.Join(s.T().TempDir(), "types")
	s.logger = logger.NewMockLogger()

	for _, dir := range []string{
		"contracts/cwd-core/schema",
		"contracts/proposal/cwd-proposal-single/schema",
		"contracts/proposal/cwd-proposal-multiple/schema",
		"contracts/voting/cwd-voting-cw4/schema",
		"contracts/pre-propose/cwd-pre-propose-single/schema",
		"contracts/staking/cw20-stake/schema",
		"contracts/external/cw-admin-factory/schema",
		"contracts/voting/cwd-voting-unfinished/src",
		"contracts/misc/cw-named-groups/schema",
		"packages/cwd-interface/schema",
		"packages/cwd-macros/src",
	} {
		s.Require().NoError(os.MkdirAll(filepath.Join(s.root, dir), 0o755))
	}
	// a file named like a schema dir is not one
	s.Require().NoError(os.MkdirAll(filepath.Join(s.root, "packages/cwd-hooks"), 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.root, "packages/cwd-hooks/schema"), nil, 0o644))
}

func (s *ScannerTestSuite) scanner(allow ...string) *Scanner {
	return &Scanner{Root: s.root, OutDir: s.out, Allow: allow, Logger: s.logger}
}

func (s *ScannerTestSuite) Test_Scan() {
	jobs, err := s.scanner().Scan()
	s.Require().NoError(err)

	var got []string
	for _, j := range jobs {
		got = append(got, j.String())
	}
	s.Equal([]string{
		"contracts/cwd-core",
		"external/cw-admin-factory",
		"packages/cwd-interface",
		"pre-propose/cwd-pre-propose-single",
		"proposal/cwd-proposal-multiple",
		"proposal/cwd-proposal-single",
		"staking/cw20-stake",
		"voting/cwd-voting-cw4",
	}, got)

	s.Contains(s.logger.Messages("warn"), "no schema and not a known category, skipping")
}

func (s *ScannerTestSuite) Test_JobPaths() {
	jobs, err := s.scanner("cwd-voting-cw4").Scan()
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)

	s.Equal(Job{
		Name:      "cwd-voting-cw4",
		Category:  CategoryVoting,
		SchemaDir: filepath.Join(s.root, "contracts/voting/cwd-voting-cw4/schema"),
		OutDir:    filepath.Join(s.out, "voting/cwd-voting-cw4"),
	}, jobs[0])
}

func (s *ScannerTestSuite) Test_AllowList() {
	jobs, err := s.scanner("cwd-core", "cwd-interface", "cwd-missing").Scan()
	s.Require().NoError(err)
	s.Len(jobs, 2)
	s.Equal(CategoryContracts, jobs[0].Category)
	s.Equal(CategoryPackages, jobs[1].Category)
	s.Contains(s.logger.Messages("warn"), "allowed name matched no schema directory")
}

func (s *ScannerTestSuite) Test_MissingDirectoriesAreSkipped() {
	s.Require().NoError(os.RemoveAll(filepath.Join(s.root, "packages")))

	jobs, err := s.scanner().Scan()
	s.Require().NoError(err)
	s.Len(jobs, 7)
	s.Contains(s.logger.Messages("warn"), "cannot read directory, skipping")
}

func (s *ScannerTestSuite) Test_CustomSchemaDir() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.root, "packages/cwd-hooks/exported"), 0o755))

	sc := s.scanner()
	sc.SchemaDir = "exported"
	jobs, err := sc.Scan()
	s.Require().NoError(err)
	s.Require().Len(jobs, 1)
	s.Equal("cwd-hooks", jobs[0].Name)
}

func (s *ScannerTestSuite) Test_MissingRoot() {
	sc := s.scanner()
	sc.Root = filepath.Join(s.root, "nope")
	_, err := sc.Scan()
	s.ErrorIs(err, ErrRootNotFound)
}
