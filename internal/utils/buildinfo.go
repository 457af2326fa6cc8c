package utils

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
	gitExecutable      = "git"
)

// ApplicationVersion may be set at link time with -ldflags "-X github.com/temirov/tema/internal/utils.ApplicationVersion=v1.2.3".
var ApplicationVersion = EmptyString

// gitDescribeArgumentSets are tried in order; an exact tag wins over a long description.
var gitDescribeArgumentSets = [][]string{
	{"describe", "--tags", "--exact-match"},
	{"describe", "--tags", "--long", "--dirty"},
}

var errGitDirectoryNotFound = errors.New("git directory not found")

// GetApplicationVersion reports the link-time version, then the module version from build
// info, then a git description of the working tree, and finally "unknown".
func GetApplicationVersion() string {
	if ApplicationVersion != EmptyString {
		return ApplicationVersion
	}
	if buildInfo, buildInfoAvailable := debug.ReadBuildInfo(); buildInfoAvailable {
		if moduleVersion := buildInfo.Main.Version; moduleVersion != EmptyString && moduleVersion != developmentVersion {
			return moduleVersion
		}
	}
	if repositoryDirectory, findError := findGitDirectory("."); findError == nil {
		if description := describeGitVersion(repositoryDirectory); description != EmptyString {
			return description
		}
	}
	return unknownVersion
}

func describeGitVersion(repositoryDirectory string) string {
	for _, describeArguments := range gitDescribeArgumentSets {
		// #nosec G204
		describeCommand := exec.Command(gitExecutable, describeArguments...)
		describeCommand.Dir = repositoryDirectory
		describeOutput, describeError := describeCommand.Output()
		if describeError != nil {
			continue
		}
		if description := strings.TrimSpace(string(describeOutput)); description != EmptyString {
			return description
		}
	}
	return EmptyString
}

// findGitDirectory walks upward from startDirectory to the first directory containing GitDirectoryName.
func findGitDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return EmptyString, fmt.Errorf("resolve %s: %w", startDirectory, absoluteError)
	}
	for currentDirectory := absoluteStartDirectory; ; {
		if information, statError := os.Stat(filepath.Join(currentDirectory, GitDirectoryName)); statError == nil && information.IsDir() {
			return currentDirectory, nil
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return EmptyString, fmt.Errorf("%w in or above %s", errGitDirectoryNotFound, absoluteStartDirectory)
		}
		currentDirectory = parentDirectory
	}
}
