package freshen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pathutils "github.com/tavrin/freshen/internal/utils/path"
)

const (
	// IgnoreFileNameConstant names the per-repository (and home-directory fallback) ignore file.
	IgnoreFileNameConstant = ".freshenignore"

	ignoreFileReadErrorTemplateConstant = "failed to read ignore file %s: %w"
)

// IgnoreList holds branch names exempted from freshening and staleness handling.
type IgnoreList struct {
	entries map[string]struct{}
	source  string
}

// NewIgnoreList builds an ignore list from the provided branch names.
func NewIgnoreList(branchNames []string) IgnoreList {
	entries := map[string]struct{}{}
	for _, branchName := range branchNames {
		trimmedName := strings.TrimSpace(branchName)
		if len(trimmedName) == 0 {
			continue
		}
		entries[trimmedName] = struct{}{}
	}
	return IgnoreList{entries: entries}
}

// Contains reports whether the exact branch name appears in the list.
func (list IgnoreList) Contains(branchName string) bool {
	if list.entries == nil {
		return false
	}
	_, present := list.entries[branchName]
	return present
}

// Size returns the number of distinct entries in the list.
func (list IgnoreList) Size() int {
	return len(list.entries)
}

// Source reports the path of the file the list was loaded from, if any.
func (list IgnoreList) Source() string {
	return list.source
}

// IgnoreListLoader locates and parses the effective ignore file for a repository.
// Candidates are consulted in order: an explicitly configured path, the repository
// root, then the user's home directory. Only the first existing file is read.
type IgnoreListLoader struct {
	homeExpander  *pathutils.HomeExpander
	pathSanitizer *pathutils.PathSanitizer
}

// NewIgnoreListLoader constructs a loader backed by the provided home expander.
func NewIgnoreListLoader(homeExpander *pathutils.HomeExpander) *IgnoreListLoader {
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	return &IgnoreListLoader{
		homeExpander:  homeExpander,
		pathSanitizer: pathutils.NewPathSanitizer(homeExpander),
	}
}

// Load resolves the effective ignore file and parses it into an IgnoreList.
// A missing file yields an empty list, not an error.
func (loader *IgnoreListLoader) Load(repositoryPath string, configuredPath string) (IgnoreList, error) {
	candidatePaths := []string{configuredPath}

	trimmedRepositoryPath := strings.TrimSpace(repositoryPath)
	if len(trimmedRepositoryPath) > 0 {
		candidatePaths = append(candidatePaths, filepath.Join(trimmedRepositoryPath, IgnoreFileNameConstant))
	}

	if homeDirectory, homeResolved := loader.homeExpander.HomeDirectory(); homeResolved {
		candidatePaths = append(candidatePaths, filepath.Join(homeDirectory, IgnoreFileNameConstant))
	}

	for _, candidatePath := range loader.pathSanitizer.Sanitize(candidatePaths) {
		fileContents, readError := os.ReadFile(candidatePath)
		if readError != nil {
			if os.IsNotExist(readError) {
				continue
			}
			return IgnoreList{}, fmt.Errorf(ignoreFileReadErrorTemplateConstant, candidatePath, readError)
		}

		parsedList := NewIgnoreList(strings.Split(string(fileContents), "\n"))
		parsedList.source = candidatePath
		return parsedList, nil
	}

	return IgnoreList{}, nil
}
