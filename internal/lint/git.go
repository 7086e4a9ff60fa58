package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/project-lint/project-lint/internal/config"
)

// currentBranch reads the checked-out branch from .git/HEAD without
// shelling out to git. Detached HEAD or a missing repo returns "".
func currentBranch(projectPath string) string {
	data, err := os.ReadFile(filepath.Join(projectPath, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	const prefix = "ref: refs/heads/"
	if !strings.HasPrefix(head, prefix) {
		return ""
	}
	return strings.TrimPrefix(head, prefix)
}

// checkBranch flags work happening on a forbidden branch, or outside the
// allowed set when one is configured.
func checkBranch(projectPath string, git *config.GitConfig, report *Report) {
	branch := currentBranch(projectPath)
	if branch == "" {
		return
	}

	for _, forbidden := range git.ForbiddenBranches {
		if branch == forbidden {
			report.Issues = append(report.Issues, Issue{
				Rule:     "git_branch",
				Message:  fmt.Sprintf("working on forbidden branch %q, create a feature branch", branch),
				Severity: config.SeverityWarning,
			})
			return
		}
	}

	if len(git.AllowedBranches) > 0 {
		for _, allowed := range git.AllowedBranches {
			if branch == allowed {
				return
			}
		}
		report.Issues = append(report.Issues, Issue{
			Rule:     "git_branch",
			Message:  fmt.Sprintf("branch %q is not in the allowed list", branch),
			Severity: config.SeverityInfo,
		})
	}
}
