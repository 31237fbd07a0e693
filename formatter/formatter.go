// Package formatter renders solve results for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/solvelab/eqsolve/internal/solver"
)

var (
	equationStyle = color.New(color.FgCyan, color.Bold)
	solutionStyle = color.New(color.FgGreen, color.Bold)
	labelStyle    = color.New(color.FgYellow, color.Bold)
	timeoutStyle  = color.New(color.FgHiYellow, color.Bold)
	errorStyle    = color.New(color.FgRed, color.Bold)
	noStyle       = color.New(color.FgWhite)
)

// FormatResult renders one solve result as a human-readable block.
func FormatResult(input string, result *solver.Result, verified bool) string {
	var sb strings.Builder

	sb.WriteString(equationStyle.Sprint(input))
	sb.WriteString("\n")

	if len(result.Solutions) == 0 {
		if result.TimedOut {
			sb.WriteString(timeoutStyle.Sprint("no solution found before the timeout"))
		} else {
			sb.WriteString(timeoutStyle.Sprintf("no solution found within %d depth attempts", result.Depth))
		}
		sb.WriteString("\n")
		return sb.String()
	}

	for _, sol := range result.Solutions {
		sb.WriteString(labelStyle.Sprint("  => "))
		sb.WriteString(solutionStyle.Sprint(sol.String()))
		sb.WriteString("\n")
	}
	sb.WriteString(noStyle.Sprintf("  depth %d", result.Depth))
	if verified {
		sb.WriteString(noStyle.Sprint(", verified"))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatError renders a lex or parse failure.
func FormatError(input string, err error) string {
	return fmt.Sprintf("%s\n%s\n", equationStyle.Sprint(input), errorStyle.Sprint(err.Error()))
}

// FormatTree renders the search trace as an indented tree, one explored
// equation per line, solved leaves marked.
func FormatTree(tree *solver.Tree) string {
	if tree == nil || tree.Root == nil {
		return ""
	}
	var sb strings.Builder
	if tree.TimedOut {
		sb.WriteString(timeoutStyle.Sprint("search timed out"))
		sb.WriteString("\n")
	}
	formatTreeNode(&sb, tree.Root, 0)
	return sb.String()
}

func formatTreeNode(sb *strings.Builder, node *solver.TreeNode, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if node.Solved {
		sb.WriteString(solutionStyle.Sprint(node.Equation))
		sb.WriteString(solutionStyle.Sprint(" *"))
	} else {
		sb.WriteString(noStyle.Sprint(node.Equation))
	}
	sb.WriteString("\n")
	for _, child := range node.Children {
		formatTreeNode(sb, child, depth+1)
	}
}
