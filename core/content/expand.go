package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches ::name:: tokens. Names start with a letter and
// may continue with letters, digits, underscores or dots.
var placeholderPattern = regexp.MustCompile(`::([A-Za-z][A-Za-z0-9_.]*)::`)

// ContractError reports every violation of the placeholder contract at once:
// tokens referenced by the content without a supplied value, and supplied
// values never referenced by the content.
type ContractError struct {
	// MissingTokens lists the literal tokens with no value, sorted.
	MissingTokens []string
	// UnusedNames lists the value names never referenced, sorted.
	UnusedNames []string
}

func (e *ContractError) Error() string {
	var parts []string
	if len(e.MissingTokens) > 0 {
		parts = append(parts, fmt.Sprintf("no value supplied for %s", strings.Join(e.MissingTokens, ", ")))
	}
	if len(e.UnusedNames) > 0 {
		parts = append(parts, fmt.Sprintf("unused values %s", strings.Join(e.UnusedNames, ", ")))
	}
	return "placeholder contract violated: " + strings.Join(parts, "; ")
}

// Expand substitutes every ::name:: token in content with its value.
//
// Name matching is case-insensitive. Every referenced name must have a value,
// and unless ignoreUnused is set every value must be referenced somewhere.
// Substitution is a single pass over the original content; values containing
// token-like text are never re-expanded.
func Expand(content string, values map[string]string, ignoreUnused bool) (string, error) {
	lookup := make(map[string]string, len(values))
	for name, value := range values {
		folded := strings.ToLower(name)
		if _, dup := lookup[folded]; dup {
			return "", fmt.Errorf("placeholder value %q collides with another name after case folding", name)
		}
		lookup[folded] = value
	}

	var missing []string
	seenMissing := make(map[string]bool)
	used := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		token, name := match[0], strings.ToLower(match[1])
		if _, ok := lookup[name]; ok {
			used[name] = true
			continue
		}
		if !seenMissing[token] {
			seenMissing[token] = true
			missing = append(missing, token)
		}
	}

	var unused []string
	if !ignoreUnused {
		for name := range lookup {
			if !used[name] {
				unused = append(unused, name)
			}
		}
	}

	if len(missing) > 0 || len(unused) > 0 {
		sort.Strings(missing)
		sort.Strings(unused)
		return "", &ContractError{MissingTokens: missing, UnusedNames: unused}
	}

	result := placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := strings.ToLower(token[2 : len(token)-2])
		return lookup[name]
	})
	return result, nil
}
