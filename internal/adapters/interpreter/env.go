package interpreter

import (
	"os"
	"sort"
	"strings"
)

// resolveEnvironment merges environment variables with the defined priority:
// the parent environment, then the Poppler directory prepended to PATH, then
// explicit KEY=VALUE overrides.
func resolveEnvironment(sysEnv []string, popplerPath string, overrides []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides)+1)
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	if popplerPath != "" {
		prependPath(envMap, popplerPath)
	}

	for _, entry := range overrides {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

func prependPath(envMap map[string]string, dir string) {
	if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
		envMap["PATH"] = dir + string(os.PathListSeparator) + sysPath
		return
	}
	envMap["PATH"] = dir
}
