package config

import (
	"bufio"
	"os"
	"strings"
)

// loadEnvFiles seeds the process environment from local KEY=VALUE files.
// Missing files and unreadable lines are skipped; this only exists so a
// dev checkout can keep its settings next to the code.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		applyEnvFile(f)
		_ = f.Close()
	}
}

func applyEnvFile(f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"`)
		if key != "" {
			os.Setenv(key, val)
		}
	}
}
