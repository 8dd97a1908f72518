package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает существующие файлы из paths (по умолчанию .env), отсутствующие
// пропускает. Переменные окружения процесса не перезаписываются
func Load(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	loaded := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("stat %s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}

// ParseFlags: -port перекрывает PORT из окружения
func ParseFlags(args []string) error {
	flags := flag.NewFlagSet("fastfeet", flag.ContinueOnError)

	var portFlag string
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
