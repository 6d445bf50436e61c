package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultPath = ".env"

// Load подгружает .env, если файл есть, и применяет флаг -port поверх PORT.
// Переменные окружения процесса имеют приоритет над файлом.
// Возвращает false, если файла нет.
func Load() (bool, error) {
	loaded := true
	if err := godotenv.Load(defaultPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("load %s: %w", defaultPath, err)
		}
		loaded = false
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}
