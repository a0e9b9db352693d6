package history

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// maxEntries caps how many entries a history file keeps.
const maxEntries = 50

// Manager handles loading and saving history to TOML files
type Manager struct {
	historyDir string
}

// HistoryFile represents the structure of a history TOML file
type HistoryFile struct {
	Entries []string `toml:"entries"`
}

// NewManager creates a new history manager with directory at ~/.local/share/foliate/history/
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	historyDir := filepath.Join(homeDir, ".local", "share", "foliate", "history")

	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return nil, err
	}

	return &Manager{
		historyDir: historyDir,
	}, nil
}

// Load loads history entries from a TOML file
func (m *Manager) Load(filename string) ([]string, error) {
	filePath := filepath.Join(m.historyDir, filename)

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var histFile HistoryFile
	if err := toml.Unmarshal(data, &histFile); err != nil {
		// Don't fail on a corrupted file, start fresh
		return []string{}, nil
	}

	return histFile.Entries, nil
}

// Save saves history entries to a TOML file
func (m *Manager) Save(filename string, entries []string) error {
	filePath := filepath.Join(m.historyDir, filename)

	histFile := HistoryFile{
		Entries: entries,
	}

	data, err := toml.Marshal(histFile)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// Record prepends entry to entries, dropping earlier duplicates and
// trimming the list to maxEntries. The input slice is not modified.
func Record(entries []string, entry string) []string {
	if entry == "" {
		return entries
	}

	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, entry)
	for _, e := range entries {
		if e == entry {
			continue
		}
		updated = append(updated, e)
	}

	if len(updated) > maxEntries {
		updated = updated[:maxEntries]
	}

	return updated
}
