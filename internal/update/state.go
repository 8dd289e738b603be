package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type acknowledgedState struct {
	AcknowledgedKeys []string `json:"acknowledged_keys"`
}

func (m *Model) persistAcknowledgedState() error {
	if strings.TrimSpace(m.stateFilePath) == "" {
		return nil
	}
	dir := filepath.Dir(m.stateFilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	keys := make([]string, 0, len(m.ReminderAck))
	for key, acked := range m.ReminderAck {
		if acked && strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	payload, err := json.MarshalIndent(acknowledgedState{AcknowledgedKeys: keys}, "", "  ")
	if err != nil {
		return err
	}
	tmp := m.stateFilePath + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.stateFilePath)
}

func loadAcknowledgedState(path string) (map[string]bool, error) {
	out := make(map[string]bool)
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return out, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return out, nil
	}
	var state acknowledgedState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	for _, key := range state.AcknowledgedKeys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = true
	}
	return out, nil
}
